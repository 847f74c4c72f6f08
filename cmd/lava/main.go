// lava prints the exterior surface area of a lava droplet described by one "x,y,z" cube per line.
//
// Usage:
//
//	lava [-input=droplet.txt|-input=-] [-backend=hash] [-dump=PARSE] [-naive]
//
// Without -input the built-in example is used.
package main

import (
	"flag"
	"fmt"
	"github.com/janpfeifer/lavaGo/internal/geom"
	"github.com/janpfeifer/lavaGo/internal/input"
	"github.com/janpfeifer/lavaGo/internal/lava"
	"github.com/janpfeifer/lavaGo/internal/sets"
	"io"
	"k8s.io/klog/v2"
	"os"
)

var (
	flagInput = flag.String("input", "",
		"File with one cube \"x,y,z\" per line, \"-\" for stdin, or empty for the built-in example. "+
			"Files ending in .zst are decompressed.")
	flagBackend = flag.String("backend", "hash",
		"Set backend configuration, one of \"hash\", \"packed\", \"btree\", \"sorted\", "+
			"optionally followed by parameters, e.g. \"btree:degree=8\".")
	flagDump = flag.String("dump", "",
		fmt.Sprintf("If set, dump the parsed cubes to the given file (usually %q).", lava.DumpFileName))
	flagNaive = flag.Bool("naive", false,
		"Also print the total surface area, including faces of enclosed air pockets, and the number of trapped cells.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	backend, err := sets.ParseConfig(*flagBackend)
	if err != nil {
		klog.Exitf("Invalid --backend=%q: %+v", *flagBackend, err)
	}
	if err := run(os.Stdout, *flagInput, backend, *flagDump, *flagNaive); err != nil {
		klog.Exitf("Failed to compute surface area: %+v", err)
	}
}

// run computes the surface area of the cubes read from path, and prints it to w.
// If dump is set, the parsed cubes are also written to that file.
func run(w io.Writer, path string, backend sets.Config, dump string, naive bool) error {
	cubes, err := readCubes(path)
	if err != nil {
		return err
	}
	calc, err := lava.NewCalculator(backend, cubes)
	if err != nil {
		return err
	}
	klog.V(1).Infof("%d cubes read, using backend %s", calc.Cubes().Len(), backend)
	if dump != "" {
		if err := calc.DumpCubesToFile(dump); err != nil {
			return err
		}
	}

	area, err := calc.SurfaceArea()
	if err != nil {
		return err
	}
	if !naive {
		_, err = fmt.Fprintln(w, area)
		return err
	}
	trapped, err := calc.TrappedCells()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "exterior=%d total=%d trapped_cells=%d\n", area, calc.TotalSurfaceArea(), trapped)
	return err
}

func readCubes(path string) ([]geom.Cube, error) {
	r, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return lava.ParseCubes(r)
}
