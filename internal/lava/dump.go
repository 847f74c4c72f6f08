package lava

import (
	"bufio"
	"fmt"
	"github.com/janpfeifer/lavaGo/internal/generics"
	"github.com/janpfeifer/lavaGo/internal/geom"
	"github.com/pkg/errors"
	"io"
	"os"
)

// DumpFileName is the usual name of the file written by DumpCubesToFile.
const DumpFileName = "PARSE"

// DumpCubes writes the cubes, one "x,y,z" per line in sorted order, with Offset removed.
// The output can be parsed back by ParseCubes.
func (c *Calculator) DumpCubes(w io.Writer) error {
	buf := bufio.NewWriter(w)
	for _, cube := range generics.SortedFunc(c.cubes.All(), geom.Cube.Compare) {
		if _, err := fmt.Fprintln(buf, cube.Sub(Offset)); err != nil {
			return errors.Wrap(err, "failed to dump cubes")
		}
	}
	return errors.Wrap(buf.Flush(), "failed to dump cubes")
}

// DumpCubesToFile writes the cubes to path, see DumpCubes.
func (c *Calculator) DumpCubesToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %q", path)
	}
	if err = c.DumpCubes(f); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "failed to close %q", path)
}
