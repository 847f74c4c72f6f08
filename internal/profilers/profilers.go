// Package profilers implement helper functions to set up profiling for the benchmark programs.
//
// If linked, it will install the profiler flags -cpu_profile and -mem_profile.
package profilers

import (
	"flag"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write heap profile to `file` on exit")

	cpuProfileFile *os.File
)

// Setup starts the CPU profiler (flag -cpu_profile), if it was configured.
// You should follow with a deferred call to OnQuit.
func Setup() error {
	if *flagCPUProfile == "" {
		return nil
	}
	f, err := os.Create(*flagCPUProfile)
	if err != nil {
		return errors.Wrap(err, "could not create CPU profile")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "could not start CPU profile")
	}
	cpuProfileFile = f
	klog.V(1).Infof("CPU profile being written to %q", *flagCPUProfile)
	return nil
}

// OnQuit stops the CPU profiler and writes the heap profile (flag -mem_profile).
// It should be called before the exit of the main() function, typically as a deferred call
// just after Setup.
func OnQuit() {
	if cpuProfileFile != nil {
		pprof.StopCPUProfile()
		if err := cpuProfileFile.Close(); err != nil {
			klog.Errorf("failed to close CPU profile: %v", err)
		}
		cpuProfileFile = nil
	}
	if *flagMemProfile != "" {
		if err := writeHeapProfile(*flagMemProfile); err != nil {
			klog.Errorf("%+v", err)
		}
	}
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create heap profile")
	}
	// Up-to-date statistics of live objects.
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "could not write heap profile")
	}
	return errors.Wrap(f.Close(), "could not close heap profile")
}
