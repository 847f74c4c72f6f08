// compare benchmarks the sets backends on the same lava droplet, after checking they all
// agree on its exterior surface area.
//
// Configuration comes from an optional YAML file (-config), and flags explicitly set on the
// command line take precedence over it.
package main

import (
	"bytes"
	"context"
	"flag"
	"github.com/janpfeifer/lavaGo/internal/config"
	"github.com/janpfeifer/lavaGo/internal/generics"
	"github.com/janpfeifer/lavaGo/internal/input"
	"github.com/janpfeifer/lavaGo/internal/lava"
	"github.com/janpfeifer/lavaGo/internal/profilers"
	"github.com/janpfeifer/lavaGo/internal/sets"
	"github.com/janpfeifer/lavaGo/internal/ui/cli"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

var (
	flagConfig     = flag.String("config", "", "YAML configuration file. Flags explicitly set override its values.")
	flagInput      = flag.String("input", "", "Input file, \"-\" for stdin, or empty for the built-in example.")
	flagBackends   = flag.String("backends", "", "Semicolon-separated list of backend configurations to compare, e.g. \"hash;btree:degree=8\". Defaults to all backends.")
	flagIterations = flag.Int("iterations", config.DefaultIterations, "Number of times each backend computes the surface area.")
	flagExpect     = flag.Int("expect", -1, "If >= 0, the surface area every backend must return.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Capture Control+C
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := must.M1(loadConfig())
	backends, err := cfg.SetConfigs()
	if err != nil {
		klog.Exitf("Invalid configuration: %+v", err)
	}
	data := must.M1(input.ReadAll(cfg.Input))

	ui := cli.New(os.Stdout)
	areas, err := computeAreas(ctx, data, backends)
	if err != nil {
		klog.Exitf("Failed to compute surface area: %+v", err)
	}
	if !allEqual(areas) {
		ui.PrintMismatch(backendNames(backends), areas)
		os.Exit(1)
	}
	if cfg.Expect != nil && areas[0] != *cfg.Expect {
		klog.Exitf("Surface area is %d, expected %d", areas[0], *cfg.Expect)
	}

	// Profilers only cover the benchmarks.
	must.M(profilers.Setup())
	defer profilers.OnQuit()
	results, err := benchmark(ctx, data, backends, cfg.Iterations)
	if err != nil {
		klog.Errorf("Benchmark failed: %+v", err)
		return
	}
	ui.PrintResults(results)
}

// loadConfig reads the YAML configuration, if given, and overrides it with the flags set
// explicitly.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		cfg, err = config.Load(*flagConfig)
		if err != nil {
			return nil, errors.WithMessagef(err, "--config=%q", *flagConfig)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *flagInput
		case "backends":
			cfg.Backends = strings.Split(*flagBackends, ";")
		case "iterations":
			cfg.Iterations = *flagIterations
		case "expect":
			if *flagExpect >= 0 {
				cfg.Expect = flagExpect
			} else {
				cfg.Expect = nil
			}
		}
	})
	return cfg, nil
}

// computeAreas computes the surface area with each backend concurrently.
// Each backend works on its own Calculator.
func computeAreas(ctx context.Context, data []byte, backends []sets.Config) ([]int, error) {
	areas := make([]int, len(backends))
	g, ctx := errgroup.WithContext(ctx)
	for ii, backend := range backends {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			area, err := lava.ExteriorSurfaceArea(bytes.NewReader(data), backend)
			if err != nil {
				return errors.WithMessagef(err, "backend %s", backend)
			}
			klog.V(1).Infof("backend %s: surface area %d", backend, area)
			areas[ii] = area
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return areas, nil
}

// benchmark times each backend sequentially, so they don't compete for the CPU.
func benchmark(ctx context.Context, data []byte, backends []sets.Config, iterations int) ([]cli.Result, error) {
	results := make([]cli.Result, 0, len(backends))
	for _, backend := range backends {
		r := cli.Result{Backend: backend.String()}
		start := time.Now()
		for range iterations {
			if ctx.Err() != nil {
				return nil, errors.Wrapf(ctx.Err(), "interrupted while benchmarking %s", backend)
			}
			area, err := lava.ExteriorSurfaceArea(bytes.NewReader(data), backend)
			if err != nil {
				return nil, err
			}
			r.Area = area
			r.Iterations++
		}
		r.Total = time.Since(start)
		klog.V(1).Infof("backend %s: %d iterations in %s", backend, r.Iterations, r.Total)
		results = append(results, r)
	}
	return results, nil
}

func allEqual(areas []int) bool {
	if len(areas) == 0 {
		return true
	}
	for _, area := range areas[1:] {
		if area != areas[0] {
			return false
		}
	}
	return true
}

func backendNames(backends []sets.Config) []string {
	return generics.SliceMap(backends, sets.Config.String)
}
