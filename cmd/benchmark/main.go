package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/docker/go-units"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/fastio/fastio/internal/fixture"
	"github.com/fastio/fastio/internal/loader"
)

func main() {
	size := flag.String("size", "64MiB", "Size of the generated file")
	rounds := flag.Int("rounds", 5, "Loads per strategy")
	parallel := flag.Int("parallel", 1, "Concurrent loads per round")
	flag.Parse()

	n, err := units.RAMInBytes(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -size %q: %v\n", *size, err)
		os.Exit(1)
	}
	if *parallel < 1 {
		*parallel = runtime.NumCPU()
	}

	fmt.Printf("Generating %s fixture...\n", humanize.IBytes(uint64(n)))
	tmpDir, err := os.MkdirTemp("", "fastio_bench")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "bench.bin")
	if err := fixture.Write(path, n, 123); err != nil {
		panic(err)
	}

	cases := []struct {
		name string
		cfg  loader.Config
	}{
		// The ceiling is raised so the mapped path is taken even past 100 MiB.
		{"mapped", loader.Config{MapCeiling: n + 1}},
		{"chunked", loader.Config{DisableMmap: true}},
	}

	fmt.Printf("\n--------------------------------------------------\n")
	for _, c := range cases {
		l := loader.New(c.cfg)

		start := time.Now()
		for i := 0; i < *rounds; i++ {
			if err := loadConcurrently(l, path, *parallel); err != nil {
				panic(err)
			}
		}
		elapsed := time.Since(start)

		total := uint64(n) * uint64(*rounds) * uint64(*parallel)
		perSec := float64(total) / elapsed.Seconds()
		fmt.Printf("%-8s %10v  %s/s\n", c.name, elapsed, humanize.IBytes(uint64(perSec)))
	}
	fmt.Printf("--------------------------------------------------\n")
}

func loadConcurrently(l *loader.Loader, path string, workers int) error {
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			buf, err := l.Load(path)
			if err != nil {
				return err
			}
			return buf.Release()
		})
	}
	return g.Wait()
}
