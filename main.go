// Package main provides fastio - a command-line front end for the whole-file loader.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/docker/go-units"
	"github.com/dustin/go-humanize"
	"github.com/pierrec/lz4/v4"

	"github.com/fastio/fastio/internal/fixture"
	"github.com/fastio/fastio/internal/loader"
)

// Version information
const (
	Version   = loader.Version
	BuildDate = "2026-10-19"
)

// Global state for graceful shutdown
var (
	shutdownChan = make(chan os.Signal, 1)
	cleanupMu    sync.Mutex
	cleanupFuncs []func()
)

func main() {
	setupSignalHandler()

	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	var err error
	switch command := os.Args[1]; command {
	case "cat":
		err = runCat(os.Args[2:], os.Stdout)
	case "stat":
		err = runStat(os.Args[2:], os.Stdout)
	case "gen":
		err = runGen(os.Args[2:], os.Stdout)
	case "version":
		fmt.Printf("fastio v%s (%s)\n", Version, BuildDate)
	case "help":
		printUsage(os.Stdout)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage(os.Stdout)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupSignalHandler() {
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	go handleShutdown()
}

// handleShutdown runs registered cleanups when interrupted
func handleShutdown() {
	<-shutdownChan
	fmt.Fprintln(os.Stderr, "\nReceived shutdown signal, cleaning up...")

	cleanupMu.Lock()
	for i := len(cleanupFuncs) - 1; i >= 0; i-- {
		cleanupFuncs[i]()
	}
	cleanupMu.Unlock()

	os.Exit(130) // Standard exit code for SIGINT
}

func addCleanup(fn func()) {
	cleanupMu.Lock()
	cleanupFuncs = append(cleanupFuncs, fn)
	cleanupMu.Unlock()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `fastio - Whole-file loader

Usage:
    fastio <command> [arguments]

Commands:
    cat      Load files and write their contents to stdout
    stat     Show size, size class and load strategy of files
    gen      Write a deterministic fixture file
    version  Show version
    help     Show this help

Environment:
    FASTIO_MAP_CEILING   largest file to memory map (default 100MiB)
    FASTIO_CHUNK_SIZE    read size of the chunked path (default 1MiB)
    FASTIO_DISABLE_MMAP  always use the chunked path
    FASTIO_MAPPER        mapping backend: syscall or portable

Use "fastio <command> -h" for command-specific options.`)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newLoader builds a loader from the environment plus command-line overrides.
func newLoader(ceiling string, noMmap, verbose bool) (*loader.Loader, error) {
	cfg, err := loader.ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	if ceiling != "" {
		n, err := units.RAMInBytes(ceiling)
		if err != nil {
			return nil, fmt.Errorf("invalid --ceiling %q: %w", ceiling, err)
		}
		cfg.MapCeiling = n
	}
	if noMmap {
		cfg.DisableMmap = true
	}
	cfg.Logger = newLogger(verbose)

	return loader.New(cfg), nil
}

// runCat handles the cat command
func runCat(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("cat", flag.ContinueOnError)

	decompress := fs.Bool("lz4", false, "Decode contents as an LZ4 frame")
	ceiling := fs.String("ceiling", "", "Largest file to memory map (e.g. 64MiB)")
	noMmap := fs.Bool("no-mmap", false, "Always use the chunked path")
	verbose := fs.Bool("v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("cat: at least one path is required")
	}

	l, err := newLoader(*ceiling, *noMmap, *verbose)
	if err != nil {
		return err
	}

	w := bufio.NewWriterSize(stdout, 256*1024)
	for _, path := range fs.Args() {
		if err := catFile(l, path, *decompress, w); err != nil {
			_ = w.Flush()
			return err
		}
	}
	return w.Flush()
}

func catFile(l *loader.Loader, path string, decompress bool, w io.Writer) error {
	buf, err := l.Load(path)
	if err != nil {
		return err
	}
	defer func() { _ = buf.Release() }()

	if !decompress {
		_, err = buf.WriteTo(w)
		return err
	}

	if _, err := io.Copy(w, lz4.NewReader(bytes.NewReader(buf.Bytes()))); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// runStat handles the stat command
func runStat(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)

	ceiling := fs.String("ceiling", "", "Largest file to memory map (e.g. 64MiB)")
	noMmap := fs.Bool("no-mmap", false, "Always use the chunked path")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("stat: at least one path is required")
	}

	l, err := newLoader(*ceiling, *noMmap, false)
	if err != nil {
		return err
	}

	for _, path := range fs.Args() {
		p, err := l.Probe(path)
		if err != nil {
			return err
		}

		fmt.Fprintf(stdout, "%s\t%d bytes (%s)\t%s\t%s\n", path, p.Size, humanize.IBytes(uint64(p.Size)), p.Class, l.Plan(p))
	}
	return nil
}

// runGen handles the gen command
func runGen(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)

	size := fs.String("size", "1MiB", "Size of the generated content (e.g. 200MiB)")
	seed := fs.Int64("seed", 1, "Seed for the content generator")
	compress := fs.Bool("lz4", false, "Store the content as an LZ4 frame")
	out := fs.String("out", "", "Output file path")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("gen: --out is required")
	}

	n, err := units.RAMInBytes(*size)
	if err != nil {
		return fmt.Errorf("invalid --size %q: %w", *size, err)
	}

	// Remove a partial file if interrupted
	path := *out
	addCleanup(func() { _ = os.Remove(path) })

	write := fixture.Write
	if *compress {
		write = fixture.WriteLZ4
	}
	if err := write(path, n, *seed); err != nil {
		_ = os.Remove(path)
		return err
	}

	fmt.Fprintf(stdout, "Generated %s (%s)\n", path, humanize.IBytes(uint64(n)))
	return nil
}
