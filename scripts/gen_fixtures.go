package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/fastio/fastio/internal/fixture"
)

// Writes the files used by the loader scenario tests.
func main() {
	dir := "testdata"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(err)
	}

	files := []struct {
		name string
		size int64
	}{
		{"empty.txt", 0},
		{"10mb.bin", 10 << 20},
		{"200mb.bin", 200 << 20},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := fixture.Write(path, f.size, 1); err != nil {
			panic(err)
		}
		fmt.Printf("Generated %s (%s)\n", path, humanize.IBytes(uint64(f.size)))
	}
}
