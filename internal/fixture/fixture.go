// Package fixture writes deterministic file content for tests, benchmarks
// and the gen command.
//
// Content is pseudo-random binary (it contains NUL bytes) derived from a
// seed, so two files written with the same size and seed are identical and
// a test can rebuild the expected bytes without reading the file back.
package fixture

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/pierrec/lz4/v4"
)

const blockSize = 64 * 1024

// Generate writes size bytes of content derived from seed to w.
func Generate(w io.Writer, size, seed int64) (int64, error) {
	if size < 0 {
		return 0, fmt.Errorf("negative fixture size: %d", size)
	}

	rng := rand.New(rand.NewSource(seed))
	block := make([]byte, blockSize)

	var written int64
	for written < size {
		n := int64(blockSize)
		if remaining := size - written; remaining < n {
			n = remaining
		}
		_, _ = rng.Read(block[:n])
		m, err := w.Write(block[:n])
		written += int64(m)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Bytes returns the content Write produces for the same size and seed.
func Bytes(size, seed int64) []byte {
	var buf bytes.Buffer
	buf.Grow(int(size))
	_, _ = Generate(&buf, size, seed)
	return buf.Bytes()
}

// Write creates path holding size bytes of content derived from seed.
func Write(path string, size, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriterSize(f, blockSize)
	if _, err := Generate(w, size, seed); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write fixture %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteLZ4 is like Write but stores the content as an LZ4 frame.
func WriteLZ4(path string, size, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	zw := lz4.NewWriter(f)
	if _, err := Generate(zw, size, seed); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write fixture %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Truncate shrinks path to size bytes.
func Truncate(path string, size int64) error {
	return os.Truncate(path, size)
}
