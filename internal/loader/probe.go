package loader

import (
	"os"
)

// SizeClass places a file's length against the mapping ceiling.
type SizeClass int

const (
	SizeEmpty SizeClass = iota
	SizeMappable
	SizeOversized
)

func (c SizeClass) String() string {
	switch c {
	case SizeEmpty:
		return "empty"
	case SizeMappable:
		return "mappable"
	case SizeOversized:
		return "oversized"
	default:
		return "unknown"
	}
}

// Classify returns the size class of a file of size bytes.
func Classify(size, ceiling int64) SizeClass {
	switch {
	case size == 0:
		return SizeEmpty
	case size <= ceiling:
		return SizeMappable
	default:
		return SizeOversized
	}
}

// Probe is the outcome of a size probe.
type Probe struct {
	Size  int64
	Class SizeClass
}

// Probe reports the length and size class of path without reading it.
func (l *Loader) Probe(path string) (Probe, error) {
	f, p, err := l.open(path)
	if err != nil {
		return Probe{}, err
	}
	_ = f.Close()
	return p, nil
}

// open opens path and stats it. On success the caller owns f.
func (l *Loader) open(path string) (*os.File, Probe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Probe{}, failure(err, KindNotFound, path, "open failed")
	}

	info, err := l.stat(f)
	if err != nil {
		_ = f.Close()
		return nil, Probe{}, failure(err, KindStatFailed, path, "stat failed")
	}

	size := info.Size()
	return f, Probe{Size: size, Class: Classify(size, l.ceiling)}, nil
}
