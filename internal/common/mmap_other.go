//go:build !unix

package common

import (
	"fmt"
	"runtime"
)

// DefaultMapper returns the preferred mapping backend for this platform.
// Without mmap(2) the portable backend is the only choice.
func DefaultMapper() Mapper {
	return PortableMapper{}
}

func syscallMapper() (Mapper, error) {
	return nil, fmt.Errorf("syscall mapper is not supported on %s", runtime.GOOS)
}
