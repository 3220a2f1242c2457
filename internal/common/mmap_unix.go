//go:build unix

package common

import (
	"os"

	"golang.org/x/sys/unix"
)

// SyscallMapper maps files with mmap(2) as private, read-only mappings.
type SyscallMapper struct{}

// DefaultMapper returns the preferred mapping backend for this platform.
func DefaultMapper() Mapper {
	return SyscallMapper{}
}

func syscallMapper() (Mapper, error) {
	return SyscallMapper{}, nil
}

// Map memory maps the first size bytes of f.
func (SyscallMapper) Map(f *os.File, size int64) ([]byte, error) {
	length, err := mapLength(size)
	if err != nil {
		return nil, err
	}
	return unix.Mmap(int(f.Fd()), 0, length, unix.PROT_READ, unix.MAP_PRIVATE) //nolint:gosec // G115: descriptor fits in int
}

// AdviseSequential tells the kernel the mapping will be read front to back.
func (SyscallMapper) AdviseSequential(data []byte) error {
	return unix.Madvise(data, unix.MADV_SEQUENTIAL)
}

// Unmap releases a mapping returned by Map.
func (SyscallMapper) Unmap(data []byte) error {
	return unix.Munmap(data)
}
