package common

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Mapper establishes and tears down read-only mappings of open files.
type Mapper interface {
	// Map maps the first size bytes of f. The returned slice is only valid
	// until Unmap is called with it.
	Map(f *os.File, size int64) ([]byte, error)
	Unmap(data []byte) error
}

// Advisor is implemented by mappers that can pass access-pattern hints to
// the page cache.
type Advisor interface {
	AdviseSequential(data []byte) error
}

// Mapper names accepted by MapperByName.
const (
	MapperSyscall  = "syscall"
	MapperPortable = "portable"
)

// MapperByName returns the mapping backend registered under name.
// An empty name selects DefaultMapper.
func MapperByName(name string) (Mapper, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultMapper(), nil
	case MapperSyscall:
		return syscallMapper()
	case MapperPortable:
		return PortableMapper{}, nil
	default:
		return nil, fmt.Errorf("unknown mapper %q (want %q or %q)", name, MapperSyscall, MapperPortable)
	}
}

// PortableMapper maps files through mmap-go, which also covers Windows.
// Mappings are read-only; on unix mmap-go maps them shared.
type PortableMapper struct{}

// Map memory maps the first size bytes of f.
func (PortableMapper) Map(f *os.File, size int64) ([]byte, error) {
	length, err := mapLength(size)
	if err != nil {
		return nil, err
	}
	m, err := mmap.MapRegion(f, length, mmap.RDONLY, 0, 0)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Unmap releases a mapping returned by Map.
func (PortableMapper) Unmap(data []byte) error {
	m := mmap.MMap(data)
	return m.Unmap()
}

func mapLength(size int64) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("cannot map %d bytes", size)
	}
	if size > math.MaxInt {
		return 0, fmt.Errorf("mapping of %d bytes exceeds address space", size)
	}
	return int(size), nil
}
