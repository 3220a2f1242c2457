package loader

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fastio/fastio/internal/common"
)

// readMapped copies size bytes of f out of a memory mapping. Any mapping
// problem is reported as KindMapUnavailable so the caller can fall back;
// only allocation failures carry another kind. The mapping is always
// released before returning.
func (l *Loader) readMapped(f *os.File, path string, size int64) ([]byte, error) {
	region, err := l.mapper.Map(f, size)
	if err != nil {
		return nil, failure(err, KindMapUnavailable, path, "mmap failed")
	}
	defer func() {
		if err := l.mapper.Unmap(region); err != nil {
			l.logger.Warn("munmap failed", "path", path, "error", err)
		}
	}()

	if int64(len(region)) != size {
		return nil, failure(fmt.Errorf("mapped %d bytes, want %d", len(region), size), KindMapUnavailable, path, "short mapping")
	}

	if adv, ok := l.mapper.(common.Advisor); ok {
		_ = adv.AdviseSequential(region)
	}

	buf, err := allocate(size, l.maxBuffer)
	if err != nil {
		return nil, failure(err, KindAllocationFailed, path, "buffer allocation failed")
	}

	if err := copyMapping(buf, region); err != nil {
		return nil, failure(err, KindMapUnavailable, path, "fault while reading mapping")
	}

	// Pages past a concurrent truncation read as zeros instead of faulting,
	// so a size change invalidates the copy.
	info, err := f.Stat()
	if err != nil {
		return nil, failure(err, KindMapUnavailable, path, "stat after copy failed")
	}
	if info.Size() != size {
		return nil, failure(fmt.Errorf("size changed from %d to %d", size, info.Size()), KindMapUnavailable, path, "file changed while mapped")
	}

	return buf, nil
}

// copyMapping copies src into dst, turning a memory fault into an error.
func copyMapping(dst, src []byte) (err error) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	copy(dst, src)
	return nil
}
