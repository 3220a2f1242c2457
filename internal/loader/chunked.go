package loader

import (
	"io"

	"github.com/jmgilman/go/errors"
)

// readChunked reads up to size bytes from r into a buffer allocated once up
// front, asking for at most chunkSize bytes per call. End of input before
// size bytes is a short result, not an error. A read error discards
// everything read so far.
func (l *Loader) readChunked(r io.Reader, path string, size int64) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}

	buf, err := allocate(size, l.maxBuffer)
	if err != nil {
		return nil, errors.WithContext(err, "path", path)
	}

	chunk := int64(l.chunkSize)
	var n int64
	for n < size {
		end := min(n+chunk, size)
		m, err := r.Read(buf[n:end])
		n += int64(m)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, failure(err, KindReadFailed, path, "read failed")
		}
		if m == 0 {
			break
		}
	}

	if n < size {
		l.logger.Debug("file shorter than probed size", "path", path, "probed", size, "read", n)
	}
	return buf[:n:n], nil
}

// allocate returns a zeroed buffer of size bytes, or a KindAllocationFailed
// error when size exceeds limit or the runtime refuses the allocation.
func allocate(size, limit int64) (buf []byte, err error) {
	if size < 0 || size > limit {
		return nil, errors.Newf(KindAllocationFailed, "cannot allocate %d bytes (limit %d)", size, limit)
	}

	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, errors.Newf(KindAllocationFailed, "cannot allocate %d bytes: %v", size, r)
		}
	}()
	return make([]byte, size), nil
}
