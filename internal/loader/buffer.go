package loader

import (
	"io"
	"sync/atomic"
)

// Strategy identifies how a Buffer's contents were produced.
type Strategy int

const (
	StrategyEmpty Strategy = iota
	StrategyMapped
	StrategyChunked
)

func (s Strategy) String() string {
	switch s {
	case StrategyEmpty:
		return "empty"
	case StrategyMapped:
		return "mapped"
	case StrategyChunked:
		return "chunked"
	default:
		return "unknown"
	}
}

// Buffer owns the contents of one loaded file.
//
// The holder must call Release exactly once. Releasing again returns
// ErrReleased, and reading a released Buffer panics. The bytes are never
// backed by a mapping and must not be modified.
type Buffer struct {
	data     []byte
	strategy Strategy
	released atomic.Bool
}

func newBuffer(data []byte, strategy Strategy) *Buffer {
	return &Buffer{data: data, strategy: strategy}
}

// Bytes returns the contents. The slice is only valid until Release.
func (b *Buffer) Bytes() []byte {
	b.mustBeLive()
	return b.data
}

// Len returns the exact number of bytes loaded.
func (b *Buffer) Len() int {
	b.mustBeLive()
	return len(b.data)
}

// String returns a copy of the contents.
func (b *Buffer) String() string {
	b.mustBeLive()
	return string(b.data)
}

// WriteTo writes the contents to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	b.mustBeLive()
	n, err := w.Write(b.data)
	return int64(n), err
}

// Strategy reports which path produced the contents.
func (b *Buffer) Strategy() Strategy {
	return b.strategy
}

// Detach moves the contents out of b and releases it. The caller becomes
// the sole owner of the returned slice.
func (b *Buffer) Detach() []byte {
	b.mustBeLive()
	data := b.data
	if err := b.Release(); err != nil {
		panic(err)
	}
	return data
}

// Release gives up the contents.
func (b *Buffer) Release() error {
	if !b.released.CompareAndSwap(false, true) {
		return ErrReleased
	}
	b.data = nil
	return nil
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b.released.Load()
}

func (b *Buffer) mustBeLive() {
	if b.released.Load() {
		panic("loader: use of released buffer")
	}
}
