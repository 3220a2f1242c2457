package loader

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferReleaseOnce(t *testing.T) {
	b := newBuffer([]byte("data"), StrategyChunked)

	assert.False(t, b.Released())
	require.NoError(t, b.Release())
	assert.True(t, b.Released())
	assert.ErrorIs(t, b.Release(), ErrReleased)
}

func TestBufferUseAfterRelease(t *testing.T) {
	b := newBuffer([]byte("data"), StrategyMapped)
	require.NoError(t, b.Release())

	assert.Panics(t, func() { _ = b.Bytes() })
	assert.Panics(t, func() { _ = b.Len() })
	assert.Panics(t, func() { _ = b.String() })
	assert.Equal(t, StrategyMapped, b.Strategy())
}

func TestBufferDetach(t *testing.T) {
	b := newBuffer([]byte("moved"), StrategyChunked)

	data := b.Detach()
	assert.Equal(t, []byte("moved"), data)
	assert.True(t, b.Released())
	assert.Panics(t, func() { b.Detach() })
}

func TestBufferWriteTo(t *testing.T) {
	b := newBuffer([]byte("a\x00b"), StrategyChunked)
	defer b.Release()

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, "a\x00b", out.String())
	assert.Equal(t, "a\x00b", b.String())
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "empty", StrategyEmpty.String())
	assert.Equal(t, "mapped", StrategyMapped.String())
	assert.Equal(t, "chunked", StrategyChunked.String())
	assert.Equal(t, "unknown", Strategy(42).String())
}
