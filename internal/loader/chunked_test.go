package loader

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastio/fastio/internal/fixture"
)

// recordingReader remembers the largest read it was asked for.
type recordingReader struct {
	r       io.Reader
	largest int
	calls   int
}

func (r *recordingReader) Read(p []byte) (int, error) {
	r.calls++
	r.largest = max(r.largest, len(p))
	return r.r.Read(p)
}

// stallingReader returns data, then zero bytes without an error.
type stallingReader struct {
	data []byte
}

func (r *stallingReader) Read(p []byte) (int, error) {
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadChunkedBoundsEachRead(t *testing.T) {
	want := fixture.Bytes(10_000, 3)
	rec := &recordingReader{r: bytes.NewReader(want)}
	l := New(Config{ChunkSize: 1024})

	got, err := l.readChunked(rec, "mem", int64(len(want)))
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, 1024, rec.largest)
	assert.Equal(t, 10, rec.calls)
}

func TestReadChunkedShortReads(t *testing.T) {
	want := fixture.Bytes(3000, 4)
	l := New(Config{ChunkSize: 512})

	got, err := l.readChunked(iotest.OneByteReader(bytes.NewReader(want)), "mem", int64(len(want)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadChunkedEarlyEOF(t *testing.T) {
	want := fixture.Bytes(500, 5)
	l := New(Config{ChunkSize: 128})

	got, err := l.readChunked(bytes.NewReader(want), "mem", 1000)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 500, cap(got))
}

func TestReadChunkedDataWithEOF(t *testing.T) {
	want := fixture.Bytes(700, 6)
	l := New(Config{ChunkSize: 4096})

	got, err := l.readChunked(iotest.DataErrReader(bytes.NewReader(want)), "mem", 1000)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadChunkedZeroReadEndsLoop(t *testing.T) {
	l := New(Config{ChunkSize: 64})

	got, err := l.readChunked(&stallingReader{data: []byte("partial")}, "mem", 100)
	require.NoError(t, err)
	assert.Equal(t, []byte("partial"), got)
}

func TestReadChunkedError(t *testing.T) {
	boom := errors.New("device error")
	l := New(Config{ChunkSize: 64})

	r := io.MultiReader(bytes.NewReader(make([]byte, 100)), iotest.ErrReader(boom))
	got, err := l.readChunked(r, "/data/file.bin", 1000)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, KindReadFailed, KindOf(err))
	assert.ErrorIs(t, err, boom)
}

func TestReadChunkedEmpty(t *testing.T) {
	l := New(Config{})

	got, err := l.readChunked(iotest.ErrReader(errors.New("must not read")), "mem", 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAllocate(t *testing.T) {
	buf, err := allocate(16, 16)
	require.NoError(t, err)
	assert.Len(t, buf, 16)

	_, err = allocate(17, 16)
	assert.Equal(t, KindAllocationFailed, KindOf(err))

	_, err = allocate(-1, 16)
	assert.Equal(t, KindAllocationFailed, KindOf(err))
}
