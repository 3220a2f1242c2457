package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadDirectKeepsZeroBytes(t *testing.T) {
	content := []byte("head\x00middle\x00tail")
	path := writeFile(t, "nul.bin", content)

	data, ok := readDirect(path, false)
	require.True(t, ok)
	assert.Equal(t, content, data)

	data, ok = readDirect(path, true)
	require.True(t, ok)
	assert.Equal(t, content, data)
}

func TestReadDirectEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	for _, asText := range []bool{false, true} {
		data, ok := readDirect(path, asText)
		require.True(t, ok, "asText=%v", asText)
		assert.Empty(t, data)
	}
}

func TestReadDirectMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	for _, asText := range []bool{false, true} {
		data, ok := readDirect(path, asText)
		assert.False(t, ok, "asText=%v", asText)
		assert.Nil(t, data)
	}
}

func TestReadDirectInvalidUTF8(t *testing.T) {
	content := []byte{'o', 'k', 0xff, 0xfe}
	path := writeFile(t, "latin.bin", content)

	data, ok := readDirect(path, false)
	require.True(t, ok)
	assert.Equal(t, content, data)

	data, ok = readDirect(path, true)
	assert.False(t, ok)
	assert.Nil(t, data)
}
