// Package bridge converts loader results into the value shapes a managed
// host runtime expects: a string on success and null on any failure.
//
// Strings are built from the buffer's length, never by scanning for a
// terminator, so binary content with NUL bytes crosses intact. Callers that
// need text must validate it themselves; no transcoding happens here.
package bridge

import (
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/fastio/fastio/internal/loader"
)

// Source loads whole files. *loader.Loader satisfies it.
type Source interface {
	Load(path string) (*loader.Buffer, error)
}

// Bridge adapts a Source for a managed runtime.
type Bridge struct {
	src    Source
	logger *slog.Logger
}

// New returns a Bridge over src. A nil logger discards.
func New(src Source, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Bridge{src: src, logger: logger}
}

// ReadString returns the contents of path and whether the load succeeded.
func (b *Bridge) ReadString(path string) (string, bool) {
	buf, err := b.src.Load(path)
	if err != nil {
		b.logger.Debug("load failed", "path", path, "kind", loader.KindOf(err), "error", err)
		return "", false
	}
	defer func() { _ = buf.Release() }()

	return buf.String(), true
}

// ReadNullable returns the contents of path, or nil on any failure.
func (b *Bridge) ReadNullable(path string) *string {
	s, ok := b.ReadString(path)
	if !ok {
		return nil
	}
	return &s
}

// ReadText is like ReadNullable but also returns nil when the contents are
// not valid UTF-8, for runtimes whose string type requires it.
func (b *Bridge) ReadText(path string) *string {
	s := b.ReadNullable(path)
	if s == nil || !utf8.ValidString(*s) {
		return nil
	}
	return s
}
