package main

import (
	"fmt"
	"os"

	"github.com/fastio/fastio/internal/bridge"
	"github.com/fastio/fastio/internal/loader"
)

var (
	lib  = newLoader()
	text = bridge.New(lib, nil)
)

func newLoader() *loader.Loader {
	cfg, err := loader.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "libfastio: %v, using defaults\n", err)
		cfg = loader.Config{}
	}
	return loader.New(cfg)
}

// readDirect loads path for the C exports. With asText set, content that
// is not valid UTF-8 counts as a failure.
func readDirect(path string, asText bool) ([]byte, bool) {
	if asText {
		s := text.ReadText(path)
		if s == nil {
			return nil, false
		}
		return []byte(*s), true
	}

	buf, err := lib.Load(path)
	if err != nil {
		return nil, false
	}
	return buf.Detach(), true
}
