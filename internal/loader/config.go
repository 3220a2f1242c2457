package loader

import (
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/docker/go-units"
	"github.com/jmgilman/go/errors"
	"github.com/spf13/cast"

	"github.com/fastio/fastio/internal/common"
)

const (
	// DefaultMapCeiling is the largest file that is memory mapped.
	DefaultMapCeiling int64 = 100 << 20
	// DefaultChunkSize is the transfer size of the chunked path.
	DefaultChunkSize = 1 << 20
)

// Environment variables read by ConfigFromEnv.
const (
	EnvMapCeiling  = "FASTIO_MAP_CEILING"
	EnvChunkSize   = "FASTIO_CHUNK_SIZE"
	EnvDisableMmap = "FASTIO_DISABLE_MMAP"
	EnvMapper      = "FASTIO_MAPPER"
)

// Config holds loader settings. Zero fields take their defaults.
type Config struct {
	// MapCeiling is the largest size that is mapped. Negative values
	// classify every non-empty file as oversized.
	MapCeiling int64
	// ChunkSize bounds each read call of the chunked path.
	ChunkSize int
	// MaxBufferSize caps a single allocation; 0 means math.MaxInt.
	MaxBufferSize int64
	// DisableMmap forces the chunked path.
	DisableMmap bool
	// Mapper is the mapping backend; nil selects common.DefaultMapper.
	Mapper common.Mapper
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.MapCeiling == 0 {
		c.MapCeiling = DefaultMapCeiling
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.MaxBufferSize <= 0 || c.MaxBufferSize > math.MaxInt {
		c.MaxBufferSize = math.MaxInt
	}
	if c.Mapper == nil {
		c.Mapper = common.DefaultMapper()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// ConfigFromEnv builds a Config from the FASTIO_* environment variables.
// Sizes accept human units such as "100MiB" or "256k".
func ConfigFromEnv() (Config, error) {
	var cfg Config

	if v := os.Getenv(EnvMapCeiling); v != "" {
		n, err := units.RAMInBytes(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, errors.CodeInvalidConfig, "invalid %s", EnvMapCeiling)
		}
		cfg.MapCeiling = n
	}

	if v := os.Getenv(EnvChunkSize); v != "" {
		n, err := units.RAMInBytes(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, errors.CodeInvalidConfig, "invalid %s", EnvChunkSize)
		}
		if n > math.MaxInt32 {
			return Config{}, errors.Newf(errors.CodeInvalidConfig, "%s too large: %d", EnvChunkSize, n)
		}
		cfg.ChunkSize = int(n)
	}

	if v := os.Getenv(EnvDisableMmap); v != "" {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, errors.CodeInvalidConfig, "invalid %s", EnvDisableMmap)
		}
		cfg.DisableMmap = b
	}

	if v := os.Getenv(EnvMapper); v != "" {
		m, err := common.MapperByName(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, errors.CodeInvalidConfig, "invalid %s", EnvMapper)
		}
		cfg.Mapper = m
	}

	return cfg, nil
}
