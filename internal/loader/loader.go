package loader

import (
	"log/slog"
	"os"

	"github.com/fastio/fastio/internal/common"
)

// Version identifies this implementation to embedding hosts.
const Version = "1.0.0"

// Loader loads whole files. It holds only immutable settings.
type Loader struct {
	ceiling   int64
	chunkSize int
	maxBuffer int64
	mapper    common.Mapper // nil when mapping is disabled
	logger    *slog.Logger
	stat      func(*os.File) (os.FileInfo, error)
}

// New creates a Loader, filling unset Config fields with defaults.
func New(cfg Config) *Loader {
	cfg = cfg.withDefaults()

	l := &Loader{
		ceiling:   cfg.MapCeiling,
		chunkSize: cfg.ChunkSize,
		maxBuffer: cfg.MaxBufferSize,
		mapper:    cfg.Mapper,
		logger:    cfg.Logger,
		stat:      (*os.File).Stat,
	}
	if cfg.DisableMmap {
		l.mapper = nil
	}
	return l
}

var defaultLoader = New(Config{})

// Load reads path with the default configuration.
func Load(path string) (*Buffer, error) {
	return defaultLoader.Load(path)
}

// Load reads the whole of path into a new Buffer owned by the caller.
func (l *Loader) Load(path string) (*Buffer, error) {
	f, probe, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if l.Plan(probe) == StrategyMapped {
		data, err := l.readMapped(f, path, probe.Size)
		if err == nil {
			l.logger.Debug("loaded file", "path", path, "size", len(data), "strategy", StrategyMapped)
			return newBuffer(data, StrategyMapped), nil
		}
		if KindOf(err) != KindMapUnavailable {
			return nil, err
		}
		l.logger.Debug("mapping unavailable, reading in chunks", "path", path, "error", err)
	}

	data, err := l.readChunked(f, path, probe.Size)
	if err != nil {
		return nil, err
	}

	strategy := StrategyChunked
	if probe.Class == SizeEmpty {
		strategy = StrategyEmpty
	}
	l.logger.Debug("loaded file", "path", path, "size", len(data), "strategy", strategy)
	return newBuffer(data, strategy), nil
}

// Plan returns the strategy Load tries first for a file with probe p.
func (l *Loader) Plan(p Probe) Strategy {
	switch {
	case p.Class == SizeEmpty:
		return StrategyEmpty
	case p.Class == SizeMappable && l.mapper != nil:
		return StrategyMapped
	default:
		return StrategyChunked
	}
}
