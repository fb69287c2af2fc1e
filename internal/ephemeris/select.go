package ephemeris

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Mode selects the ephemeris backend
type Mode int

const (
	ModeAuto     Mode = iota // table when a data path exists, otherwise analytic
	ModeAnalytic             // built-in orbital elements
	ModeTable                // SQLite table at the data path
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeAnalytic:
		return "analytic"
	case ModeTable:
		return "table"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name; the empty string means auto
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "analytic":
		return ModeAnalytic, nil
	case "table":
		return ModeTable, nil
	default:
		return ModeAuto, fmt.Errorf("unknown ephemeris mode %q", s)
	}
}

// Options configure Open
type Options struct {
	Mode      Mode
	DataPath  string
	CacheSize int // 0 disables the cache
}

// Backend is the provider chosen at startup plus the resources it owns
type Backend struct {
	Provider
	Cache *Cache // nil when caching is disabled
	table *Table
}

// Close releases the table backend's database, if any
func (b *Backend) Close() error {
	if b.table == nil {
		return nil
	}
	return b.table.Close()
}

// Open selects and opens the backend described by opts
func Open(opts Options, logger *slog.Logger) (*Backend, error) {
	logger = logger.With("component", "ephemeris")

	mode := opts.Mode
	if mode == ModeAuto {
		mode = ModeAnalytic
		if opts.DataPath != "" {
			if _, err := os.Stat(opts.DataPath); err == nil {
				mode = ModeTable
			} else {
				logger.Warn("ephemeris data path not usable, falling back to analytic backend",
					"path", opts.DataPath,
					"error", err,
				)
			}
		}
	}

	backend := &Backend{}
	switch mode {
	case ModeAnalytic:
		backend.Provider = NewAnalytic()
	case ModeTable:
		if opts.DataPath == "" {
			return nil, errors.New("table ephemeris mode requires a data path")
		}
		if _, err := os.Stat(opts.DataPath); err != nil {
			return nil, fmt.Errorf("failed to open ephemeris table: %w", err)
		}
		table, err := OpenTable(opts.DataPath)
		if err != nil {
			return nil, err
		}
		backend.Provider = table
		backend.table = table
		logger.Debug("ephemeris table opened", "path", table.Path())
	default:
		return nil, fmt.Errorf("unknown ephemeris mode %v", opts.Mode)
	}

	if opts.CacheSize > 0 {
		cache, err := NewCache(backend.Provider, opts.CacheSize)
		if err != nil {
			_ = backend.Close()
			return nil, err
		}
		backend.Cache = cache
		backend.Provider = cache
	}

	logger.Info("ephemeris backend selected",
		"backend", backend.Name(),
		"mode", opts.Mode.String(),
		"cacheSize", opts.CacheSize,
	)
	return backend, nil
}
