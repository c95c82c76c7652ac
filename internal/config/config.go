// Package config holds the sparsecalc driver settings: defaults, flag
// binding and validation.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/lvsparse/internal/logger"
	"github.com/katalvlaran/lvsparse/matrix"
)

// Operation names accepted by -op.
const (
	OpNone = ""
	OpAdd  = "add"
	OpSub  = "sub"
	OpMul  = "mul"
)

// ErrInvalidConfig wraps every flag combination Validate rejects.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the driver configuration, one field per command-line flag.
type Config struct {
	PathA        string
	PathB        string
	Op           string // OpNone runs the interactive menu
	Watch        bool
	Debounce     time.Duration
	StrictBounds bool
	LogLevel     string
	LogFormat    string
}

// Default returns the configuration used when no flags are given: the
// interactive menu over matrix1.txt and matrix2.txt.
func Default() Config {
	return Config{
		PathA:        "matrix1.txt",
		PathB:        "matrix2.txt",
		Op:           OpNone,
		Watch:        false,
		Debounce:     300 * time.Millisecond,
		StrictBounds: matrix.DefaultStrictBounds,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Parse binds flags over Default and validates the result. Usage and flag
// errors go to errOut.
func Parse(name string, args []string, errOut io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.PathA, "a", cfg.PathA, "path of the left operand")
	fs.StringVar(&cfg.PathB, "b", cfg.PathB, "path of the right operand")
	fs.StringVar(&cfg.Op, "op", cfg.Op, "run one operation (add|sub|mul) instead of the menu")
	fs.BoolVar(&cfg.Watch, "watch", cfg.Watch, "recompute -op whenever an operand file changes")
	fs.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before recomputing in -watch mode")
	fs.BoolVar(&cfg.StrictBounds, "strict", cfg.StrictBounds, "reject triples outside the declared dimensions")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text|json")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting as an ErrInvalidConfig error.
func (c Config) Validate() error {
	switch c.Op {
	case OpNone, OpAdd, OpSub, OpMul:
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidConfig, c.Op)
	}
	if c.Watch && c.Op == OpNone {
		return fmt.Errorf("%w: -watch needs -op", ErrInvalidConfig)
	}
	if c.PathA == "" || c.PathB == "" {
		return fmt.Errorf("%w: operand paths must not be empty", ErrInvalidConfig)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", ErrInvalidConfig)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Logger returns the logger configuration derived from c. Validate first.
func (c Config) Logger(out io.Writer) logger.Config {
	lc := logger.DefaultConfig()
	lc.Output = out
	lc.Format = c.LogFormat
	lc.Level, _ = logger.ParseLevel(c.LogLevel) // falls back to info

	return lc
}

// ParseOptions returns the matrix parser options implied by c.
func (c Config) ParseOptions() []matrix.Option {
	return []matrix.Option{matrix.WithStrictBounds(c.StrictBounds)}
}
