// Package logging builds the logr.Logger shared by the CLI and the HTTP
// service. zap is the backend; zapr adapts it to logr so library packages
// depend only on the logr interface.
package logging

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadLevel indicates an unknown level name.
var ErrBadLevel = errors.New("logging: unknown level")

// Config selects verbosity and encoding.
type Config struct {
	// Level is one of debug, info, warn, error. Empty means info.
	// debug enables logr V(1) output.
	Level string
	// Development switches to the human-readable console encoder.
	Development bool
}

// New builds a logger writing to stderr. The returned func flushes
// buffered entries and should be deferred by the caller.
func New(cfg Config) (logr.Logger, func(), error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return logr.Discard(), func() {}, err
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zl, err := zc.Build()
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("logging: build zap logger: %w", err)
	}

	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

// NewTo builds a logger writing JSON (or console text in development) to w.
func NewTo(w io.Writer, cfg Config) (logr.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return logr.Discard(), err
	}

	encCfg := zap.NewProductionEncoderConfig()
	enc := zapcore.NewJSONEncoder(encCfg)
	if cfg.Development {
		encCfg = zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)

	return zapr.NewLogger(zap.New(core)), nil
}

func parseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, fmt.Errorf("%w: %q", ErrBadLevel, name)
	}

	return level, nil
}
