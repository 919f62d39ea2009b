// Package logging builds the zap logger shared by the commands, the store
// and the servers. User facing output goes to stdout through printers; logs
// always go to stderr.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects level and encoding.
type Config struct {
	Level  string
	Format string
}

// DefaultConfig keeps the CLI quiet unless something goes wrong.
func DefaultConfig() Config {
	return Config{Level: "warn", Format: FormatConsole}
}

// Validate checks the level and format names.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.level()); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	switch c.format() {
	case FormatConsole, FormatJSON:
		return nil
	default:
		return fmt.Errorf("logging: format must be %q or %q, got %q", FormatConsole, FormatJSON, c.Format)
	}
}

func (c Config) level() string {
	if c.Level == "" {
		return DefaultConfig().Level
	}
	return c.Level
}

func (c Config) format() string {
	if c.Format == "" {
		return DefaultConfig().Format
	}
	return c.Format
}

// New builds a logger writing to stderr.
func New(cfg Config) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := zapcore.ParseLevel(cfg.level())
	core := zapcore.NewCore(newEncoder(cfg.format()), zapcore.Lock(os.Stderr), level)
	return zap.New(core), nil
}

func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == FormatConsole {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

// Nop discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// NewObserved returns a logger that records entries at level and above, for
// assertions in tests.
func NewObserved(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}
