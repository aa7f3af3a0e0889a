// Package logging builds the zap logger used by the katas command line tool.
// Library packages never log; only the CLI layer does.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format represents the output encoding of log entries.
type Format string

const (
	// JSONFormat outputs one JSON object per entry.
	JSONFormat Format = "json"
	// HumanFormat outputs tab-separated console lines.
	HumanFormat Format = "human"
)

// Config holds logger configuration.
type Config struct {
	Format Format
	Level  string    // debug, info, warn, error; empty means info
	Output io.Writer // defaults to stderr
}

// NewLogger creates a zap logger for cfg.
// An unknown level or format is reported as an error rather than silently defaulted.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch cfg.Format {
	case JSONFormat:
		enc = zapcore.NewJSONEncoder(encCfg)
	case HumanFormat, "":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), level)), nil
}
