// Package log builds the zap loggers used by the command line tools.
package log

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"almanac/internal/config"
)

// New returns a logger writing to w at level in the given format. JSON uses
// the production encoder; anything else gets the console encoder without
// timestamps.
func New(w io.Writer, level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var enc zapcore.Encoder
	if strings.EqualFold(format, config.LogFormatJSON) {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

// FromConfig returns a logger writing to w, configured by cfg.
func FromConfig(w io.Writer, cfg config.Config) (*zap.Logger, error) {
	return New(w, cfg.LogLevel, cfg.LogFormat)
}
