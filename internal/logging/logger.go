package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how verbosely the CLI logs.
type Options struct {
	Level string
	File  string
}

// New builds a zap logger. Without a file it returns a no-op logger: the
// TUI owns the terminal, so nothing may be written to stdout or stderr.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" {
		return zap.NewNop(), nil
	}

	zapConfig := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.Encoding = "json"
	zapConfig.OutputPaths = []string{opts.File}
	zapConfig.ErrorOutputPaths = []string{opts.File}

	return zapConfig.Build()
}
