package main

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevels = map[string]zapcore.Level{
	"ERROR": zapcore.ErrorLevel,
	"INFO":  zapcore.InfoLevel,
	"DEBUG": zapcore.DebugLevel,
}

// newLogger builds a console logger writing to path ("-" means stderr). An
// unknown level falls back to INFO and is reported once the logger exists.
func newLogger(level string, path string) (*zap.SugaredLogger, error) {
	lvl, ok := logLevels[strings.ToUpper(level)]
	if !ok {
		lvl = zapcore.InfoLevel
	}

	if path == "-" {
		path = "stderr"
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Sampling = nil
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	logger := l.Sugar()
	if !ok {
		logger.Infof("Bad log level %s ignored, default to INFO.", level)
	}
	return logger, nil
}
