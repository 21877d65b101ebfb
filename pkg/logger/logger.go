package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a sugared zap logger so callers never import zap directly.
type Logger struct {
	*zap.SugaredLogger
}

// Log is the package-global logger, available after Init.
var Log *Logger

var base *zap.Logger

type Config struct {
	Debug     bool
	LogToFile bool
	LogsDir   string
}

// Init builds the global logger. Must be called once at startup before any
// component logs.
func Init(cfg Config) error {
	level := zap.InfoLevel
	if cfg.Debug {
		level = zap.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stdout),
			level,
		),
	}

	if cfg.LogToFile {
		if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
			return fmt.Errorf("create logs dir: %w", err)
		}
		f, err := os.OpenFile(
			filepath.Join(cfg.LogsDir, "api.log"),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY,
			0o644,
		)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.Lock(f),
			level,
		))
	}

	base = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	Log = &Logger{base.Sugar()}
	return nil
}

// Named returns a child logger for a single service or adapter.
func Named(name string) (*Logger, error) {
	if base == nil {
		return nil, fmt.Errorf("logger is not initialized")
	}
	return &Logger{base.Named(name).Sugar()}, nil
}

// Nop returns a logger that discards everything; used in tests.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// Cleanup flushes buffered entries; called last during shutdown.
func Cleanup() error {
	if base == nil {
		return nil
	}
	return base.Sync()
}
