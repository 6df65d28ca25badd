// Package logging wraps zap with a small, fixed configuration for the
// wordrules CLI: console or file sink, leveled output, optional
// rotation via lumberjack when writing to a file.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects a logger's level and sink.
type Config struct {
	// Level is one of "debug", "info", "warn", "error". Defaults to
	// "info" when empty.
	Level string
	// FilePath, when set, writes logs to a rotated file instead of
	// stderr.
	FilePath string
	// MaxSizeMB bounds the rotated log file size (lumberjack).
	// Defaults to 10 when zero.
	MaxSizeMB int
}

// Logger wraps a configured zap.Logger.
type Logger struct {
	zap *zap.Logger
}

// New builds a Logger from config. config may not be nil.
func New(config *Config) (*Logger, error) {
	if config == nil {
		return nil, fmt.Errorf("logging: config cannot be nil")
	}

	level, err := parseLevel(config.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var sink zapcore.WriteSyncer
	if config.FilePath != "" {
		maxSize := config.MaxSizeMB
		if maxSize == 0 {
			maxSize = 10
		}
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename: config.FilePath,
			MaxSize:  maxSize,
			MaxAge:   28,
			Compress: true,
		})
	} else {
		sink = zapcore.Lock(zapcore.AddSync(os.Stderr))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, level)
	return &Logger{zap: zap.New(core)}, nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", level)
	}
}

// Debug logs at debug level with structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }

// Info logs at info level with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) { l.zap.Info(msg, fields...) }

// Warn logs at warn level with structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) { l.zap.Warn(msg, fields...) }

// Error logs at error level with structured fields.
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error { return l.zap.Sync() }
