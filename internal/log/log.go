// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package log provides structured logging backed by zap.
package log

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a Logger emits.
type Level uint8

// Levels, in increasing severity.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel parses one of "debug", "info", "warn" or "error".
// An empty string yields LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("log: unknown level %q", s)
}

// Field is a key-value pair attached to a log entry.
type Field = zap.Field

// String constructs a string field.
func String(key, val string) Field { return zap.String(key, val) }
// Int constructs an int field.
func Int(key string, val int) Field { return zap.Int(key, val) }
// Float32 constructs a float32 field.
func Float32(key string, val float32) Field { return zap.Float32(key, val) }
// Error constructs a field that holds err under the "error" key.
func Error(err error) Field { return zap.Error(err) }
// Any constructs a field from an arbitrary value,
// choosing the best encoding for its type.
func Any(key string, val any) Field { return zap.Any(key, val) }

// Logger writes structured entries at or above its level.
// It is safe for concurrent use.
type Logger struct {
	zapLogger *zap.Logger
	level     zap.AtomicLevel
}

// New creates a JSON logger writing to stderr.
func New(level Level) *Logger {
	zapLevel := zap.NewAtomicLevelAt(toZapLevel(level))
	config := zap.Config{
		Level:            zapLevel,
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	zapLogger, err := config.Build()
	if err != nil {
		panic(err)
	}
	return &Logger{zapLogger: zapLogger, level: zapLevel}
}

// NewWriter creates a JSON logger writing to w.
// Writes to w are serialized.
func NewWriter(w io.Writer, level Level) *Logger {
	zapLevel := zap.NewAtomicLevelAt(toZapLevel(level))
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zapLevel,
	)
	return &Logger{zapLogger: zap.New(core), level: zapLevel}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zapLogger: zap.NewNop(), level: zap.NewAtomicLevel()}
}

// Debug logs msg at LevelDebug.
func (l *Logger) Debug(msg string, fields ...Field) { l.zapLogger.Debug(msg, fields...) }
// Info logs msg at LevelInfo.
func (l *Logger) Info(msg string, fields ...Field) { l.zapLogger.Info(msg, fields...) }
// Warn logs msg at LevelWarn.
func (l *Logger) Warn(msg string, fields ...Field) { l.zapLogger.Warn(msg, fields...) }
// Error logs msg at LevelError.
func (l *Logger) Error(msg string, fields ...Field) { l.zapLogger.Error(msg, fields...) }

// With returns a child logger that adds fields to
// every entry. The child shares the level of l.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zapLogger: l.zapLogger.With(fields...), level: l.level}
}

// SetLevel changes the level of l and of every
// logger derived from it with With.
func (l *Logger) SetLevel(level Level) { l.level.SetLevel(toZapLevel(level)) }

// GetLevel returns the current level of l.
func (l *Logger) GetLevel() Level { return fromZapLevel(l.level.Level()) }

// Sync flushes buffered entries.
func (l *Logger) Sync() error { return l.zapLogger.Sync() }

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func fromZapLevel(level zapcore.Level) Level {
	switch level {
	case zap.DebugLevel:
		return LevelDebug
	case zap.InfoLevel:
		return LevelInfo
	case zap.WarnLevel:
		return LevelWarn
	case zap.ErrorLevel:
		return LevelError
	default:
		return LevelInfo
	}
}
