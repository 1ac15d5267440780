// Package log builds the zap loggers used across the module and offers a
// small map-based emitter for call sites that assemble fields dynamically.
package log

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

func ParseLevel(s string) (LogLevel, error) {
	switch l := LogLevel(s); l {
	case LogInfo, LogWarn, LogError, LogDebug:
		return l, nil
	case "":
		return LogInfo, nil
	default:
		return "", fmt.Errorf("unknown log level: %q", s)
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogDebug:
		return zap.DebugLevel
	case LogWarn:
		return zap.WarnLevel
	case LogError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// New returns a JSON production logger, or a colored console logger on
// stderr when console is set.
func New(level LogLevel, console bool) (*zap.Logger, error) {
	if console {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			level.zapLevel(),
		)
		return zap.New(core), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.zapLevel())
	return cfg.Build()
}

// NewTest returns a debug-level console logger on stdout.
func NewTest() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

// OrNop substitutes a no-op logger for nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Emit logs msg at level with fields rendered through zap.Any, in key order.
func Emit(logger *zap.Logger, level LogLevel, msg string, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(fields))
	for _, k := range keys {
		zapFields = append(zapFields, zap.Any(k, fields[k]))
	}

	switch level {
	case LogInfo:
		logger.Info(msg, zapFields...)
	case LogWarn:
		logger.Warn(msg, zapFields...)
	case LogError:
		logger.Error(msg, zapFields...)
	case LogDebug:
		logger.Debug(msg, zapFields...)
	default:
		logger.Info(msg, zapFields...)
	}
}

// Sync flushes logger, reporting failures through the logger itself.
// Errors from syncing a terminal are expected and ignored.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil && !isTerminalSyncErr(err) {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}

func isTerminalSyncErr(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr) && (pathErr.Path == "/dev/stdout" || pathErr.Path == "/dev/stderr")
}
