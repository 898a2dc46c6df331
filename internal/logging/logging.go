// Package logging is a thin wrapper of the zap logging library.
//
// By histkit convention each package declares its logger alongside the
// package docstring:
//
//	var logger = logging.New("split")
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root = func() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		os.Stderr,
		zap.DebugLevel,
	)
	return zap.New(core)
}()

// New creates a named logger initialized with the configured log level.
//
// The level is read from HISTKIT_LOG_<PKG> (package name upper-cased), falling
// back to HISTKIT_LOG, falling back to info.
func New(pkg string) *zap.Logger {
	return root.Named(pkg).
		WithOptions(zap.IncreaseLevel(zap.NewAtomicLevelAt(level(pkg))))
}

func level(pkg string) zapcore.Level {
	lvl, ok := os.LookupEnv("HISTKIT_LOG_" + strings.ToUpper(pkg))
	if !ok {
		lvl, ok = os.LookupEnv("HISTKIT_LOG")
	}
	if !ok || lvl == "" {
		return zapcore.InfoLevel
	}

	switch lvl[0] {
	case 'V', 'D', 'v', 'd':
		return zapcore.DebugLevel
	case 'I', 'i':
		return zapcore.InfoLevel
	case 'W', 'w':
		return zapcore.WarnLevel
	case 'E', 'e':
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
