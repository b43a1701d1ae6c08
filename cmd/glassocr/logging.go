// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for --log-file.
const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// newLoggerConfig is a development-style console config without stacktraces.
func newLoggerConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// newLogger writes console logs to w and, when logFile is set, JSON logs to
// a rotated file. The returned func flushes and closes the file. The console
// sink is unbuffered and is never synced: fsync on a terminal or pipe fails
// with EINVAL.
func newLogger(w io.Writer, debug bool, logFile string) (*zap.Logger, func() error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		level.SetLevel(zap.DebugLevel)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(newLoggerConfig()), zapcore.AddSync(consoleWriter{w}), level),
	}
	var rotator *lumberjack.Logger
	if logFile != "" {
		rotator = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotator),
			level,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...)).Named("glassocr")
	closer := func() error {
		err := logger.Sync()
		if rotator != nil {
			err = multierr.Append(err, rotator.Close())
		}

		return err
	}

	return logger, closer
}

// consoleWriter hides any Sync method of the wrapped writer.
type consoleWriter struct{ io.Writer }
