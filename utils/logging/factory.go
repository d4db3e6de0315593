// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const termTimeFormat = "[01-02|15:04:05.000]"

func newTermEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeLevel = levelEncoder
	config.EncodeTime = zapcore.TimeEncoderOfLayout(termTimeFormat)
	config.ConsoleSeparator = " "
	return config
}

func newFileEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeLevel = lowerLevelEncoder
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	return config
}

// New builds a logger that displays entries on stderr and, if [config] names
// a file, writes them to that file with rotation.
//
// Stdout is left to the host process that loaded the library.
func New(name string, config Config) (Logger, error) {
	var cores []WrappedCore
	if !config.DisableDisplaying {
		cores = append(cores, NewWrappedCore(
			config.DisplayLevel,
			zapcore.Lock(os.Stderr),
			zapcore.NewConsoleEncoder(newTermEncoderConfig()),
		))
	}
	if config.File != "" {
		if err := os.MkdirAll(filepath.Dir(config.File), 0o750); err != nil {
			return nil, err
		}
		writer := &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxFiles,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		core := NewWrappedCore(
			config.LogLevel,
			zapcore.AddSync(writer),
			zapcore.NewJSONEncoder(newFileEncoderConfig()),
		)
		core.Closer = writer
		cores = append(cores, core)
	}
	if len(cores) == 0 {
		return NoLog{}, nil
	}
	return NewLogger(name, cores...), nil
}
