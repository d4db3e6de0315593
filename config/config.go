// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/33cn/blsffi/utils/logging"
)

var (
	errNonPositiveMaxMessageLen = errors.New("max message length must be positive")
	errNonPositiveMaxBatchSize  = errors.New("max batch size must be positive")
	errNonPositiveMaxProcs      = errors.New("max procs must be positive")
	errNegativeLogRotation      = errors.New("log rotation settings must not be negative")
)

// Config is the complete configuration of the boundary.
type Config struct {
	LoggingConfig logging.Config `json:"loggingConfig"`

	// MaxMessageLen bounds every byte buffer (message or seed) read across
	// the boundary.
	MaxMessageLen int `json:"maxMessageLen"`
	// MaxBatchSize bounds the number of elements of every array read across
	// the boundary.
	MaxBatchSize int `json:"maxBatchSize"`
	MaxProcs     int `json:"maxProcs"`
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			File:     v.GetString(LogFileKey),
			MaxSize:  v.GetInt(LogMaxSizeKey),
			MaxFiles: v.GetInt(LogMaxFilesKey),
			MaxAge:   v.GetInt(LogMaxAgeKey),
			Compress: v.GetBool(LogCompressKey),
		},
	}
	if loggingConfig.MaxSize < 0 || loggingConfig.MaxFiles < 0 || loggingConfig.MaxAge < 0 {
		return loggingConfig, errNegativeLogRotation
	}

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, fmt.Errorf("invalid %s: %w", LogLevelKey, err)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(v.GetString(LogDisplayLevelKey))
	if err != nil {
		return loggingConfig, fmt.Errorf("invalid %s: %w", LogDisplayLevelKey, err)
	}
	loggingConfig.DisableDisplaying = loggingConfig.DisplayLevel == logging.Off
	return loggingConfig, nil
}

// GetConfig reads and validates a Config from [v].
func GetConfig(v *viper.Viper) (Config, error) {
	var (
		config Config
		err    error
	)
	config.LoggingConfig, err = getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	config.MaxMessageLen = v.GetInt(MaxMessageLenKey)
	if config.MaxMessageLen <= 0 {
		return Config{}, fmt.Errorf("%w: %d", errNonPositiveMaxMessageLen, config.MaxMessageLen)
	}
	config.MaxBatchSize = v.GetInt(MaxBatchSizeKey)
	if config.MaxBatchSize <= 0 {
		return Config{}, fmt.Errorf("%w: %d", errNonPositiveMaxBatchSize, config.MaxBatchSize)
	}
	config.MaxProcs = v.GetInt(MaxProcsKey)
	if config.MaxProcs <= 0 {
		return Config{}, fmt.Errorf("%w: %d", errNonPositiveMaxProcs, config.MaxProcs)
	}
	return config, nil
}

// FromEnvironment builds a Config from defaults overridden by BLS_*
// environment variables.
func FromEnvironment() (Config, error) {
	v, err := BuildViper(BuildFlagSet(), nil)
	if err != nil {
		return Config{}, err
	}
	return GetConfig(v)
}
