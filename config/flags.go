// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "bls"

	DefaultMaxMessageLen = 64 * 1024 * 1024
	DefaultMaxBatchSize  = 1 << 20
)

// DefaultMaxProcs leaves one core to the host process.
func DefaultMaxProcs() int {
	return max(runtime.GOMAXPROCS(0)-1, 1)
}

func addFlags(fs *pflag.FlagSet) {
	// Logging
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "warn", "The log display level. Should be one of {verbo, debug, info, warn, error, fatal, off}")
	fs.String(LogFileKey, "", "Path of the log file. If empty, no log file is written")
	fs.Int(LogMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Int(LogMaxFilesKey, 7, "The maximum number of rotated log files to keep")
	fs.Int(LogMaxAgeKey, 0, "The maximum number of days to retain rotated log files. If 0, files are never removed based on age")
	fs.Bool(LogCompressKey, false, "If true, rotated log files are compressed with gzip")

	// Boundary
	fs.Int(MaxMessageLenKey, DefaultMaxMessageLen, "The maximum length in bytes of a message or seed accepted across the boundary")
	fs.Int(MaxBatchSizeKey, DefaultMaxBatchSize, "The maximum number of keys or signatures accepted in one call")
	fs.Int(MaxProcsKey, DefaultMaxProcs(), "The maximum number of goroutines used by a single pairing check")
}

// BuildFlagSet returns a complete set of flags for the library and its tools
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("bls", pflag.ContinueOnError)
	addFlags(fs)
	return fs
}

// BuildViper parses [args] into [fs] and returns a viper bound to both [fs]
// and the environment.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := BindViper(v, fs); err != nil {
		return nil, err
	}
	return v, nil
}

// BindViper makes [fs] and, with a higher priority than flag defaults, the
// environment visible through [v]. Keys map to variables such as
// BLS_LOG_LEVEL. [fs] may be parsed after binding.
func BindViper(v *viper.Viper, fs *pflag.FlagSet) error {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	return v.BindPFlags(fs)
}
