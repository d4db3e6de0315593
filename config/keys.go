// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	LogLevelKey        = "log-level"
	LogDisplayLevelKey = "log-display-level"
	LogFileKey         = "log-file"
	LogMaxSizeKey      = "log-max-size"
	LogMaxFilesKey     = "log-max-files"
	LogMaxAgeKey       = "log-max-age"
	LogCompressKey     = "log-compress"
	MaxMessageLenKey   = "max-message-len"
	MaxBatchSizeKey    = "max-batch-size"
	MaxProcsKey        = "max-procs"
)
