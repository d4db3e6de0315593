// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// RotatingWriterConfig configures the lumberjack writer behind the log file.
type RotatingWriterConfig struct {
	// File is the path of the log file. No file is written when it is empty.
	File string `json:"file"`
	// MaxSize is the size in megabytes a file may reach before it is rotated.
	MaxSize int `json:"maxSize"`
	// MaxFiles is the number of rotated files to retain.
	MaxFiles int `json:"maxFiles"`
	// MaxAge is the number of days to retain rotated files.
	MaxAge   int  `json:"maxAge"`
	Compress bool `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableDisplaying bool  `json:"disableDisplaying"`
	LogLevel          Level `json:"logLevel"`
	DisplayLevel      Level `json:"displayLevel"`
}
