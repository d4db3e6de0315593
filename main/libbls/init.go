// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import "C"

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/33cn/blsffi/config"
	"github.com/33cn/blsffi/utils/crypto/bls/ffi"
	"github.com/33cn/blsffi/utils/logging"

	blst "github.com/supranational/blst/bindings/go"
)

const (
	loggerName       = "libbls"
	metricsNamespace = "bls"
)

var (
	boundary *ffi.Boundary

	// Allocated once and never freed so they can be returned to C callers.
	statusTexts       = make(map[ffi.Status]*C.char)
	unknownStatusText = C.CString(ffi.Status(-1).Text())
)

func init() {
	for status := ffi.StatusOK; status <= ffi.StatusInternal; status++ {
		statusTexts[status] = C.CString(status.Text())
	}

	cfg, cfgErr := config.FromEnvironment()
	if cfgErr != nil {
		cfg = config.Config{
			LoggingConfig: logging.Config{
				LogLevel:     logging.Off,
				DisplayLevel: logging.Warn,
			},
			MaxMessageLen: config.DefaultMaxMessageLen,
			MaxBatchSize:  config.DefaultMaxBatchSize,
			MaxProcs:      config.DefaultMaxProcs(),
		}
	}

	log, err := logging.New(loggerName, cfg.LoggingConfig)
	if err != nil {
		log = logging.NoLog{}
	}
	if cfgErr != nil {
		log.Warn("invalid configuration in environment, using defaults",
			zap.Error(cfgErr),
		)
	}

	blst.SetMaxProcs(cfg.MaxProcs)

	// The host process may already export collectors under this namespace.
	boundary = ffi.NewWithFallback(
		ffi.Limits{
			MaxMessageLen: cfg.MaxMessageLen,
			MaxBatchSize:  cfg.MaxBatchSize,
		},
		log,
		metricsNamespace,
		prometheus.DefaultRegisterer,
	)

	log.Info("loaded",
		zap.Int("maxMessageLen", cfg.MaxMessageLen),
		zap.Int("maxBatchSize", cfg.MaxBatchSize),
		zap.Int("maxProcs", cfg.MaxProcs),
	)
}
