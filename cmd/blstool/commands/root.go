// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/33cn/blsffi/config"
	"github.com/33cn/blsffi/utils/compression"
	"github.com/33cn/blsffi/utils/crypto/bls/ffi"
	"github.com/33cn/blsffi/utils/logging"

	blst "github.com/supranational/blst/bindings/go"
)

const (
	outputKey = "output"

	outputYAML = "yaml"
	outputJSON = "json"
)

var errUnknownOutput = errors.New("unknown output format")

// env is shared by every subcommand of one root command.
type env struct {
	v          *viper.Viper
	log        logging.Logger
	boundary   *ffi.Boundary
	compressor compression.Compressor
	output     string
}

// NewRootCmd returns the blstool command tree. Every call returns a fresh
// tree with its own flags, logger and boundary.
func NewRootCmd() *cobra.Command {
	e := &env{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "blstool",
		Short:         "Generate, sign, aggregate and verify BLS12-381 signatures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return e.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.log != nil {
				e.log.Stop()
			}
		},
	}

	fs := cmd.PersistentFlags()
	fs.AddFlagSet(config.BuildFlagSet())
	fs.String(outputKey, outputYAML, "Output format. Should be one of {yaml, json}")
	// BindPFlags only fails on a nil flag set.
	_ = config.BindViper(e.v, fs)

	cmd.AddCommand(
		newKeyGenCmd(e),
		newPublicKeyCmd(e),
		newCiphersuitesCmd(e),
		newSignCmd(e),
		newVerifyCmd(e),
		newAggregateCmd(e),
		newVerifyAggregatedCmd(e),
		newProveCmd(e),
		newVerifyPossessionCmd(e),
	)
	return cmd
}

func (e *env) init() error {
	cfg, err := config.GetConfig(e.v)
	if err != nil {
		return err
	}

	e.output = e.v.GetString(outputKey)
	if e.output != outputYAML && e.output != outputJSON {
		return fmt.Errorf("%w: %q", errUnknownOutput, e.output)
	}

	e.log, err = logging.New("blstool", cfg.LoggingConfig)
	if err != nil {
		return fmt.Errorf("couldn't create logger: %w", err)
	}

	e.compressor, err = compression.NewZstdCompressor(int64(cfg.MaxBatchSize) * batchLineLen)
	if err != nil {
		return err
	}

	blst.SetMaxProcs(cfg.MaxProcs)

	e.boundary, err = ffi.New(
		ffi.Limits{
			MaxMessageLen: cfg.MaxMessageLen,
			MaxBatchSize:  cfg.MaxBatchSize,
		},
		e.log,
		"blstool",
		prometheus.NewRegistry(),
	)
	return err
}
