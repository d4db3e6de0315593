// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/33cn/blsffi/utils/crypto/bls/ffi"
)

var errEpochCount = errors.New("number of epochs must match number of signatures")

// message is the message of a sign or verify command, given either as hex or
// as text.
type message struct {
	hex  string
	text string
}

func (m *message) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&m.hex, "message", "", "Hex encoded message")
	cmd.Flags().StringVar(&m.text, "message-text", "", "Message given as text")
	cmd.MarkFlagsMutuallyExclusive("message", "message-text")
}

func (m *message) bytes() ([]byte, error) {
	if m.text != "" {
		return []byte(m.text), nil
	}
	return decodeHex("message", m.hex)
}

func newSignCmd(e *env) *cobra.Command {
	var (
		skHex string
		msg   message
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sk ffi.SecretKey
			if err := decodeFixed("secret key", skHex, sk[:]); err != nil {
				return err
			}
			msgBytes, err := msg.bytes()
			if err != nil {
				return err
			}

			var sig ffi.Signature
			status := e.boundary.Sign(&sk, bytesPtr(msgBytes), uintptr(len(msgBytes)), &sig)
			if err := checkStatus("sign", status); err != nil {
				return err
			}
			return e.write(cmd.OutOrStdout(), signatureOutput{
				Signature: encodeHex(sig[:]),
			})
		},
	}
	cmd.Flags().StringVar(&skHex, "secret-key", "", "Hex encoded secret key")
	msg.addFlags(cmd)
	_ = cmd.MarkFlagRequired("secret-key")
	return cmd
}

func newVerifyCmd(e *env) *cobra.Command {
	var (
		pkHex, sigHex string
		msg           message
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the signature of a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				pk  ffi.PublicKey
				sig ffi.Signature
			)
			if err := decodeFixed("public key", pkHex, pk[:]); err != nil {
				return err
			}
			if err := decodeFixed("signature", sigHex, sig[:]); err != nil {
				return err
			}
			msgBytes, err := msg.bytes()
			if err != nil {
				return err
			}

			var valid bool
			status := e.boundary.Verify(&pk, bytesPtr(msgBytes), uintptr(len(msgBytes)), &sig, &valid)
			if err := checkStatus("verify", status); err != nil {
				return err
			}
			return e.write(cmd.OutOrStdout(), verificationOutput{Valid: valid})
		},
	}
	cmd.Flags().StringVar(&pkHex, "public-key", "", "Hex encoded public key")
	cmd.Flags().StringVar(&sigHex, "signature", "", "Hex encoded signature")
	msg.addFlags(cmd)
	_ = cmd.MarkFlagRequired("public-key")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}

func newAggregateCmd(e *env) *cobra.Command {
	var (
		sigHexes []string
		sigsFile string
		epochs   []uint
	)
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Aggregate signatures without verifying them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fromFile, err := e.readBatchFile(sigsFile)
			if err != nil {
				return err
			}
			all := make([]string, 0, len(sigHexes)+len(fromFile))
			all = append(all, sigHexes...)
			all = append(all, fromFile...)

			sigs := make([]ffi.Signature, len(all))
			for i, sigHex := range all {
				if err := decodeFixed(fmt.Sprintf("signature %d", i), sigHex, sigs[i][:]); err != nil {
					return err
				}
			}

			var (
				aggSig ffi.Signature
				out    signatureOutput
			)
			if len(epochs) == 0 {
				status := e.boundary.Aggregate(unsafe.SliceData(sigs), uintptr(len(sigs)), &aggSig)
				if err := checkStatus("aggregate", status); err != nil {
					return err
				}
			} else {
				if len(epochs) != len(sigs) {
					return fmt.Errorf("%w: %d epochs, %d signatures", errEpochCount, len(epochs), len(sigs))
				}
				tags := make([]uint64, len(epochs))
				for i, epoch := range epochs {
					tags[i] = uint64(epoch)
				}
				status := e.boundary.AggregateTagged(
					unsafe.SliceData(sigs),
					unsafe.SliceData(tags),
					uintptr(len(sigs)),
					&aggSig,
				)
				if err := checkStatus("aggregate", status); err != nil {
					return err
				}
				out.Epoch = &tags[0]
			}
			out.Signature = encodeHex(aggSig[:])
			return e.write(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringSliceVar(&sigHexes, "signature", nil, "Hex encoded signature. May be repeated")
	cmd.Flags().StringVar(&sigsFile, "signatures-file", "", "File with one hex encoded signature per line, read after --signature. Zstd compressed if it ends in .zst")
	cmd.Flags().UintSliceVar(&epochs, "epoch", nil, "Epoch of each signature, in the same order. If set, all epochs must be equal")
	return cmd
}

func newVerifyAggregatedCmd(e *env) *cobra.Command {
	var (
		pkHexes []string
		pksFile string
		sigHex  string
		msg     message
	)
	cmd := &cobra.Command{
		Use:   "verify-aggregated",
		Short: "Verify an aggregate signature of one message by a set of public keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fromFile, err := e.readBatchFile(pksFile)
			if err != nil {
				return err
			}
			all := make([]string, 0, len(pkHexes)+len(fromFile))
			all = append(all, pkHexes...)
			all = append(all, fromFile...)

			pks := make([]ffi.PublicKey, len(all))
			for i, pkHex := range all {
				if err := decodeFixed(fmt.Sprintf("public key %d", i), pkHex, pks[i][:]); err != nil {
					return err
				}
			}
			var sig ffi.Signature
			if err := decodeFixed("signature", sigHex, sig[:]); err != nil {
				return err
			}
			msgBytes, err := msg.bytes()
			if err != nil {
				return err
			}

			var valid bool
			status := e.boundary.VerifyAggregated(
				unsafe.SliceData(pks),
				uintptr(len(pks)),
				bytesPtr(msgBytes),
				uintptr(len(msgBytes)),
				&sig,
				&valid,
			)
			if err := checkStatus("verify-aggregated", status); err != nil {
				return err
			}
			return e.write(cmd.OutOrStdout(), verificationOutput{Valid: valid})
		},
	}
	cmd.Flags().StringSliceVar(&pkHexes, "public-key", nil, "Hex encoded public key. May be repeated")
	cmd.Flags().StringVar(&pksFile, "public-keys-file", "", "File with one hex encoded public key per line, read after --public-key. Zstd compressed if it ends in .zst")
	cmd.Flags().StringVar(&sigHex, "signature", "", "Hex encoded aggregate signature")
	msg.addFlags(cmd)
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}
