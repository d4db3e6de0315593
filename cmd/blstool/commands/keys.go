// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/33cn/blsffi/utils/crypto/bls"
	"github.com/33cn/blsffi/utils/crypto/bls/ffi"
)

func newKeyGenCmd(e *env) *cobra.Command {
	var (
		seedHex     string
		ciphersuite uint8
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Derive a key pair from a seed of at least 32 bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed, err := decodeHex("seed", seedHex)
			if err != nil {
				return err
			}

			var kp ffi.KeyPair
			status := e.boundary.KeyGen(bytesPtr(seed), uintptr(len(seed)), ciphersuite, &kp)
			if err := checkStatus("keygen", status); err != nil {
				return err
			}
			return e.write(cmd.OutOrStdout(), keyPairOutput{
				PublicKey: encodeHex(kp.PublicKey[:]),
				SecretKey: encodeHex(kp.SecretKey[:]),
			})
		},
	}
	cmd.Flags().StringVar(&seedHex, "seed", "", "Hex encoded seed")
	cmd.Flags().Uint8Var(&ciphersuite, "ciphersuite", uint8(bls.DefaultCiphersuite), "Key derivation ciphersuite tag")
	_ = cmd.MarkFlagRequired("seed")
	return cmd
}

func newPublicKeyCmd(e *env) *cobra.Command {
	var skHex string
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive the public key of a secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sk ffi.SecretKey
			if err := decodeFixed("secret key", skHex, sk[:]); err != nil {
				return err
			}

			var pk ffi.PublicKey
			if err := checkStatus("pubkey", e.boundary.PublicKey(&sk, &pk)); err != nil {
				return err
			}
			return e.write(cmd.OutOrStdout(), publicKeyOutput{
				PublicKey: encodeHex(pk[:]),
			})
		},
	}
	cmd.Flags().StringVar(&skHex, "secret-key", "", "Hex encoded secret key")
	_ = cmd.MarkFlagRequired("secret-key")
	return cmd
}

func newCiphersuitesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "ciphersuites",
		Short: "List the key derivation ciphersuites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			suites := bls.Ciphersuites()
			out := make([]ciphersuiteOutput, len(suites))
			for i, cs := range suites {
				out[i] = ciphersuiteOutput{
					Tag:     fmt.Sprintf("0x%02x", byte(cs)),
					Name:    cs.String(),
					Default: cs == bls.DefaultCiphersuite,
				}
			}
			return e.write(cmd.OutOrStdout(), out)
		},
	}
}

func newProveCmd(e *env) *cobra.Command {
	var skHex string
	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Prove possession of a secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sk ffi.SecretKey
			if err := decodeFixed("secret key", skHex, sk[:]); err != nil {
				return err
			}

			var proof ffi.Signature
			if err := checkStatus("prove", e.boundary.SignPossession(&sk, &proof)); err != nil {
				return err
			}
			return e.write(cmd.OutOrStdout(), proofOutput{
				Proof: encodeHex(proof[:]),
			})
		},
	}
	cmd.Flags().StringVar(&skHex, "secret-key", "", "Hex encoded secret key")
	_ = cmd.MarkFlagRequired("secret-key")
	return cmd
}

func newVerifyPossessionCmd(e *env) *cobra.Command {
	var pkHex, proofHex string
	cmd := &cobra.Command{
		Use:   "verify-possession",
		Short: "Verify a proof of possession",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				pk    ffi.PublicKey
				proof ffi.Signature
			)
			if err := decodeFixed("public key", pkHex, pk[:]); err != nil {
				return err
			}
			if err := decodeFixed("proof", proofHex, proof[:]); err != nil {
				return err
			}

			var valid bool
			if err := checkStatus("verify-possession", e.boundary.VerifyPossession(&pk, &proof, &valid)); err != nil {
				return err
			}
			return e.write(cmd.OutOrStdout(), verificationOutput{Valid: valid})
		},
	}
	cmd.Flags().StringVar(&pkHex, "public-key", "", "Hex encoded public key")
	cmd.Flags().StringVar(&proofHex, "proof", "", "Hex encoded proof of possession")
	_ = cmd.MarkFlagRequired("public-key")
	_ = cmd.MarkFlagRequired("proof")
	return cmd
}
