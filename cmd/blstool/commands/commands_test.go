// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/33cn/blsffi/utils/compression"
	"github.com/33cn/blsffi/utils/crypto/bls/blstest"
	"github.com/33cn/blsffi/utils/crypto/bls/ffi"
)

func run(t *testing.T, out interface{}, args ...string) error {
	cmd := NewRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--output=json", "--log-display-level=off"))
	if err := cmd.Execute(); err != nil {
		return err
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), out))
	return nil
}

func keyGen(t *testing.T, suffix byte) keyPairOutput {
	var kp keyPairOutput
	require.NoError(t, run(t, &kp, "keygen", "--seed", hex.EncodeToString(blstest.Seed(suffix))))
	return kp
}

func signText(t *testing.T, sk string, text string) string {
	var sig signatureOutput
	require.NoError(t, run(t, &sig, "sign", "--secret-key", sk, "--message-text", text))
	return sig.Signature
}

func TestThreeSignerScenario(t *testing.T) {
	require := require.New(t)

	var pks, sigs []string
	for _, suffix := range []byte{0x01, 0x02, 0x03} {
		kp := keyGen(t, suffix)
		pks = append(pks, kp.PublicKey)
		sigs = append(sigs, signText(t, kp.SecretKey, "hello"))
	}

	args := []string{"aggregate"}
	for _, sig := range sigs {
		args = append(args, "--signature", sig)
	}
	var agg signatureOutput
	require.NoError(run(t, &agg, args...))
	require.Nil(agg.Epoch)

	var result verificationOutput
	require.NoError(run(t, &result, "verify-aggregated",
		"--public-key", pks[0],
		"--public-key", pks[1],
		"--public-key", pks[2],
		"--signature", agg.Signature,
		"--message", hex.EncodeToString([]byte("hello")),
	))
	require.True(result.Valid)

	require.NoError(run(t, &result, "verify-aggregated",
		"--public-key", pks[0],
		"--public-key", pks[1],
		"--signature", agg.Signature,
		"--message-text", "hello",
	))
	require.False(result.Valid)
}

func TestSignVerify(t *testing.T) {
	require := require.New(t)

	kp := keyGen(t, 0x01)
	sig := signText(t, kp.SecretKey, "hello")

	var pk publicKeyOutput
	require.NoError(run(t, &pk, "pubkey", "--secret-key", kp.SecretKey))
	require.Equal(kp.PublicKey, pk.PublicKey)

	var result verificationOutput
	require.NoError(run(t, &result, "verify", "--public-key", kp.PublicKey, "--signature", sig, "--message-text", "hello"))
	require.True(result.Valid)

	require.NoError(run(t, &result, "verify", "--public-key", kp.PublicKey, "--signature", sig, "--message-text", "bye"))
	require.False(result.Valid)
}

func TestPossession(t *testing.T) {
	require := require.New(t)

	kp := keyGen(t, 0x01)

	var proof proofOutput
	require.NoError(run(t, &proof, "prove", "--secret-key", kp.SecretKey))

	var result verificationOutput
	require.NoError(run(t, &result, "verify-possession", "--public-key", kp.PublicKey, "--proof", proof.Proof))
	require.True(result.Valid)
}

func TestAggregateEpochs(t *testing.T) {
	require := require.New(t)

	sig1 := signText(t, keyGen(t, 0x01).SecretKey, "hello")
	sig2 := signText(t, keyGen(t, 0x02).SecretKey, "hello")

	var agg signatureOutput
	require.NoError(run(t, &agg, "aggregate", "--signature", sig1, "--signature", sig2, "--epoch", "4", "--epoch", "4"))
	require.NotNil(agg.Epoch)
	require.Equal(uint64(4), *agg.Epoch)

	err := run(t, &agg, "aggregate", "--signature", sig1, "--signature", sig2, "--epoch", "4", "--epoch", "5")
	var statusErr *statusError
	require.ErrorAs(err, &statusErr)
	require.Equal(ffi.StatusAggregation, statusErr.status)

	err = run(t, &agg, "aggregate", "--signature", sig1, "--signature", sig2, "--epoch", "4")
	require.ErrorIs(err, errEpochCount)
}

func TestCiphersuites(t *testing.T) {
	require := require.New(t)

	var suites []ciphersuiteOutput
	require.NoError(run(t, &suites, "ciphersuites"))
	require.Len(suites, 2)
	require.Equal("0x01", suites[0].Tag)
	require.Equal("BLS_KEYGEN_IETF", suites[0].Name)
	require.True(suites[0].Default)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedErr    error
		expectedStatus ffi.Status
	}{
		{
			name:           "short seed",
			args:           []string{"keygen", "--seed", "00"},
			expectedStatus: ffi.StatusSeedTooShort,
		},
		{
			name:           "unknown ciphersuite",
			args:           []string{"keygen", "--seed", hex.EncodeToString(blstest.Seed(1)), "--ciphersuite", "9"},
			expectedStatus: ffi.StatusUnknownCiphersuite,
		},
		{
			name:        "secret key of wrong length",
			args:        []string{"sign", "--secret-key", "0x0102", "--message-text", "hello"},
			expectedErr: errWrongLength,
		},
		{
			name:           "zero secret key",
			args:           []string{"sign", "--secret-key", hex.EncodeToString(make([]byte, 32)), "--message-text", "hello"},
			expectedStatus: ffi.StatusInvalidSecretKey,
		},
		{
			name:           "no signatures",
			args:           []string{"aggregate"},
			expectedStatus: ffi.StatusAggregation,
		},
		{
			name:        "unknown output",
			args:        []string{"ciphersuites", "--output=toml"},
			expectedErr: errUnknownOutput,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			cmd := NewRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(append([]string{"--log-display-level=off"}, test.args...))
			err := cmd.Execute()
			if test.expectedErr != nil {
				require.ErrorIs(err, test.expectedErr)
				return
			}
			var statusErr *statusError
			require.ErrorAs(err, &statusErr)
			require.Equal(test.expectedStatus, statusErr.status)
		})
	}
}

func TestYAMLOutput(t *testing.T) {
	require := require.New(t)

	cmd := NewRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"keygen", "--seed", hex.EncodeToString(blstest.Seed(1)), "--log-display-level=off"})
	require.NoError(cmd.Execute())

	var kp keyPairOutput
	require.NoError(yaml.Unmarshal(stdout.Bytes(), &kp))
	require.Equal(keyGen(t, 0x01), kp)
}

func TestBatchFiles(t *testing.T) {
	require := require.New(t)

	var pks, sigs []string
	for _, suffix := range []byte{0x01, 0x02, 0x03} {
		kp := keyGen(t, suffix)
		pks = append(pks, kp.PublicKey)
		sigs = append(sigs, signText(t, kp.SecretKey, "hello"))
	}

	dir := t.TempDir()
	sigsFile := filepath.Join(dir, "signatures.txt")
	require.NoError(os.WriteFile(sigsFile, []byte("# signers 2 and 3\n"+sigs[1]+"\n\n"+sigs[2]+"\n"), 0o600))

	compressor, err := compression.NewZstdCompressor(1024 * 1024)
	require.NoError(err)
	compressed, err := compressor.Compress([]byte(strings.Join(pks[1:], "\n")))
	require.NoError(err)
	pksFile := filepath.Join(dir, "public-keys"+compression.FileExtension)
	require.NoError(os.WriteFile(pksFile, compressed, 0o600))

	var agg signatureOutput
	require.NoError(run(t, &agg, "aggregate", "--signature", sigs[0], "--signatures-file", sigsFile))

	var result verificationOutput
	require.NoError(run(t, &result, "verify-aggregated",
		"--public-key", pks[0],
		"--public-keys-file", pksFile,
		"--signature", agg.Signature,
		"--message-text", "hello",
	))
	require.True(result.Valid)

	require.NoError(run(t, &result, "verify-aggregated",
		"--public-keys-file", pksFile,
		"--signature", agg.Signature,
		"--message-text", "hello",
	))
	require.False(result.Valid)
}

func TestBatchFilesLeaveFlagsUnchanged(t *testing.T) {
	req := require.New(t)

	var pks, sigs []string
	for _, suffix := range []byte{0x01, 0x02} {
		kp := keyGen(t, suffix)
		pks = append(pks, kp.PublicKey)
		sigs = append(sigs, signText(t, kp.SecretKey, "hello"))
	}

	dir := t.TempDir()
	sigsFile := filepath.Join(dir, "signatures.txt")
	req.NoError(os.WriteFile(sigsFile, []byte(sigs[1]+"\n"), 0o600))
	pksFile := filepath.Join(dir, "public-keys.txt")
	req.NoError(os.WriteFile(pksFile, []byte(pks[1]+"\n"), 0o600))

	tests := []struct {
		name string
		args []string
		flag string
		want []string
	}{
		{
			name: "aggregate",
			args: []string{"aggregate", "--signature", sigs[0], "--signatures-file", sigsFile},
			flag: "signature",
			want: sigs[:1],
		},
		{
			name: "verify-aggregated",
			args: []string{"verify-aggregated", "--public-key", pks[0], "--public-keys-file", pksFile, "--signature", sigs[0], "--message-text", "hello"},
			flag: "public-key",
			want: pks[:1],
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			root := NewRootCmd()
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			root.SetArgs(append(test.args, "--output=json", "--log-display-level=off"))
			require.NoError(root.Execute())

			cmd, _, err := root.Find([]string{test.name})
			require.NoError(err)
			got, err := cmd.Flags().GetStringSlice(test.flag)
			require.NoError(err)
			require.Equal(test.want, got)
		})
	}
}
