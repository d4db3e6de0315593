// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unsafe"

	"gopkg.in/yaml.v3"

	"github.com/33cn/blsffi/utils/crypto/bls/ffi"
)

var errWrongLength = errors.New("wrong length")

type keyPairOutput struct {
	PublicKey string `json:"publicKey" yaml:"publicKey"`
	SecretKey string `json:"secretKey" yaml:"secretKey"`
}

type publicKeyOutput struct {
	PublicKey string `json:"publicKey" yaml:"publicKey"`
}

type signatureOutput struct {
	Signature string  `json:"signature" yaml:"signature"`
	Epoch     *uint64 `json:"epoch,omitempty" yaml:"epoch,omitempty"`
}

type proofOutput struct {
	Proof string `json:"proof" yaml:"proof"`
}

type verificationOutput struct {
	Valid bool `json:"valid" yaml:"valid"`
}

type ciphersuiteOutput struct {
	Tag     string `json:"tag" yaml:"tag"`
	Name    string `json:"name" yaml:"name"`
	Default bool   `json:"default" yaml:"default"`
}

// statusError reports a call the boundary refused.
type statusError struct {
	op     string
	status ffi.Status
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s failed with status %d (%s): %s", e.op, e.status, e.status, e.status.Text())
}

func checkStatus(op string, status ffi.Status) error {
	if status == ffi.StatusOK {
		return nil
	}
	return &statusError{
		op:     op,
		status: status,
	}
}

func (e *env) write(w io.Writer, value interface{}) error {
	switch e.output {
	case outputJSON:
		b, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	}
}

func encodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func decodeHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("couldn't decode %s: %w", name, err)
	}
	return b, nil
}

func decodeFixed(name, s string, out []byte) error {
	b, err := decodeHex(name, s)
	if err != nil {
		return err
	}
	if len(b) != len(out) {
		return fmt.Errorf("%w: %s must be %d bytes, got %d", errWrongLength, name, len(out), len(b))
	}
	copy(out, b)
	return nil
}

func bytesPtr(b []byte) *byte {
	return unsafe.SliceData(b)
}
