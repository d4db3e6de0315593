// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ffi

import (
	"errors"

	"github.com/33cn/blsffi/utils/crypto/bls"
)

// Status is the result code returned by every exported call.
type Status int32

const (
	StatusOK Status = iota
	StatusNullPointer
	StatusLengthOutOfRange
	StatusSeedTooShort
	StatusUnknownCiphersuite
	StatusInvalidSecretKey
	StatusInvalidPublicKey
	StatusInvalidSignature
	StatusAggregation
	StatusInternal
)

var statuses = map[Status]struct {
	name string
	text string
}{
	StatusOK:                 {"ok", "success"},
	StatusNullPointer:        {"null_pointer", "null pointer with non-zero length"},
	StatusLengthOutOfRange:   {"length_out_of_range", "length or count exceeds the configured bound"},
	StatusSeedTooShort:       {"seed_too_short", "seed must be at least 32 bytes"},
	StatusUnknownCiphersuite: {"unknown_ciphersuite", "unknown ciphersuite tag"},
	StatusInvalidSecretKey:   {"invalid_secret_key", "secret key is not a scalar in (0, r)"},
	StatusInvalidPublicKey:   {"invalid_public_key", "public key is not a valid compressed G1 point"},
	StatusInvalidSignature:   {"invalid_signature", "signature is not a valid compressed G2 point"},
	StatusAggregation:        {"aggregation", "signatures can't be aggregated"},
	StatusInternal:           {"internal", "internal error"},
}

func (s Status) String() string {
	if st, ok := statuses[s]; ok {
		return st.name
	}
	return "unknown"
}

// Text returns a human readable description of [s].
func (s Status) Text() string {
	if st, ok := statuses[s]; ok {
		return st.text
	}
	return "unknown status"
}

// IsBoundaryViolation returns true if [s] reports malformed input or a
// failure of the library itself, rather than a protocol result the caller
// is expected to handle.
func (s Status) IsBoundaryViolation() bool {
	return s != StatusOK && s != StatusAggregation
}

// statusOf maps an error returned while serving a call onto its status.
func statusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNullPointer):
		return StatusNullPointer
	case errors.Is(err, ErrLengthOutOfRange):
		return StatusLengthOutOfRange
	case errors.Is(err, bls.ErrSeedTooShort):
		return StatusSeedTooShort
	case errors.Is(err, bls.ErrUnknownCiphersuite):
		return StatusUnknownCiphersuite
	case errors.Is(err, bls.ErrFailedSecretKeyDeserialize):
		return StatusInvalidSecretKey
	case errors.Is(err, bls.ErrFailedPublicKeyDecompress),
		errors.Is(err, bls.ErrInvalidPublicKey):
		return StatusInvalidPublicKey
	case errors.Is(err, bls.ErrFailedSignatureDecompress),
		errors.Is(err, bls.ErrInvalidSignature):
		return StatusInvalidSignature
	case bls.IsAggregationError(err):
		return StatusAggregation
	default:
		return StatusInternal
	}
}
