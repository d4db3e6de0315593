// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"errors"

	blst "github.com/supranational/blst/bindings/go"
)

const SignatureLen = blst.BLST_P2_COMPRESS_BYTES

var (
	ErrFailedSignatureDecompress  = errors.New("couldn't decompress signature")
	ErrInvalidSignature           = errors.New("invalid signature")
	errFailedSignatureAggregation = errors.New("couldn't aggregate signatures")
)

type (
	Signature          = blst.P2Affine
	AggregateSignature = blst.P2Aggregate
)

// SignatureToBytes returns the compressed big-endian format of the signature.
func SignatureToBytes(sig *Signature) []byte {
	return sig.Compress()
}

// SignatureToArray returns the compressed big-endian format of the signature
// as a fixed-size array.
func SignatureToArray(sig *Signature) [SignatureLen]byte {
	return [SignatureLen]byte(sig.Compress())
}

// SignatureFromBytes parses the compressed big-endian format of the signature
// into a signature.
//
// The point must be on the curve and in the G2 subgroup. The identity is
// accepted because an aggregate of valid signatures may sum to it.
func SignatureFromBytes(sigBytes []byte) (*Signature, error) {
	sig := new(Signature).Uncompress(sigBytes)
	if sig == nil {
		return nil, ErrFailedSignatureDecompress
	}
	if !sig.SigValidate(false) {
		return nil, ErrInvalidSignature
	}
	return sig, nil
}

// AggregateSignatures aggregates a non-zero number of signatures into a single
// aggregated signature.
//
// No signature is verified. Callers verify the result with VerifyAggregated,
// or have verified every input already.
// Invariant: all [sigs] have been validated.
func AggregateSignatures(sigs []*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, &AggregationError{Err: ErrNoSignatures}
	}

	var agg AggregateSignature
	if !agg.Aggregate(sigs, false) {
		return nil, errFailedSignatureAggregation
	}
	return agg.ToAffine(), nil
}
