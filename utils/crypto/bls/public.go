// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"errors"

	blst "github.com/supranational/blst/bindings/go"
)

const PublicKeyLen = blst.BLST_P1_COMPRESS_BYTES

var (
	ErrNoPublicKeys               = errors.New("no public keys")
	ErrFailedPublicKeyDecompress  = errors.New("couldn't decompress public key")
	ErrInvalidPublicKey           = errors.New("invalid public key")
	errFailedPublicKeyAggregation = errors.New("couldn't aggregate public keys")
)

type (
	PublicKey          = blst.P1Affine
	AggregatePublicKey = blst.P1Aggregate
)

// PublicKeyToBytes returns the compressed big-endian format of the public key.
func PublicKeyToBytes(pk *PublicKey) []byte {
	return pk.Compress()
}

// PublicKeyToArray returns the compressed big-endian format of the public key
// as a fixed-size array.
func PublicKeyToArray(pk *PublicKey) [PublicKeyLen]byte {
	return [PublicKeyLen]byte(pk.Compress())
}

// PublicKeyFromBytes parses the compressed big-endian format of the public key
// into a public key.
//
// The point must be on the curve, in the G1 subgroup and not the identity.
func PublicKeyFromBytes(pkBytes []byte) (*PublicKey, error) {
	pk := new(PublicKey).Uncompress(pkBytes)
	if pk == nil {
		return nil, ErrFailedPublicKeyDecompress
	}
	if !pk.KeyValidate() {
		return nil, ErrInvalidPublicKey
	}
	return pk, nil
}

// AggregatePublicKeys aggregates a non-zero number of public keys into a single
// aggregated public key.
// Invariant: all [pks] have been validated.
func AggregatePublicKeys(pks []*PublicKey) (*PublicKey, error) {
	if len(pks) == 0 {
		return nil, ErrNoPublicKeys
	}

	var agg AggregatePublicKey
	if !agg.Aggregate(pks, false) {
		return nil, errFailedPublicKeyAggregation
	}
	return agg.ToAffine(), nil
}

// Verify the [sig] of [msg] against the [pk].
// The [sig] and [pk] may have been an aggregation of other signatures and keys.
// Invariant: [pk] and [sig] have both been validated.
func Verify(pk *PublicKey, sig *Signature, msg []byte) bool {
	return sig.Verify(false, pk, false, msg, ciphersuiteSignature)
}

// VerifyAggregated verifies [sig] as the aggregate of signatures over the
// same [msg] by every key in [pks].
// Invariant: all [pks] and [sig] have been validated.
func VerifyAggregated(pks []*PublicKey, sig *Signature, msg []byte) bool {
	aggPK, err := AggregatePublicKeys(pks)
	if err != nil {
		return false
	}
	return Verify(aggPK, sig, msg)
}

// Verify the possession of the secret pre-image of [sk] by verifying a [sig] of
// [msg] against the [pk].
// The [sig] and [pk] may have been an aggregation of other signatures and keys.
// Invariant: [pk] and [sig] have both been validated.
func VerifyProofOfPossession(pk *PublicKey, sig *Signature, msg []byte) bool {
	return sig.Verify(false, pk, false, msg, ciphersuiteProofOfPossession)
}
