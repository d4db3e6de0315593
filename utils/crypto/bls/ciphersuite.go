// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	blst "github.com/supranational/blst/bindings/go"
)

// MinSeedLen is the minimum amount of input keying material accepted by
// KeyGen.
const MinSeedLen = 32

// Ciphersuite tags select the key derivation routine used by KeyGen. Every
// registered tag must derive a different key from the same seed, so blst's
// salted variants and the EIP-2333 master derivation are not registered:
// with the default salt they reduce to one of the routines below.
const (
	CiphersuiteIETF    Ciphersuite = 0x01
	CiphersuiteIETFV3  Ciphersuite = 0x02
	DefaultCiphersuite             = CiphersuiteIETF
	unknownCiphersuite             = "unknown"
)

var (
	ErrSeedTooShort       = fmt.Errorf("seed must be at least %d bytes", MinSeedLen)
	ErrUnknownCiphersuite = errors.New("unknown ciphersuite")
	errKeyDerivation      = errors.New("couldn't derive secret key")

	ciphersuites = map[Ciphersuite]ciphersuite{
		CiphersuiteIETF: {
			name: "BLS_KEYGEN_IETF",
			derive: func(seed []byte) *SecretKey {
				return blst.KeyGen(seed)
			},
		},
		CiphersuiteIETFV3: {
			name: "BLS_KEYGEN_IETF_V3",
			derive: func(seed []byte) *SecretKey {
				return blst.KeyGenV3(seed)
			},
		},
	}
)

// Ciphersuite is the one byte tag callers pass to KeyGen.
type Ciphersuite byte

type ciphersuite struct {
	name   string
	derive func(seed []byte) *SecretKey
}

func (c Ciphersuite) String() string {
	if suite, ok := ciphersuites[c]; ok {
		return suite.name
	}
	return unknownCiphersuite
}

// Valid returns true if [c] is a registered ciphersuite.
func (c Ciphersuite) Valid() bool {
	_, ok := ciphersuites[c]
	return ok
}

// Ciphersuites returns every registered ciphersuite in ascending tag order.
func Ciphersuites() []Ciphersuite {
	tags := maps.Keys(ciphersuites)
	slices.Sort(tags)
	return tags
}

// KeyGen deterministically derives a key pair from [seed] with the key
// derivation routine selected by [cs].
func KeyGen(seed []byte, cs Ciphersuite) (*SecretKey, *PublicKey, error) {
	suite, ok := ciphersuites[cs]
	if !ok {
		return nil, nil, fmt.Errorf("%w: 0x%02x", ErrUnknownCiphersuite, byte(cs))
	}
	if len(seed) < MinSeedLen {
		return nil, nil, fmt.Errorf("%w: got %d", ErrSeedTooShort, len(seed))
	}

	sk := suite.derive(seed)
	if sk == nil || !sk.Valid() {
		return nil, nil, fmt.Errorf("%w with %s", errKeyDerivation, suite.name)
	}
	return sk, PublicFromSecretKey(sk), nil
}
