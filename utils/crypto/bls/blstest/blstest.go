// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package blstest

import (
	"github.com/33cn/blsffi/utils/crypto/bls"
)

// Seed returns 32 zero bytes followed by [suffix].
func Seed(suffix byte) []byte {
	seed := make([]byte, bls.MinSeedLen+1)
	seed[bls.MinSeedLen] = suffix
	return seed
}

// KeyPairs derives one key pair per suffix with Seed and the default
// ciphersuite.
func KeyPairs(suffixes ...byte) ([]*bls.SecretKey, []*bls.PublicKey, error) {
	sks := make([]*bls.SecretKey, len(suffixes))
	pks := make([]*bls.PublicKey, len(suffixes))
	for i, suffix := range suffixes {
		sk, pk, err := bls.KeyGen(Seed(suffix), bls.DefaultCiphersuite)
		if err != nil {
			return nil, nil, err
		}
		sks[i] = sk
		pks[i] = pk
	}
	return sks, pks, nil
}

// SignAll signs [message] with every key in [sks].
func SignAll(sks []*bls.SecretKey, message []byte) []*bls.Signature {
	sigs := make([]*bls.Signature, len(sks))
	for i, sk := range sks {
		sigs[i] = bls.Sign(sk, message)
	}
	return sigs
}

func AggregateAndVerify(publicKeys []*bls.PublicKey, signatures []*bls.Signature, message []byte) (bool, error) {
	aggSig, err := bls.AggregateSignatures(signatures)
	if err != nil {
		return false, err
	}
	aggPK, err := bls.AggregatePublicKeys(publicKeys)
	if err != nil {
		return false, err
	}

	return bls.Verify(aggPK, aggSig, message), nil
}
