// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ffi

import "github.com/33cn/blsffi/utils/crypto/bls"

// The value types match the layout of the C structs bls_sk, bls_pk, bls_sig
// and bls_keys, so pointers to them can be converted in both directions.
type (
	SecretKey [bls.SecretKeyLen]byte
	PublicKey [bls.PublicKeyLen]byte
	Signature [bls.SignatureLen]byte

	KeyPair struct {
		PublicKey PublicKey
		SecretKey SecretKey
	}
)

func (sk *SecretKey) decode() (*bls.SecretKey, error) {
	return bls.SecretKeyFromBytes(sk[:])
}

func (pk *PublicKey) decode() (*bls.PublicKey, error) {
	return bls.PublicKeyFromBytes(pk[:])
}

func (sig *Signature) decode() (*bls.Signature, error) {
	return bls.SignatureFromBytes(sig[:])
}

func decodePublicKeys(pks []PublicKey) ([]*bls.PublicKey, error) {
	decoded := make([]*bls.PublicKey, len(pks))
	for i := range pks {
		pk, err := pks[i].decode()
		if err != nil {
			return nil, err
		}
		decoded[i] = pk
	}
	return decoded, nil
}

func decodeSignatures(sigs []Signature) ([]*bls.Signature, error) {
	decoded := make([]*bls.Signature, len(sigs))
	for i := range sigs {
		sig, err := sigs[i].decode()
		if err != nil {
			return nil, err
		}
		decoded[i] = sig
	}
	return decoded, nil
}
