// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import "encoding/hex"

// Compressed encodings with the compression flag set and a sign bit of 0.
var (
	// x = 1: x^3 + 4 has no square root, so there is no such point.
	offCurvePublicKey = mustDecodeHex("800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001")
	// x = 4: on E(Fp) but outside the G1 subgroup.
	nonSubgroupPublicKey = mustDecodeHex("800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000004")
	// x = 1 + 0i: off E'(Fp2).
	offCurveSignature = mustDecodeHex("800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000" +
		"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001")
	// x = 2 + 0i: on E'(Fp2) but outside the G2 subgroup.
	nonSubgroupSignature = mustDecodeHex("800000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000" +
		"000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000002")
	// The group order r, one past the largest valid scalar.
	groupOrder = mustDecodeHex("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")

	infinitePublicKey = append([]byte{0xc0}, make([]byte, PublicKeyLen-1)...)
	infiniteSignature = append([]byte{0xc0}, make([]byte, SignatureLen-1)...)
)

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
