// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command libbls is built with -buildmode=c-shared and exports the BLS
// boundary as a C ABI.
package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>

typedef struct { uint8_t data[32]; } bls_sk;
typedef struct { uint8_t data[48]; } bls_pk;
typedef struct { uint8_t data[96]; } bls_sig;
typedef struct { bls_pk pk; bls_sk sk; } bls_keys;
*/
import "C"

import (
	"unsafe"

	"github.com/33cn/blsffi/utils/crypto/bls/ffi"
)

//export bls_keygen
func bls_keygen(seed *C.uint8_t, seedLen C.size_t, ciphersuite C.uint8_t, out *C.bls_keys) C.int {
	return C.int(boundary.KeyGen(
		(*byte)(unsafe.Pointer(seed)),
		uintptr(seedLen),
		byte(ciphersuite),
		(*ffi.KeyPair)(unsafe.Pointer(out)),
	))
}

//export bls_public_key
func bls_public_key(sk *C.bls_sk, out *C.bls_pk) C.int {
	return C.int(boundary.PublicKey(
		(*ffi.SecretKey)(unsafe.Pointer(sk)),
		(*ffi.PublicKey)(unsafe.Pointer(out)),
	))
}

//export bls_sign
func bls_sign(sk *C.bls_sk, msg *C.uint8_t, msgLen C.size_t, out *C.bls_sig) C.int {
	return C.int(boundary.Sign(
		(*ffi.SecretKey)(unsafe.Pointer(sk)),
		(*byte)(unsafe.Pointer(msg)),
		uintptr(msgLen),
		(*ffi.Signature)(unsafe.Pointer(out)),
	))
}

//export bls_verify
func bls_verify(pk *C.bls_pk, msg *C.uint8_t, msgLen C.size_t, sig *C.bls_sig, out *C.bool) C.int {
	return C.int(boundary.Verify(
		(*ffi.PublicKey)(unsafe.Pointer(pk)),
		(*byte)(unsafe.Pointer(msg)),
		uintptr(msgLen),
		(*ffi.Signature)(unsafe.Pointer(sig)),
		(*bool)(unsafe.Pointer(out)),
	))
}

//export bls_aggregate
func bls_aggregate(sigs *C.bls_sig, sigNum C.size_t, out *C.bls_sig) C.int {
	return C.int(boundary.Aggregate(
		(*ffi.Signature)(unsafe.Pointer(sigs)),
		uintptr(sigNum),
		(*ffi.Signature)(unsafe.Pointer(out)),
	))
}

//export bls_aggregate_tagged
func bls_aggregate_tagged(sigs *C.bls_sig, epochs *C.uint64_t, sigNum C.size_t, out *C.bls_sig) C.int {
	return C.int(boundary.AggregateTagged(
		(*ffi.Signature)(unsafe.Pointer(sigs)),
		(*uint64)(unsafe.Pointer(epochs)),
		uintptr(sigNum),
		(*ffi.Signature)(unsafe.Pointer(out)),
	))
}

//export bls_verify_aggregated
func bls_verify_aggregated(
	pks *C.bls_pk,
	pkNum C.size_t,
	msg *C.uint8_t,
	msgLen C.size_t,
	sig *C.bls_sig,
	out *C.bool,
) C.int {
	return C.int(boundary.VerifyAggregated(
		(*ffi.PublicKey)(unsafe.Pointer(pks)),
		uintptr(pkNum),
		(*byte)(unsafe.Pointer(msg)),
		uintptr(msgLen),
		(*ffi.Signature)(unsafe.Pointer(sig)),
		(*bool)(unsafe.Pointer(out)),
	))
}

//export bls_sign_possession
func bls_sign_possession(sk *C.bls_sk, out *C.bls_sig) C.int {
	return C.int(boundary.SignPossession(
		(*ffi.SecretKey)(unsafe.Pointer(sk)),
		(*ffi.Signature)(unsafe.Pointer(out)),
	))
}

//export bls_verify_possession
func bls_verify_possession(pk *C.bls_pk, sig *C.bls_sig, out *C.bool) C.int {
	return C.int(boundary.VerifyPossession(
		(*ffi.PublicKey)(unsafe.Pointer(pk)),
		(*ffi.Signature)(unsafe.Pointer(sig)),
		(*bool)(unsafe.Pointer(out)),
	))
}

// bls_status_text returns a static, NUL terminated description of [status].
// The caller must not free it.
//
//export bls_status_text
func bls_status_text(status C.int) *C.char {
	if text, ok := statusTexts[ffi.Status(status)]; ok {
		return text
	}
	return unknownStatusText
}

func main() {}
