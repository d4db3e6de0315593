// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ffi

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/33cn/blsffi/utils/crypto/bls"
	"github.com/33cn/blsffi/utils/logging"
)

const (
	opKeyGen           = "keygen"
	opSign             = "sign"
	opVerify           = "verify"
	opAggregate        = "aggregate"
	opAggregateTagged  = "aggregate_tagged"
	opVerifyAggregated = "verify_aggregated"
	opPublicKey        = "public_key"
	opSignPossession   = "sign_possession"
	opVerifyPossession = "verify_possession"
)

// Limits bound the variable length buffers read across the boundary.
type Limits struct {
	// MaxMessageLen bounds messages and seeds, in bytes.
	MaxMessageLen int
	// MaxBatchSize bounds arrays of keys, signatures and epochs.
	MaxBatchSize int
}

// Boundary serves the exported calls. Every input is borrowed into Go memory
// and decoded before any curve operation runs, and outputs are written only
// when the call succeeds.
//
// A Boundary holds no mutable state besides its metrics and is safe for
// concurrent use.
type Boundary struct {
	limits  Limits
	log     logging.Logger
	metrics *metrics
}

func New(
	limits Limits,
	log logging.Logger,
	namespace string,
	registerer prometheus.Registerer,
) (*Boundary, error) {
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, fmt.Errorf("couldn't register boundary metrics: %w", err)
	}
	return &Boundary{
		limits:  limits,
		log:     log,
		metrics: m,
	}, nil
}

// NewWithFallback is New for callers that can't fail, such as package
// initialization of a shared library loaded into another process. If
// [registerer] refuses the boundary metrics, they are kept in a private
// registry instead.
func NewWithFallback(
	limits Limits,
	log logging.Logger,
	namespace string,
	registerer prometheus.Registerer,
) *Boundary {
	b, err := New(limits, log, namespace, registerer)
	if err == nil {
		return b
	}

	log.Warn("couldn't register boundary metrics, using a private registry",
		zap.String("namespace", namespace),
		zap.Error(err),
	)
	// The collectors are usable whether or not registration succeeds.
	m, _ := newMetrics(namespace, prometheus.NewRegistry())
	return &Boundary{
		limits:  limits,
		log:     log,
		metrics: m,
	}
}

// serve runs [f], converts its error or panic into a status, and records the
// outcome.
func (b *Boundary) serve(op string, f func() error) (status Status) {
	defer func() {
		if r := recover(); r != nil {
			status = StatusInternal
			b.log.Error("recovered from panic",
				zap.String("operation", op),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}
		b.metrics.observe(op, status)
	}()

	err := f()
	status = statusOf(err)
	switch {
	case status == StatusOK:
	case status == StatusInternal:
		b.log.Error("call failed",
			zap.String("operation", op),
			zap.Error(err),
		)
	default:
		b.log.Debug("call rejected",
			zap.String("operation", op),
			zap.Stringer("status", status),
			zap.Bool("boundaryViolation", status.IsBoundaryViolation()),
			zap.Error(err),
		)
	}
	return status
}

// KeyGen derives a key pair from the [seedLen] bytes at [seed] with the key
// derivation routine selected by [ciphersuite].
func (b *Boundary) KeyGen(seed *byte, seedLen uintptr, ciphersuite byte, out *KeyPair) Status {
	return b.serve(opKeyGen, func() error {
		ikm, err := BorrowBytes(seed, seedLen, b.limits.MaxMessageLen)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		if err := checkOut(out); err != nil {
			return err
		}

		sk, pk, err := bls.KeyGen(ikm, bls.Ciphersuite(ciphersuite))
		if err != nil {
			return err
		}
		*out = KeyPair{
			PublicKey: bls.PublicKeyToArray(pk),
			SecretKey: bls.SecretKeyToArray(sk),
		}
		return nil
	})
}

// PublicKey derives the public key of [sk].
func (b *Boundary) PublicKey(sk *SecretKey, out *PublicKey) Status {
	return b.serve(opPublicKey, func() error {
		skBytes, err := Borrow(sk)
		if err != nil {
			return fmt.Errorf("secret key: %w", err)
		}
		if err := checkOut(out); err != nil {
			return err
		}

		secretKey, err := skBytes.decode()
		if err != nil {
			return err
		}
		*out = bls.PublicKeyToArray(bls.PublicFromSecretKey(secretKey))
		return nil
	})
}

// Sign signs the [msgLen] bytes at [msg] with [sk].
func (b *Boundary) Sign(sk *SecretKey, msg *byte, msgLen uintptr, out *Signature) Status {
	return b.serve(opSign, func() error {
		skBytes, err := Borrow(sk)
		if err != nil {
			return fmt.Errorf("secret key: %w", err)
		}
		message, err := BorrowBytes(msg, msgLen, b.limits.MaxMessageLen)
		if err != nil {
			return fmt.Errorf("message: %w", err)
		}
		if err := checkOut(out); err != nil {
			return err
		}

		secretKey, err := skBytes.decode()
		if err != nil {
			return err
		}
		*out = bls.SignatureToArray(bls.Sign(secretKey, message))
		return nil
	})
}

// Verify reports in [out] whether [sig] is a signature of the [msgLen] bytes
// at [msg] by [pk].
func (b *Boundary) Verify(pk *PublicKey, msg *byte, msgLen uintptr, sig *Signature, out *bool) Status {
	return b.serve(opVerify, func() error {
		pkBytes, err := Borrow(pk)
		if err != nil {
			return fmt.Errorf("public key: %w", err)
		}
		message, err := BorrowBytes(msg, msgLen, b.limits.MaxMessageLen)
		if err != nil {
			return fmt.Errorf("message: %w", err)
		}
		sigBytes, err := Borrow(sig)
		if err != nil {
			return fmt.Errorf("signature: %w", err)
		}
		if err := checkOut(out); err != nil {
			return err
		}

		publicKey, err := pkBytes.decode()
		if err != nil {
			return err
		}
		signature, err := sigBytes.decode()
		if err != nil {
			return err
		}
		*out = bls.Verify(publicKey, signature, message)
		return nil
	})
}

// Aggregate sums the [n] signatures at [sigs] without verifying any of them.
func (b *Boundary) Aggregate(sigs *Signature, n uintptr, out *Signature) Status {
	return b.serve(opAggregate, func() error {
		sigArr, err := BorrowArray(sigs, n, b.limits.MaxBatchSize)
		if err != nil {
			return fmt.Errorf("signatures: %w", err)
		}
		if err := checkOut(out); err != nil {
			return err
		}

		signatures, err := decodeSignatures(sigArr)
		if err != nil {
			return err
		}
		aggSig, err := bls.AggregateSignatures(signatures)
		if err != nil {
			return err
		}
		*out = bls.SignatureToArray(aggSig)
		return nil
	})
}

// AggregateTagged sums the [n] signatures at [sigs] if the [n] epochs at
// [epochs] are all equal.
func (b *Boundary) AggregateTagged(sigs *Signature, epochs *uint64, n uintptr, out *Signature) Status {
	return b.serve(opAggregateTagged, func() error {
		sigArr, err := BorrowArray(sigs, n, b.limits.MaxBatchSize)
		if err != nil {
			return fmt.Errorf("signatures: %w", err)
		}
		epochArr, err := BorrowArray(epochs, n, b.limits.MaxBatchSize)
		if err != nil {
			return fmt.Errorf("epochs: %w", err)
		}
		if err := checkOut(out); err != nil {
			return err
		}

		signatures, err := decodeSignatures(sigArr)
		if err != nil {
			return err
		}
		tagged := make([]bls.TaggedSignature, len(signatures))
		for i, sig := range signatures {
			tagged[i] = bls.TaggedSignature{
				Epoch:     epochArr[i],
				Signature: sig,
			}
		}
		aggSig, _, err := bls.AggregateTaggedSignatures(tagged)
		if err != nil {
			return err
		}
		*out = bls.SignatureToArray(aggSig)
		return nil
	})
}

// VerifyAggregated reports in [out] whether [sig] is the aggregate of
// signatures of the [msgLen] bytes at [msg] by all [n] keys at [pks].
func (b *Boundary) VerifyAggregated(
	pks *PublicKey,
	n uintptr,
	msg *byte,
	msgLen uintptr,
	sig *Signature,
	out *bool,
) Status {
	return b.serve(opVerifyAggregated, func() error {
		pkArr, err := BorrowArray(pks, n, b.limits.MaxBatchSize)
		if err != nil {
			return fmt.Errorf("public keys: %w", err)
		}
		message, err := BorrowBytes(msg, msgLen, b.limits.MaxMessageLen)
		if err != nil {
			return fmt.Errorf("message: %w", err)
		}
		sigBytes, err := Borrow(sig)
		if err != nil {
			return fmt.Errorf("signature: %w", err)
		}
		if err := checkOut(out); err != nil {
			return err
		}

		publicKeys, err := decodePublicKeys(pkArr)
		if err != nil {
			return err
		}
		signature, err := sigBytes.decode()
		if err != nil {
			return err
		}
		*out = bls.VerifyAggregated(publicKeys, signature, message)
		return nil
	})
}

// SignPossession proves possession of [sk] by signing its own public key.
func (b *Boundary) SignPossession(sk *SecretKey, out *Signature) Status {
	return b.serve(opSignPossession, func() error {
		skBytes, err := Borrow(sk)
		if err != nil {
			return fmt.Errorf("secret key: %w", err)
		}
		if err := checkOut(out); err != nil {
			return err
		}

		secretKey, err := skBytes.decode()
		if err != nil {
			return err
		}
		pkBytes := bls.PublicKeyToBytes(bls.PublicFromSecretKey(secretKey))
		*out = bls.SignatureToArray(bls.SignProofOfPossession(secretKey, pkBytes))
		return nil
	})
}

// VerifyPossession reports in [out] whether [sig] proves possession of the
// secret key behind [pk].
func (b *Boundary) VerifyPossession(pk *PublicKey, sig *Signature, out *bool) Status {
	return b.serve(opVerifyPossession, func() error {
		pkBytes, err := Borrow(pk)
		if err != nil {
			return fmt.Errorf("public key: %w", err)
		}
		sigBytes, err := Borrow(sig)
		if err != nil {
			return fmt.Errorf("signature: %w", err)
		}
		if err := checkOut(out); err != nil {
			return err
		}

		publicKey, err := pkBytes.decode()
		if err != nil {
			return err
		}
		signature, err := sigBytes.decode()
		if err != nil {
			return err
		}
		*out = bls.VerifyProofOfPossession(publicKey, signature, pkBytes[:])
		return nil
	})
}
