// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"errors"
	"fmt"
)

var (
	ErrNoSignatures       = errors.New("no signatures")
	ErrInconsistentEpochs = errors.New("signatures are tagged with different epochs")

	_ error = (*AggregationError)(nil)
)

// AggregationError reports that a set of well-formed signatures can't be
// combined. It is a recoverable result, unlike a decoding failure.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	return "couldn't aggregate signatures: " + e.Err.Error()
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

// IsAggregationError returns true if [err] was caused by the aggregation
// policy rather than by malformed input.
func IsAggregationError(err error) bool {
	var aggErr *AggregationError
	return errors.As(err, &aggErr)
}

// TaggedSignature is a signature together with the epoch its signer
// attributed it to. The epoch is carried next to the signature and is not
// part of the signed message.
type TaggedSignature struct {
	Epoch     uint64
	Signature *Signature
}

// AggregateTaggedSignatures aggregates [tagged] if all of them carry the same
// epoch and returns that epoch.
// Invariant: all signatures have been validated.
func AggregateTaggedSignatures(tagged []TaggedSignature) (*Signature, uint64, error) {
	if len(tagged) == 0 {
		return nil, 0, &AggregationError{Err: ErrNoSignatures}
	}

	epoch := tagged[0].Epoch
	sigs := make([]*Signature, len(tagged))
	for i, t := range tagged {
		if t.Epoch != epoch {
			return nil, 0, &AggregationError{
				Err: fmt.Errorf("%w: signature %d has epoch %d, expected %d",
					ErrInconsistentEpochs,
					i,
					t.Epoch,
					epoch,
				),
			}
		}
		sigs[i] = t.Signature
	}

	sig, err := AggregateSignatures(sigs)
	if err != nil {
		return nil, 0, err
	}
	return sig, epoch, nil
}
