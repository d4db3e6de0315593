// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ffi

import (
	"errors"
	"fmt"
	"slices"
	"unsafe"
)

var (
	ErrNullPointer      = errors.New("null pointer")
	ErrLengthOutOfRange = errors.New("length out of range")
)

// BorrowBytes copies the [n] bytes at [ptr] into Go memory.
//
// A nil [ptr] is accepted only together with n == 0, which yields an empty
// slice. [n] must not exceed [limit].
func BorrowBytes(ptr *byte, n uintptr, limit int) ([]byte, error) {
	return BorrowArray(ptr, n, limit)
}

// BorrowArray copies the [n] elements at [ptr] into Go memory under the same
// rules as BorrowBytes.
func BorrowArray[T any](ptr *T, n uintptr, limit int) ([]T, error) {
	if n == 0 {
		return []T{}, nil
	}
	if ptr == nil {
		return nil, fmt.Errorf("%w: %d elements", ErrNullPointer, n)
	}
	if limit < 0 || n > uintptr(limit) {
		return nil, fmt.Errorf("%w: %d > %d", ErrLengthOutOfRange, n, limit)
	}
	return slices.Clone(unsafe.Slice(ptr, n)), nil
}

// Borrow copies the value at [ptr].
func Borrow[T any](ptr *T) (T, error) {
	if ptr == nil {
		var zero T
		return zero, ErrNullPointer
	}
	return *ptr, nil
}

func checkOut[T any](ptr *T) error {
	if ptr == nil {
		return fmt.Errorf("%w: output", ErrNullPointer)
	}
	return nil
}
