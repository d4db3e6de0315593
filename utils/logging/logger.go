// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

// Logger defines the interface that is used to keep a record of all events
// that happen at the boundary
type Logger interface {
	// Log that a fatal error has occurred. The library should not continue to
	// serve calls after this.
	Fatal(msg string, fields ...zap.Field)
	// Log that an unexpected error has occurred. The call that hit it was
	// answered with an internal status.
	Error(msg string, fields ...zap.Field)
	// Log that a caller violated the boundary contract in a way that is
	// likely to repeat.
	Warn(msg string, fields ...zap.Field)
	// Log an event that may be useful for a user to see.
	Info(msg string, fields ...zap.Field)
	// Log a rejected call and why it was rejected.
	Debug(msg string, fields ...zap.Field)
	// Log extremely detailed events. Never secret material.
	Verbo(msg string, fields ...zap.Field)

	// With returns a logger that adds [fields] to every entry.
	With(fields ...zap.Field) Logger

	// SetLevel changes the minimum level of every core of this logger.
	SetLevel(level Level)

	// Stop flushes and closes the underlying writers.
	Stop()
}
