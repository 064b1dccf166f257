package rop

import "github.com/ib-77/results/pkg/rop/errs"

// Outcome is the state shared by every outcome type, whatever its payload.
type Outcome interface {
	// IsSuccessful returns true if the operation succeeded
	IsSuccessful() bool
	// IsFailed returns true if the operation failed, for any reason
	IsFailed() bool
	// IsNull returns true if the operation failed with a Null error
	IsNull() bool
	IsFailedAndNotNull() bool
	IsOkOrNull() bool
	// Err returns the failure; the zero errs.Error on success
	Err() errs.Error
}

// ValueProvider is an Outcome exposing its value.
type ValueProvider[T any] interface {
	Outcome
	// Value returns the successful value, or the zero T on failure
	Value() T
}
