package rop

import (
	"github.com/google/uuid"

	"github.com/ib-77/results/pkg/rop/errs"
)

// ResultError is raised when a failed outcome is forced into a value. It is
// the seam between outcomes and error-returning or panicking code.
type ResultError struct {
	// ID identifies this occurrence in logs
	ID uuid.UUID
	// Source is the failed outcome
	Source Outcome
	Err    errs.Error
}

func newResultError(source Outcome) *ResultError {
	err := source.Err()
	if err.IsZero() {
		err = errs.Unknown("Result is failed")
	}

	re := &ResultError{ID: uuid.New(), Source: source, Err: err}
	log.Debugw("failed outcome reached the boundary", "id", re.ID, "kind", err.Kind(), "error", err.Description())
	return re
}

func (e *ResultError) Error() string {
	return e.Err.Description()
}

func (e *ResultError) Unwrap() error {
	return e.Err
}
