package rop

import (
	"fmt"

	"github.com/ib-77/results/pkg/rop/errs"
)

// Result holds either a value or an error, never both. A nil value is not a
// success: Success(nil) is a failure with a Null error.
//
// The zero Result is failed with an Unknown error.
type Result[T any] struct {
	value T
	err   errs.Error
	ok    bool
}

// Success wraps value, or returns a Null failure when value is nil.
func Success[T any](value T) Result[T] {
	if IsNil(any(value)) {
		return Result[T]{err: errs.Null()}
	}
	return Result[T]{value: value, ok: true}
}

// Of is Success under its value-constructor name.
func Of[T any](value T) Result[T] {
	return Success(value)
}

// Fail returns a failed Result. A zero err is replaced by a Fail error.
func Fail[T any](err errs.Error) Result[T] {
	if err.IsZero() {
		err = errs.Fail()
	}
	return Result[T]{err: err}
}

// Null is the failed Result holding a Null error.
func Null[T any]() Result[T] {
	return Result[T]{err: errs.Null()}
}

// From builds a Result from a Go (value, error) pair. A non-nil err wins;
// see errs.From for how it is converted.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](ProtectErr(func() error { return err }))
	}
	return Success(value)
}

func (r Result[T]) IsSuccessful() bool {
	return r.ok
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsFailed() bool {
	return !r.ok
}

func (r Result[T]) IsNull() bool {
	return !r.ok && r.err.Kind() == errs.KindNull
}

func (r Result[T]) IsFailedAndNotNull() bool {
	return !r.ok && !r.IsNull()
}

func (r Result[T]) IsOkOrNull() bool {
	return r.ok || r.IsNull()
}

func (r Result[T]) IsCancel() bool {
	return !r.ok && r.err.Kind() == errs.KindCancel
}

// Value returns the value, or the zero T when r failed.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or the zero errs.Error when r succeeded.
func (r Result[T]) Err() errs.Error {
	if r.ok {
		return errs.Error{}
	}
	if r.err.IsZero() {
		return errs.Unknown()
	}
	return r.err
}

func (r Result[T]) TryGet() (T, bool) {
	return r.value, r.ok
}

// Get returns the value, or a *ResultError describing the failure.
func (r Result[T]) Get() (T, error) {
	if !r.ok {
		var zero T
		return zero, newResultError(r)
	}
	return r.value, nil
}

// ValueOrThrow returns the value and panics with a *ResultError when r
// failed.
func (r Result[T]) ValueOrThrow() T {
	if !r.ok {
		panic(newResultError(r))
	}
	return r.value
}

// Deconstruct returns the value (zero on failure) and the failure as an
// error (nil on success). From rebuilds an equal Result from the pair.
func (r Result[T]) Deconstruct() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

func (r Result[T]) ValueOrDefault(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

func (r Result[T]) IfFailed(fallback T) T {
	return r.ValueOrDefault(fallback)
}

func (r Result[T]) IfFailedFunc(onError func(errs.Error) T) T {
	if !r.ok {
		return onError(r.Err())
	}
	return r.value
}

// MapFailed replaces a failure with a success holding fallback.
func (r Result[T]) MapFailed(fallback T) Result[T] {
	if !r.ok {
		return Success(fallback)
	}
	return r
}

func (r Result[T]) WithError(err errs.Error) Result[T] {
	return Fail[T](err)
}

func (r Result[T]) WithValue(value T) Result[T] {
	return Success(value)
}

// Execute runs action on the value of a successful r and returns r. A panic
// in action turns into an exception failure.
func (r Result[T]) Execute(action func(T)) Result[T] {
	if !r.ok {
		return r
	}
	if err := Protect(func() { action(r.value) }); !err.IsZero() {
		return Fail[T](err)
	}
	return r
}

// ExecuteBool runs check on a successful r; false becomes a Fail error.
func (r Result[T]) ExecuteBool(check func(T) bool) VoidResult {
	if !r.ok {
		return VoidFail(r.Err())
	}
	var passed bool
	if err := Protect(func() { passed = check(r.value) }); !err.IsZero() {
		return VoidFail(err)
	}
	return FromBool(passed)
}

func (r Result[T]) ExecuteVoid(step func(T) VoidResult) VoidResult {
	if !r.ok {
		return VoidFail(r.Err())
	}
	var out VoidResult
	if err := Protect(func() { out = step(r.value) }); !err.IsZero() {
		return VoidFail(err)
	}
	return out
}

// DoubleTee runs onSuccess or onError depending on r and reports the
// outcome as a VoidResult. onError may be nil.
func (r Result[T]) DoubleTee(onSuccess func(T), onError func(errs.Error)) VoidResult {
	var out VoidResult
	err := Protect(func() {
		if !r.ok {
			if onError != nil {
				onError(r.Err())
			}
			out = VoidFail(r.Err())
			return
		}
		onSuccess(r.value)
		out = Ok()
	})
	if !err.IsZero() {
		return VoidFail(err)
	}
	return out
}

// Equal reports whether both results succeeded with equal values, or both
// failed with equal errors.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.ok != other.ok {
		return false
	}
	if !r.ok {
		return r.Err().Equal(other.Err())
	}
	return EqualValues(r.value, other.value)
}

// EqualValue reports whether r succeeded with a value equal to value.
func (r Result[T]) EqualValue(value T) bool {
	return r.ok && EqualValues(r.value, value)
}

// ToVoid keeps the success or failure of r and drops its value.
func (r Result[T]) ToVoid() VoidResult {
	if !r.ok {
		return VoidFail(r.Err())
	}
	return Ok()
}

func (r Result[T]) String() string {
	if !r.ok {
		return r.Err().String()
	}
	return fmt.Sprint(r.value)
}
