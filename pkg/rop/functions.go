package rop

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/ib-77/results/pkg/rop/errs"
)

// Map applies f to the value of a successful r. A failure is passed on
// without calling f; a panic in f becomes an exception failure.
func Map[T, B any](r Result[T], f func(T) B) Result[B] {
	if !r.ok {
		return Fail[B](r.Err())
	}

	var out B
	if err := Protect(func() { out = f(r.value) }); !err.IsZero() {
		return Fail[B](err)
	}
	return Success(out)
}

// MapErr is Map for functions that can fail with an error.
func MapErr[T, B any](r Result[T], f func(T) (B, error)) Result[B] {
	if !r.ok {
		return Fail[B](r.Err())
	}

	var out B
	if err := ProtectErr(func() (e error) { out, e = f(r.value); return }); !err.IsZero() {
		return Fail[B](err)
	}
	return Success(out)
}

// Switch moves a successful r onto the track chosen by f.
func Switch[T, B any](r Result[T], f func(T) Result[B]) Result[B] {
	if !r.ok {
		return Fail[B](r.Err())
	}

	var out Result[B]
	if err := Protect(func() { out = f(r.value) }); !err.IsZero() {
		return Fail[B](err)
	}
	return out
}

// Replace swaps the value of a successful r for item.
func Replace[T, B any](r Result[T], item B) Result[B] {
	if !r.ok {
		return Fail[B](r.Err())
	}
	return Success(item)
}

// MapEnumerable applies f to a successful r and snapshots the returned
// sequence.
func MapEnumerable[T, A any](r Result[T], f func(T) []A) EnumerableResult[A] {
	if !r.ok {
		return EnumerableFail[A](r.Err())
	}

	var out []A
	if err := Protect(func() { out = f(r.value) }); !err.IsZero() {
		return EnumerableFail[A](err)
	}
	return Enumerable(out)
}

// Match always yields a B: onSuccess for a successful r, onError otherwise.
// A panic in onSuccess is handed to onError as an exception error.
func Match[T, B any](r Result[T], onSuccess func(T) B, onError func(errs.Error) B) B {
	if !r.ok {
		return onError(r.Err())
	}

	var out B
	if err := Protect(func() { out = onSuccess(r.value) }); !err.IsZero() {
		return onError(err)
	}
	return out
}

func MatchValue[T, B any](r Result[T], onSuccess func(T) B, errorValue B) B {
	return Match(r, onSuccess, func(errs.Error) B { return errorValue })
}

func MatchConst[T, B any](r Result[T], successValue B, errorValue B) B {
	return Match(r, func(T) B { return successValue }, func(errs.Error) B { return errorValue })
}

// AsEnumerable views the value of r as a sequence of A: a []A or iter.Seq[A]
// is snapshotted, a single A becomes a one-item sequence, anything else is a
// NotEnumerable failure.
func AsEnumerable[A, T any](r Result[T]) EnumerableResult[A] {
	if !r.ok {
		return EnumerableFail[A](r.Err())
	}

	switch v := any(r.value).(type) {
	case []A:
		return Enumerable(v)
	case iter.Seq[A]:
		return EnumerableFromSeq(v)
	case A:
		return EnumerableOf(v)
	}
	return EnumerableFail[A](errs.NotEnumerable())
}

// Cast recovers a Result[T] from an Outcome. A failed outcome keeps its
// error; an outcome of another value type fails with castFailed, or a Cast
// error when castFailed is omitted.
func Cast[T any](o Outcome, castFailed ...errs.Error) Result[T] {
	if o != nil && o.IsFailed() {
		return Fail[T](o.Err())
	}

	switch v := o.(type) {
	case Result[T]:
		return v
	case ValueProvider[T]:
		return Success(v.Value())
	}
	return Fail[T](castError[Result[T]](castFailed))
}

// CastEnumerable is Cast for EnumerableResult.
func CastEnumerable[A any](o Outcome, castFailed ...errs.Error) EnumerableResult[A] {
	if o != nil && o.IsFailed() {
		return EnumerableFail[A](o.Err())
	}

	if v, ok := o.(EnumerableResult[A]); ok {
		return v
	}
	return EnumerableFail[A](castError[EnumerableResult[A]](castFailed))
}

func castError[Target any](castFailed []errs.Error) errs.Error {
	if len(castFailed) > 0 && !castFailed[0].IsZero() {
		return castFailed[0]
	}
	return errs.Cast(fmt.Sprintf("Cast error to %s", reflect.TypeFor[Target]()))
}
