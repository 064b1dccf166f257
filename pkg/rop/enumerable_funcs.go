package rop

import "github.com/ib-77/results/pkg/rop/errs"

// MapAll hands the items of a successful e to f and snapshots what f
// returns.
func MapAll[A, B any](e EnumerableResult[A], f func([]A) []B) EnumerableResult[B] {
	if !e.ok {
		return EnumerableFail[B](e.Err())
	}

	var out []B
	if err := Protect(func() { out = f(e.snapshot()) }); !err.IsZero() {
		return EnumerableFail[B](err)
	}
	return Enumerable(out)
}

// MapEach maps every item with f.
func MapEach[A, B any](e EnumerableResult[A], f func(A) B) EnumerableResult[B] {
	return MapAll(e, func(items []A) []B {
		out := make([]B, 0, len(items))
		for _, item := range items {
			out = append(out, f(item))
		}
		return out
	})
}

// Select is MapEach.
func Select[A, B any](e EnumerableResult[A], f func(A) B) EnumerableResult[B] {
	return MapEach(e, f)
}

// ExecuteScalar reduces the items of a successful e to a single Result.
func ExecuteScalar[A, T any](e EnumerableResult[A], f func([]A) T) Result[T] {
	if !e.ok {
		return Fail[T](e.Err())
	}

	var out T
	if err := Protect(func() { out = f(e.snapshot()) }); !err.IsZero() {
		return Fail[T](err)
	}
	return Success(out)
}

// MatchEach maps every item with onSuccess. On failure, including a panic in
// onSuccess, onError decides the items; a nil onError gives no items.
func MatchEach[A, B any](e EnumerableResult[A], onSuccess func(A) B, onError func(errs.Error) []B) []B {
	if onError == nil {
		onError = func(errs.Error) []B { return []B{} }
	}
	return MapEach(e, onSuccess).IfFailed(onError)
}

// MatchAll reduces e to a B with onSuccess or onError.
func MatchAll[A, B any](e EnumerableResult[A], onSuccess func([]A) B, onError func(errs.Error) B) B {
	if !e.ok {
		return onError(e.Err())
	}
	return ExecuteScalar(e, onSuccess).IfFailedFunc(onError)
}
