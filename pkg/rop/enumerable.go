package rop

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/ib-77/results/pkg/rop/errs"
)

// EnumerableResult holds either an error or a snapshot of a sequence. The
// snapshot is copied at construction and never handed out, so reading it
// twice always gives the same items.
//
// The zero EnumerableResult is failed with an Unknown error.
type EnumerableResult[A any] struct {
	items []A
	err   errs.Error
	ok    bool
}

// Enumerable snapshots items. A nil slice gives an empty success.
func Enumerable[A any](items []A) EnumerableResult[A] {
	return EnumerableResult[A]{items: slices.Clone(items), ok: true}
}

func EnumerableOf[A any](first A, rest ...A) EnumerableResult[A] {
	items := make([]A, 0, len(rest)+1)
	items = append(items, first)
	items = append(items, rest...)
	return EnumerableResult[A]{items: items, ok: true}
}

// EnumerableFromSeq drains seq once. A panic while draining becomes an
// exception failure.
func EnumerableFromSeq[A any](seq iter.Seq[A]) EnumerableResult[A] {
	var items []A
	if err := Protect(func() { items = slices.Collect(seq) }); !err.IsZero() {
		return EnumerableFail[A](err)
	}
	return EnumerableResult[A]{items: items, ok: true}
}

// EnumerableNotEmpty is Enumerable, except that no items is an Empty failure.
func EnumerableNotEmpty[A any](items []A) EnumerableResult[A] {
	if len(items) == 0 {
		return EnumerableFail[A](errs.Empty())
	}
	return Enumerable(items)
}

func EnumerableFail[A any](err errs.Error) EnumerableResult[A] {
	if err.IsZero() {
		err = errs.Fail()
	}
	return EnumerableResult[A]{err: err}
}

func EnumerableFromResult[A any](r Result[[]A]) EnumerableResult[A] {
	if r.IsFailed() {
		return EnumerableFail[A](r.Err())
	}
	return Enumerable(r.Value())
}

// EmptyEnumerable is the successful EnumerableResult without items.
func EmptyEnumerable[A any]() EnumerableResult[A] {
	return EnumerableResult[A]{ok: true}
}

func (e EnumerableResult[A]) IsSuccessful() bool {
	return e.ok
}

func (e EnumerableResult[A]) IsOk() bool {
	return e.ok
}

func (e EnumerableResult[A]) IsFailed() bool {
	return !e.ok
}

func (e EnumerableResult[A]) IsNull() bool {
	return !e.ok && e.err.Kind() == errs.KindNull
}

func (e EnumerableResult[A]) IsFailedAndNotNull() bool {
	return !e.ok && !e.IsNull()
}

func (e EnumerableResult[A]) IsOkOrNull() bool {
	return e.ok || e.IsNull()
}

// IsEmpty reports that there are no items, which is also the case when e
// failed.
func (e EnumerableResult[A]) IsEmpty() bool {
	return len(e.items) == 0
}

func (e EnumerableResult[A]) IsFailedOrEmpty() bool {
	return !e.ok || len(e.items) == 0
}

func (e EnumerableResult[A]) Err() errs.Error {
	if e.ok {
		return errs.Error{}
	}
	if e.err.IsZero() {
		return errs.Unknown()
	}
	return e.err
}

func (e EnumerableResult[A]) Len() int {
	return len(e.items)
}

// At returns the i-th item; it panics when i is out of range like a slice
// index does.
func (e EnumerableResult[A]) At(i int) A {
	return e.items[i]
}

// All iterates the snapshot without copying it.
func (e EnumerableResult[A]) All() iter.Seq[A] {
	return slices.Values(e.items)
}

// Values returns a copy of the snapshot; nil when e failed.
func (e EnumerableResult[A]) Values() []A {
	if !e.ok {
		return nil
	}
	return e.snapshot()
}

func (e EnumerableResult[A]) snapshot() []A {
	out := make([]A, len(e.items))
	copy(out, e.items)
	return out
}

// MatchOrNil is an alias of Values.
func (e EnumerableResult[A]) MatchOrNil() []A {
	return e.Values()
}

func (e EnumerableResult[A]) Get() ([]A, error) {
	if !e.ok {
		return nil, newResultError(e)
	}
	return e.snapshot(), nil
}

// ValueOrThrow returns the items and panics with a *ResultError when e
// failed.
func (e EnumerableResult[A]) ValueOrThrow() []A {
	if !e.ok {
		panic(newResultError(e))
	}
	return e.snapshot()
}

func (e EnumerableResult[A]) IfFailed(onError func(errs.Error) []A) []A {
	if !e.ok {
		return onError(e.Err())
	}
	return e.snapshot()
}

// Deconstruct returns the items and nil, or an empty slice and the failure.
func (e EnumerableResult[A]) Deconstruct() ([]A, error) {
	if !e.ok {
		return []A{}, e.Err()
	}
	return e.snapshot(), nil
}

func (e EnumerableResult[A]) WithError(err errs.Error) EnumerableResult[A] {
	return EnumerableFail[A](err)
}

func (e EnumerableResult[A]) WithValues(items []A) EnumerableResult[A] {
	return Enumerable(items)
}

// Where keeps the items matching predicate.
func (e EnumerableResult[A]) Where(predicate func(A) bool) EnumerableResult[A] {
	return MapAll(e, func(items []A) []A {
		out := make([]A, 0, len(items))
		for _, item := range items {
			if predicate(item) {
				out = append(out, item)
			}
		}
		return out
	})
}

// First returns the first item, an Empty failure when there is none, or the
// failure of e.
func (e EnumerableResult[A]) First() Result[A] {
	if !e.ok {
		return Fail[A](e.Err())
	}
	if len(e.items) == 0 {
		return Fail[A](errs.Empty())
	}
	return Success(e.items[0])
}

// FirstWhere returns the first item matching predicate, or an Empty failure.
func (e EnumerableResult[A]) FirstWhere(predicate func(A) bool) Result[A] {
	if !e.ok {
		return Fail[A](e.Err())
	}
	if len(e.items) == 0 {
		return Fail[A](errs.Empty())
	}

	out := Fail[A](errs.Empty())
	err := Protect(func() {
		for _, item := range e.items {
			if predicate(item) {
				out = Success(item)
				return
			}
		}
	})
	if !err.IsZero() {
		return Fail[A](err)
	}
	return out
}

// FirstOrDefault returns the first item, or the zero A when e failed or is
// empty.
func (e EnumerableResult[A]) FirstOrDefault() A {
	var zero A
	if !e.ok || len(e.items) == 0 {
		return zero
	}
	return e.items[0]
}

func (e EnumerableResult[A]) FirstOrDefaultWhere(predicate func(A) bool) A {
	var found A
	if !e.ok {
		return found
	}
	// a panicking predicate leaves the zero value
	Protect(func() {
		for _, item := range e.items {
			if predicate(item) {
				found = item
				return
			}
		}
	})
	return found
}

// Execute runs action on a copy of the items of a successful e.
func (e EnumerableResult[A]) Execute(action func([]A)) EnumerableResult[A] {
	if !e.ok {
		return e
	}
	if err := Protect(func() { action(e.snapshot()) }); !err.IsZero() {
		return EnumerableFail[A](err)
	}
	return e
}

func (e EnumerableResult[A]) ForEach(action func(A)) EnumerableResult[A] {
	return e.Execute(func(items []A) {
		for _, item := range items {
			action(item)
		}
	})
}

func (e EnumerableResult[A]) ExecuteVoid(step func([]A) VoidResult) VoidResult {
	if !e.ok {
		return VoidFail(e.Err())
	}
	var out VoidResult
	if err := Protect(func() { out = step(e.snapshot()) }); !err.IsZero() {
		return VoidFail(err)
	}
	return out
}

func (e EnumerableResult[A]) ExecuteBool(check func([]A) bool) VoidResult {
	return e.ExecuteVoid(func(items []A) VoidResult { return FromBool(check(items)) })
}

// DoubleTee runs onSuccess or onError depending on e. onError may be nil.
func (e EnumerableResult[A]) DoubleTee(onSuccess func([]A), onError func(errs.Error)) VoidResult {
	var out VoidResult
	err := Protect(func() {
		if !e.ok {
			if onError != nil {
				onError(e.Err())
			}
			out = VoidFail(e.Err())
			return
		}
		onSuccess(e.snapshot())
		out = Ok()
	})
	if !err.IsZero() {
		return VoidFail(err)
	}
	return out
}

// Equal compares failures by error and successes item by item, in order.
func (e EnumerableResult[A]) Equal(other EnumerableResult[A]) bool {
	if e.ok != other.ok {
		return false
	}
	if !e.ok {
		return e.Err().Equal(other.Err())
	}
	return e.EqualSeq(other.items)
}

// EqualSeq reports whether e succeeded with exactly items, in order.
func (e EnumerableResult[A]) EqualSeq(items []A) bool {
	if !e.ok || len(e.items) != len(items) {
		return false
	}
	for i := range e.items {
		if !EqualValues(e.items[i], items[i]) {
			return false
		}
	}
	return true
}

func (e EnumerableResult[A]) ToVoid() VoidResult {
	if !e.ok {
		return VoidFail(e.Err())
	}
	return Ok()
}

func (e EnumerableResult[A]) String() string {
	if !e.ok {
		return e.Err().String()
	}
	return fmt.Sprintf("EnumerableResult[%s](%d)", reflect.TypeFor[A](), len(e.items))
}
