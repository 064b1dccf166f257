package maybe

import (
	"errors"
	"fmt"

	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/errs"
)

var (
	// ErrNilValue is the panic value of Some(nil).
	ErrNilValue = errors.New("maybe: Some called with a nil value")
	// ErrNoValue is the panic value of ValueOrThrow on None.
	ErrNoValue = errors.New("maybe: no value")
)

type Maybe[T any] struct {
	value    T
	hasValue bool
}

// Some wraps value. It panics with ErrNilValue when value is nil.
func Some[T any](value T) Maybe[T] {
	if rop.IsNil(value) {
		panic(ErrNilValue)
	}
	return Maybe[T]{value: value, hasValue: true}
}

// None is the Maybe without a value.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of wraps value, or returns None when value is nil.
func Of[T any](value T) Maybe[T] {
	if rop.IsNil(value) {
		return None[T]()
	}
	return Maybe[T]{value: value, hasValue: true}
}

// FromPtr returns None for a nil p and the pointed-to value otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

func (m Maybe[T]) HasValue() bool {
	return m.hasValue
}

func (m Maybe[T]) HasNoValue() bool {
	return !m.hasValue
}

// Get returns the value and whether there is one.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.hasValue
}

// ValueOrZero returns the value, or the zero T for None.
func (m Maybe[T]) ValueOrZero() T {
	return m.value
}

func (m Maybe[T]) ValueOrDefault(fallback T) T {
	if !m.hasValue {
		return fallback
	}
	return m.value
}

// ValueOrThrow returns the value and panics with ErrNoValue for None.
func (m Maybe[T]) ValueOrThrow() T {
	if !m.hasValue {
		panic(ErrNoValue)
	}
	return m.value
}

// Where keeps the value when condition holds for it.
func (m Maybe[T]) Where(condition func(T) bool) Maybe[T] {
	if m.hasValue && condition(m.value) {
		return m
	}
	return None[T]()
}

// Execute runs action on the value, if any, and returns m.
func (m Maybe[T]) Execute(action func(T)) Maybe[T] {
	if m.hasValue {
		action(m.value)
	}
	return m
}

// Switch runs some with the value or none without one.
func (m Maybe[T]) Switch(some func(T), none func()) {
	if m.hasValue {
		some(m.value)
		return
	}
	none()
}

// Or returns m when it has a value, other otherwise.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.hasValue {
		return m
	}
	return other
}

// OrElse is Or with a lazily computed alternative.
func (m Maybe[T]) OrElse(other func() Maybe[T]) Maybe[T] {
	if m.hasValue {
		return m
	}
	return other()
}

// OrValue returns the value, or other for None.
func (m Maybe[T]) OrValue(other T) T {
	return m.ValueOrDefault(other)
}

func (m Maybe[T]) OrElseValue(other func() T) T {
	if m.hasValue {
		return m.value
	}
	return other()
}

// ToResult turns None into a Null failure.
func (m Maybe[T]) ToResult() rop.Result[T] {
	if !m.hasValue {
		return rop.Null[T]()
	}
	return rop.Success(m.value)
}

// ToResultOr turns None into a failure with err.
func (m Maybe[T]) ToResultOr(err errs.Error) rop.Result[T] {
	if !m.hasValue {
		return rop.Fail[T](err)
	}
	return rop.Success(m.value)
}

// Equal reports whether both are None or both hold equal values.
func (m Maybe[T]) Equal(other Maybe[T]) bool {
	if m.hasValue != other.hasValue {
		return false
	}
	return !m.hasValue || rop.EqualValues(m.value, other.value)
}

// EqualValue compares m with a bare value. A nil value equals only None.
func (m Maybe[T]) EqualValue(value T) bool {
	if rop.IsNil(value) {
		return !m.hasValue
	}
	return m.hasValue && rop.EqualValues(m.value, value)
}

// String formats the value; None formats as "".
func (m Maybe[T]) String() string {
	return m.StringOr("")
}

func (m Maybe[T]) StringOr(none string) string {
	if !m.hasValue {
		return none
	}
	return fmt.Sprint(m.value)
}

