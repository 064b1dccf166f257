package rop

import (
	"context"
	"errors"
	"reflect"

	"github.com/ib-77/results/pkg/rop/errs"
)

// IsNil reports whether i is nil or a nil pointer, map, channel, func,
// interface or unsafe pointer. A nil slice is an empty sequence, not nil.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens err: the components of a multi error, the errors of an
// errors.Join, or err alone.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	var e errs.Error
	if errors.As(err, &e) && e.Kind() == errs.KindMulti && e.Error() == err.Error() {
		items := e.Errors()
		out := make([]error, 0, len(items))
		for _, item := range items {
			out = append(out, item)
		}
		return out
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		if list := joined.Unwrap(); len(list) > 0 {
			return list
		}
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// EqualValues compares two values with their Equal(T) bool method when they
// have one and reflect.DeepEqual otherwise.
func EqualValues[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
