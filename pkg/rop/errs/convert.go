package errs

import (
	"context"
	"errors"
	"fmt"
)

// Exception wraps a Go error. The description is the error message and the
// error stays reachable through Data and Unwrap.
func Exception(err error) Error {
	if err == nil {
		return Unknown()
	}
	return Error{kind: KindException, description: err.Error(), data: &payload{value: err}}
}

// From converts any error into an Error. A nil error gives the zero Error, an
// Error (or *Error) is returned unchanged, a nil *Error gives Unknown and
// anything else becomes an exception error.
func From(err error) Error {
	switch v := err.(type) {
	case nil:
		return Error{}
	case Error:
		return v
	case *Error:
		if v == nil {
			return Unknown()
		}
		return *v
	}

	var e Error
	if errors.As(err, &e) && isSame(err, e) {
		return e
	}
	var pe *Error
	if errors.As(err, &pe) && pe != nil && isSame(err, *pe) {
		return *pe
	}
	return Exception(err)
}

// isSame reports whether err is e itself rather than a wrapper around it, so
// that wrapped errors keep their own message.
func isSame(err error, e Error) bool {
	return err.Error() == e.Error()
}

// FromPanic converts a recovered panic value into an Error.
func FromPanic(p any) Error {
	switch v := p.(type) {
	case nil:
		return Unknown()
	case Error:
		return v
	case error:
		return From(v)
	case string:
		return Exception(errors.New(v))
	default:
		return Exception(fmt.Errorf("%v", v))
	}
}

// FromContext maps context cancellation to Cancel and deadlines to Timeout.
// Other errors go through From.
func FromContext(err error) Error {
	switch {
	case err == nil:
		return Error{}
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout()
	case errors.Is(err, context.Canceled):
		return Cancel()
	}
	return From(err)
}
