package errs

import "fmt"

const (
	failDescription          = "Failed"
	nullDescription          = "Result value is null"
	emptyDescription         = "Result value is empty"
	unknownDescription       = "Unknown Error"
	timeoutDescription       = "Timeout Error"
	cancelDescription        = "Cancelled"
	notEnumerableDescription = "Not Enumerable Error"
	castDescription          = "Cast Error"
)

func describe(fallback string, message []string) string {
	if len(message) > 0 && message[0] != "" {
		return message[0]
	}
	return fallback
}

// New creates a plain error with the given description.
func New(description string) Error {
	return newError(KindError, description)
}

func Newf(format string, args ...any) Error {
	return newError(KindError, fmt.Sprintf(format, args...))
}

// Fail is the generic failure. An optional message replaces the default
// description.
func Fail(message ...string) Error {
	return newError(KindFail, describe(failDescription, message))
}

func Null(message ...string) Error {
	return newError(KindNull, describe(nullDescription, message))
}

func Empty(message ...string) Error {
	return newError(KindEmpty, describe(emptyDescription, message))
}

func Unknown(message ...string) Error {
	return newError(KindUnknown, describe(unknownDescription, message))
}

func Timeout(message ...string) Error {
	return newError(KindTimeout, describe(timeoutDescription, message))
}

func Cancel(message ...string) Error {
	return newError(KindCancel, describe(cancelDescription, message))
}

func NotEnumerable(message ...string) Error {
	return newError(KindNotEnumerable, describe(notEnumerableDescription, message))
}

func Cast(message ...string) Error {
	return newError(KindCast, describe(castDescription, message))
}

// WithData creates an error carrying data. The description is the default
// formatting of data.
func WithData[T any](data T) Error {
	return WithDataDesc(data, fmt.Sprint(data))
}

// WithDataDesc creates an error carrying data with an explicit description.
func WithDataDesc[T any](data T, description string) Error {
	return Error{kind: KindData, description: description, data: &payload{value: data}}
}

// DataOf returns the payload of e when it holds a T. For a multi error,
// DataOf[[]Error] returns a copy of the components.
func DataOf[T any](e Error) (T, bool) {
	if e.kind == KindMulti {
		v, ok := any(e.Errors()).(T)
		return v, ok
	}
	v, ok := e.Data().(T)
	return v, ok
}
