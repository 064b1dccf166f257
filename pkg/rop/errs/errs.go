package errs

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Kind discriminates the variants of Error.
type Kind uint8

const (
	KindError Kind = iota + 1
	KindFail
	KindNull
	KindEmpty
	KindUnknown
	KindTimeout
	KindCancel
	KindNotEnumerable
	KindCast
	KindData
	KindException
	KindMulti
)

var kindNames = map[Kind]string{
	KindError:         "error",
	KindFail:          "fail",
	KindNull:          "null",
	KindEmpty:         "empty",
	KindUnknown:       "unknown",
	KindTimeout:       "timeout",
	KindCancel:        "cancel",
	KindNotEnumerable: "not_enumerable",
	KindCast:          "cast",
	KindData:          "data",
	KindException:     "exception",
	KindMulti:         "multi",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Error is the failure value of every outcome. The zero Error is not an error
// at all; IsZero reports it.
type Error struct {
	kind        Kind
	description string
	data        *payload
	multi       *[]Error
}

// payload keeps Error comparable with == whatever the payload type is.
type payload struct {
	value any
}

func newError(kind Kind, description string) Error {
	return Error{kind: kind, description: description}
}

func (e Error) Kind() Kind {
	return e.kind
}

func (e Error) Description() string {
	return e.description
}

func (e Error) IsZero() bool {
	return e.kind == 0
}

// Error implements the error interface with the description.
func (e Error) Error() string {
	return e.description
}

func (e Error) String() string {
	return e.description
}

// Key returns the case-folded description. Equal errors share a key, so it
// can be used as a map key or hash input.
func (e Error) Key() string {
	return cases.Fold().String(e.description)
}

// Equal compares descriptions case-insensitively. Kind and payload do not
// take part in the comparison.
func (e Error) Equal(other Error) bool {
	if e.IsZero() || other.IsZero() {
		return e.IsZero() && other.IsZero()
	}
	if e.description == other.description {
		return true
	}
	return e.Key() == other.Key()
}

// Is lets errors.Is match an Error against another Error (or *Error) by
// description.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return e.Equal(t)
	case *Error:
		return t != nil && e.Equal(*t)
	}
	return false
}

// Unwrap exposes the cause of an exception error and the components of a
// multi error to errors.Is and errors.As.
func (e Error) Unwrap() []error {
	switch e.kind {
	case KindException:
		if cause, ok := e.Data().(error); ok {
			return []error{cause}
		}
	case KindMulti:
		items := e.items()
		out := make([]error, 0, len(items))
		for _, item := range items {
			out = append(out, item)
		}
		return out
	}
	return nil
}

// Data returns the raw payload: the cause of an exception error, the value of
// a data error, or nil.
func (e Error) Data() any {
	if e.data == nil {
		return nil
	}
	return e.data.value
}
