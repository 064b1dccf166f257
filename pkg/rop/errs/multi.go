package errs

import (
	"slices"
	"strings"
)

const multiSeparator = "; "

// Multi aggregates errors in order. Zero Errors are skipped; with nothing
// left the multi error holds a single Empty error.
func Multi(errs ...Error) Error {
	items := make([]Error, 0, len(errs))
	for _, e := range errs {
		if !e.IsZero() {
			items = append(items, e)
		}
	}
	if len(items) == 0 {
		items = append(items, Empty())
	}

	descriptions := make([]string, 0, len(items))
	for _, e := range items {
		descriptions = append(descriptions, e.description)
	}

	return Error{
		kind:        KindMulti,
		description: strings.Join(descriptions, multiSeparator),
		multi:       &items,
	}
}

// MultiWith puts top in front of inner. When inner is itself a multi error
// its components follow top, otherwise the result holds exactly [top, inner].
func MultiWith(top Error, inner Error) Error {
	if inner.kind == KindMulti {
		return Multi(append([]Error{top}, inner.items()...)...)
	}
	return Multi(top, inner)
}

// Errors returns a copy of the components of a multi error, or e alone for
// any other non-zero error.
func (e Error) Errors() []Error {
	if e.kind == KindMulti {
		return slices.Clone(e.items())
	}
	if e.IsZero() {
		return nil
	}
	return []Error{e}
}

// Top is the first component of a multi error, e itself otherwise.
func (e Error) Top() Error {
	if e.kind != KindMulti {
		return e
	}
	if items := e.items(); len(items) > 0 {
		return items[0]
	}
	return Empty()
}

// Inner is the second component of a multi error, or an Empty error.
func (e Error) Inner() Error {
	if items := e.items(); len(items) >= 2 {
		return items[1]
	}
	return Empty()
}

// Len is the number of components of a multi error; 1 for other errors.
func (e Error) Len() int {
	switch {
	case e.kind == KindMulti:
		return len(e.items())
	case e.IsZero():
		return 0
	}
	return 1
}

func (e Error) items() []Error {
	if e.multi == nil {
		return nil
	}
	return *e.multi
}
