// Package maybe provides Maybe, an optional value that is independent of
// the outcome types in package rop.
//
// A Maybe either holds a non-nil value or is None. None is the zero Maybe.
// Unlike rop.Success, Some refuses nil: passing nil is a programming error
// and panics. Use Of to turn a possibly nil value into None.
package maybe
