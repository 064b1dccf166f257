package rop

import (
	"iter"

	"github.com/ib-77/results/pkg/rop/errs"
)

// Unit is the payload of a VoidResult. It carries no information.
type Unit struct{}

// VoidResult is a Result without payload: it only says whether an operation
// succeeded.
type VoidResult struct {
	Result[Unit]
}

var voidOk = VoidResult{Result[Unit]{ok: true}}

// Ok is the successful VoidResult.
func Ok() VoidResult {
	return voidOk
}

// VoidFail returns a failed VoidResult; without err it fails with a Fail
// error.
func VoidFail(err ...errs.Error) VoidResult {
	e := errs.Fail()
	if len(err) > 0 && !err[0].IsZero() {
		e = err[0]
	}
	return VoidResult{Fail[Unit](e)}
}

// FromBool maps true to success and false to a Fail error.
func FromBool(success bool) VoidResult {
	if success {
		return Ok()
	}
	return VoidFail()
}

// FromBoolResult keeps the failure of r, otherwise behaves like FromBool.
func FromBoolResult(r Result[bool]) VoidResult {
	if r.IsFailed() {
		return VoidFail(r.Err())
	}
	return FromBool(r.Value())
}

// FromOutcome keeps only whether o succeeded.
func FromOutcome(o Outcome) VoidResult {
	if o == nil {
		return VoidFail(errs.Null())
	}
	if o.IsFailed() {
		return VoidFail(o.Err())
	}
	return Ok()
}

// FoldVoid returns the first failure among outcomes, or success. Scanning
// stops at the first failure.
func FoldVoid(outcomes ...Outcome) VoidResult {
	for _, o := range outcomes {
		if o != nil && o.IsFailed() {
			return VoidFail(o.Err())
		}
	}
	return Ok()
}

// FoldVoidSeq is FoldVoid over a lazy sequence; nothing after the first
// failure is pulled from seq.
func FoldVoidSeq(seq iter.Seq[Outcome]) VoidResult {
	for o := range seq {
		if o != nil && o.IsFailed() {
			return VoidFail(o.Err())
		}
	}
	return Ok()
}

// Bool is true for a successful v.
func (v VoidResult) Bool() bool {
	return v.IsSuccessful()
}

// DoAction runs action when v succeeded.
func (v VoidResult) DoAction(action func()) VoidResult {
	if v.IsFailed() {
		return v
	}
	if err := Protect(action); !err.IsZero() {
		return VoidFail(err)
	}
	return Ok()
}

func (v VoidResult) Equal(other VoidResult) bool {
	return v.Result.Equal(other.Result)
}

// MatchBool calls f with the success of v.
func MatchBool[B any](v VoidResult, f func(bool) B) B {
	return f(v.IsSuccessful())
}

func MatchVoid[B any](v VoidResult, onSuccess func() B, onError func(errs.Error) B) B {
	return Match(v.Result, func(Unit) B { return onSuccess() }, onError)
}

func (v VoidResult) String() string {
	if v.IsFailed() {
		return v.Err().String()
	}
	return "Ok"
}
