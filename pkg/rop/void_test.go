package rop

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/results/pkg/rop/errs"
)

func TestVoid(t *testing.T) {
	t.Parallel()

	assert.True(t, Ok().IsSuccessful())
	assert.True(t, Ok().Bool())
	assert.Equal(t, "Ok", Ok().String())

	assert.Equal(t, errs.KindFail, VoidFail().Err().Kind())
	assert.Equal(t, "nope", VoidFail(errs.New("nope")).String())
	assert.True(t, Ok().Equal(Ok()))
	assert.False(t, Ok().Equal(VoidFail()))
}

func TestFromBool(t *testing.T) {
	t.Parallel()

	assert.True(t, FromBool(true).Bool())
	assert.False(t, FromBool(false).Bool())
	assert.True(t, FromBoolResult(Success(true)).Bool())
	assert.Equal(t, errs.KindFail, FromBoolResult(Success(false)).Err().Kind())
	assert.Equal(t, "x", FromBoolResult(Fail[bool](errs.New("x"))).Err().Description())
}

func TestFromOutcome(t *testing.T) {
	t.Parallel()

	assert.True(t, FromOutcome(Success("v")).Bool())
	assert.Equal(t, "x", FromOutcome(Fail[string](errs.New("x"))).Err().Description())
	assert.True(t, FromOutcome(nil).IsNull())
	assert.True(t, FromOutcome(Enumerable([]int{})).Bool())
}

func TestFoldVoid_FirstFailureWins(t *testing.T) {
	t.Parallel()

	assert.True(t, FoldVoid().Bool())
	assert.True(t, FoldVoid(Success(1), Ok(), Enumerable([]string{"a"})).Bool())

	out := FoldVoid(Success(1), Fail[int](errs.New("first")), Fail[string](errs.New("second")))
	assert.Equal(t, "first", out.Err().Description())
}

func TestFoldVoidSeq_StopsPulling(t *testing.T) {
	t.Parallel()

	pulled := 0
	seq := func(yield func(Outcome) bool) {
		for _, o := range []Outcome{Ok(), VoidFail(errs.New("stop")), Ok()} {
			pulled++
			if !yield(o) {
				return
			}
		}
	}

	out := FoldVoidSeq(seq)
	assert.Equal(t, "stop", out.Err().Description())
	assert.Equal(t, 2, pulled)

	assert.True(t, FoldVoidSeq(slices.Values([]Outcome{Ok(), Ok()})).Bool())
}

func TestDoAction(t *testing.T) {
	t.Parallel()

	count := 0
	assert.True(t, Ok().DoAction(func() { count++ }).Bool())
	assert.True(t, VoidFail().DoAction(func() { count++ }).IsFailed())
	assert.Equal(t, 1, count)

	assert.Equal(t, errs.KindException, Ok().DoAction(func() { panic("bad") }).Err().Kind())
}

func TestMatchVoid(t *testing.T) {
	t.Parallel()

	describe := func(v VoidResult) string {
		return MatchVoid(v, func() string { return "done" }, func(e errs.Error) string { return e.Description() })
	}
	assert.Equal(t, "done", describe(Ok()))
	assert.Equal(t, "Failed", describe(VoidFail()))

	assert.Equal(t, 1, MatchBool(Ok(), func(ok bool) int {
		if ok {
			return 1
		}
		return 0
	}))
}
