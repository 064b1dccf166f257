package rop

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/results/pkg/rop/errs"
)

func TestEnumerable_Snapshot(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3}
	e := Enumerable(items)
	items[0] = 100

	assert.Equal(t, []int{1, 2, 3}, e.Values())
	assert.Equal(t, []int{1, 2, 3}, e.Values())

	// callers get copies
	got := e.Values()
	got[1] = 200
	assert.Equal(t, 2, e.At(1))
}

func TestEnumerableFromSeq_ReadOnce(t *testing.T) {
	t.Parallel()

	reads := 0
	seq := func(yield func(string) bool) {
		reads++
		for _, s := range []string{"a", "b"} {
			if !yield(s) {
				return
			}
		}
	}

	e := EnumerableFromSeq(seq)
	assert.Equal(t, []string{"a", "b"}, e.Values())
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, []string{"a", "b"}, slices.Collect(e.All()))
	assert.Equal(t, 1, reads)
}

func TestEnumerableFromSeq_Panic(t *testing.T) {
	t.Parallel()

	e := EnumerableFromSeq(func(func(int) bool) { panic("broken source") })
	require.True(t, e.IsFailed())
	assert.Equal(t, "broken source", e.Err().Description())
}

func TestEnumerable_Constructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3}, EnumerableOf(1, 2, 3).Values())
	assert.True(t, EmptyEnumerable[int]().IsSuccessful())
	assert.True(t, EmptyEnumerable[int]().IsEmpty())
	assert.Equal(t, errs.KindEmpty, EnumerableNotEmpty([]int{}).Err().Kind())
	assert.True(t, EnumerableFromResult(Success([]int{4})).EqualSeq([]int{4}))
	assert.Equal(t, "x", EnumerableFromResult(Fail[[]int](errs.New("x"))).Err().Description())
	assert.Equal(t, errs.KindFail, EnumerableFail[int](errs.Error{}).Err().Kind())

	var zero EnumerableResult[int]
	assert.Equal(t, errs.KindUnknown, zero.Err().Kind())
}

func TestEnumerable_FailedIsEmpty(t *testing.T) {
	t.Parallel()

	e := EnumerableFail[int](errs.New("x"))
	assert.True(t, e.IsEmpty())
	assert.True(t, e.IsFailedOrEmpty())
	assert.Nil(t, e.Values())

	items, err := e.Deconstruct()
	assert.Empty(t, items)
	assert.EqualError(t, err, "x")
}

func TestMapEach(t *testing.T) {
	t.Parallel()

	out := MapEach(EnumerableOf(1, 2, 3), strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, out.Values())
	assert.True(t, Select(EnumerableOf(1), func(v int) int { return v * 2 }).EqualSeq([]int{2}))

	failed := MapEach(EnumerableFail[int](errs.New("x")), strconv.Itoa)
	assert.Equal(t, "x", failed.Err().Description())

	panicked := MapEach(EnumerableOf(1, 0), func(v int) int { return 10 / v })
	assert.Equal(t, errs.KindException, panicked.Err().Kind())
}

func TestMapAll(t *testing.T) {
	t.Parallel()

	out := MapAll(EnumerableOf(3, 1, 2), func(items []int) []int {
		slices.Sort(items)
		return items
	})
	assert.Equal(t, []int{1, 2, 3}, out.Values())
}

func TestWhere(t *testing.T) {
	t.Parallel()

	even := EnumerableOf(1, 2, 3, 4).Where(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, even.Values())
}

func TestFirst(t *testing.T) {
	t.Parallel()

	e := EnumerableOf(5, 6, 7)
	assert.True(t, e.First().EqualValue(5))
	assert.True(t, e.FirstWhere(func(v int) bool { return v > 5 }).EqualValue(6))
	assert.Equal(t, errs.KindEmpty, e.FirstWhere(func(v int) bool { return v > 10 }).Err().Kind())
	assert.Equal(t, errs.KindEmpty, EmptyEnumerable[int]().First().Err().Kind())
	assert.Equal(t, "x", EnumerableFail[int](errs.New("x")).First().Err().Description())

	assert.Equal(t, 5, e.FirstOrDefault())
	assert.Equal(t, 7, e.FirstOrDefaultWhere(func(v int) bool { return v == 7 }))
	assert.Equal(t, 0, e.FirstOrDefaultWhere(func(v int) bool { return v == 8 }))
	assert.Equal(t, 0, EnumerableFail[int](errs.Fail()).FirstOrDefault())

	assert.NotPanics(t, func() {
		assert.Equal(t, 0, e.FirstOrDefaultWhere(func(int) bool { panic("predicate") }))
	})
}

func TestExecuteScalar(t *testing.T) {
	t.Parallel()

	sum := func(items []int) int {
		total := 0
		for _, v := range items {
			total += v
		}
		return total
	}
	assert.True(t, ExecuteScalar(EnumerableOf(1, 2, 3), sum).EqualValue(6))
	assert.True(t, ExecuteScalar(EnumerableFail[int](errs.New("x")), sum).IsFailed())
}

func TestMatchEach(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"1", "2"}, MatchEach(EnumerableOf(1, 2), strconv.Itoa, nil))
	assert.Equal(t, []string{}, MatchEach(EnumerableFail[int](errs.Fail()), strconv.Itoa, nil))

	recovered := MatchEach(EnumerableFail[int](errs.New("x")), strconv.Itoa, func(e errs.Error) []string {
		return []string{e.Description()}
	})
	assert.Equal(t, []string{"x"}, recovered)

	assert.Equal(t, 2, MatchAll(EnumerableOf(1, 2), func(items []int) int { return len(items) }, func(errs.Error) int { return -1 }))
	assert.Equal(t, -1, MatchAll(EnumerableFail[int](errs.Fail()), func(items []int) int { return len(items) }, func(errs.Error) int { return -1 }))
}

func TestEnumerable_SideEffects(t *testing.T) {
	t.Parallel()

	var seen []int
	e := EnumerableOf(1, 2).ForEach(func(v int) { seen = append(seen, v) })
	assert.True(t, e.IsSuccessful())
	assert.Equal(t, []int{1, 2}, seen)

	assert.True(t, EnumerableOf(1, 2).ExecuteBool(func(items []int) bool { return len(items) == 2 }).Bool())
	assert.Equal(t, "bad", EnumerableOf(1).ExecuteVoid(func([]int) VoidResult { return VoidFail(errs.New("bad")) }).Err().Description())
	assert.True(t, EnumerableOf(1).Execute(func([]int) { panic("x") }).IsFailed())

	// the action cannot change the snapshot
	e = EnumerableOf(1, 2)
	e.Execute(func(items []int) { items[0] = 99 })
	assert.Equal(t, 1, e.At(0))
}

func TestEnumerable_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, EnumerableOf(1, 2).Equal(Enumerable([]int{1, 2})))
	assert.False(t, EnumerableOf(1, 2).Equal(EnumerableOf(2, 1)))
	assert.True(t, EnumerableFail[int](errs.New("A")).Equal(EnumerableFail[int](errs.New("a"))))
	assert.False(t, EmptyEnumerable[int]().Equal(EnumerableFail[int](errs.Empty())))
}

func TestEnumerable_ValueOrThrow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1}, EnumerableOf(1).ValueOrThrow())
	assert.PanicsWithError(t, "x", func() { EnumerableFail[int](errs.New("x")).ValueOrThrow() })

	_, err := EnumerableFail[int](errs.New("x")).Get()
	var re *ResultError
	assert.ErrorAs(t, err, &re)
}
