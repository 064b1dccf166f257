package solo

import (
	"iter"
	"slices"

	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/errs"
)

// Fold collects the values of results in order. Without stopOnError failed
// entries are skipped and the fold always succeeds; with it the first
// failure is returned and everything collected so far is dropped.
func Fold[T any](results []rop.Result[T], stopOnError bool) rop.EnumerableResult[T] {
	return FoldSeq(slices.Values(results), stopOnError)
}

// FoldAll is Fold with stopOnError set.
func FoldAll[T any](results ...rop.Result[T]) rop.EnumerableResult[T] {
	return Fold(results, true)
}

// FoldSeq is Fold over a lazy sequence. With stopOnError nothing is pulled
// after the first failure.
func FoldSeq[T any](results iter.Seq[rop.Result[T]], stopOnError bool) rop.EnumerableResult[T] {
	var (
		values []T
		failed errs.Error
	)

	err := rop.Protect(func() {
		for r := range results {
			if r.IsFailed() {
				if stopOnError {
					failed = r.Err()
					return
				}
				continue
			}
			values = append(values, r.Value())
		}
	})

	switch {
	case !err.IsZero():
		return rop.EnumerableFail[T](err)
	case !failed.IsZero():
		return rop.EnumerableFail[T](failed)
	}
	return rop.Enumerable(values)
}

// Combine joins two results. When both failed the errors are kept in a
// multi error, in argument order.
func Combine[A, B any](a rop.Result[A], b rop.Result[B]) rop.Result[rop.Pair[A, B]] {
	if failed := failures(a, b); len(failed) > 0 {
		return rop.Fail[rop.Pair[A, B]](merge(failed))
	}
	return rop.Success(rop.Pair[A, B]{First: a.Value(), Second: b.Value()})
}

func Combine3[A, B, C any](a rop.Result[A], b rop.Result[B], c rop.Result[C]) rop.Result[rop.Triple[A, B, C]] {
	if failed := failures(a, b, c); len(failed) > 0 {
		return rop.Fail[rop.Triple[A, B, C]](merge(failed))
	}
	return rop.Success(rop.Triple[A, B, C]{First: a.Value(), Second: b.Value(), Third: c.Value()})
}

func merge(failed []errs.Error) errs.Error {
	if len(failed) == 1 {
		return failed[0]
	}
	return errs.Multi(failed...)
}

// failures collects the errors of the failed outcomes in argument order.
func failures(outcomes ...rop.Outcome) []errs.Error {
	var out []errs.Error
	for _, o := range outcomes {
		if o.IsFailed() {
			out = append(out, o.Err())
		}
	}
	return out
}
