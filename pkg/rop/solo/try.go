package solo

import (
	"iter"

	"github.com/ib-77/results/pkg/rop"
)

// TryRun calls f behind the panic firewall. A returned error or a panic
// becomes an exception failure; an errs.Error is kept as it is.
func TryRun[T any](f func() (T, error)) rop.Result[T] {
	var out T
	if err := rop.ProtectErr(func() (e error) { out, e = f(); return }); !err.IsZero() {
		return rop.Fail[T](err)
	}
	return rop.Success(out)
}

// TryRunResult is TryRun for functions that already return a Result.
func TryRunResult[T any](f func() rop.Result[T]) rop.Result[T] {
	var out rop.Result[T]
	if err := rop.Protect(func() { out = f() }); !err.IsZero() {
		return rop.Fail[T](err)
	}
	return out
}

func TryVoid(f func() rop.VoidResult) rop.VoidResult {
	var out rop.VoidResult
	if err := rop.Protect(func() { out = f() }); !err.IsZero() {
		return rop.VoidFail(err)
	}
	return out
}

// TryMap applies f to item behind the panic firewall.
func TryMap[A, B any](item A, f func(A) (B, error)) rop.Result[B] {
	return TryRun(func() (B, error) { return f(item) })
}

func TryMapResult[A, B any](item A, f func(A) rop.Result[B]) rop.Result[B] {
	return TryRunResult(func() rop.Result[B] { return f(item) })
}

// TryForEach projects items with f. The first error or panic fails the whole
// projection.
func TryForEach[A, B any](items []A, f func(A) (B, error)) rop.EnumerableResult[B] {
	return TryForEachSeq(func(yield func(A) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}, f)
}

// TryForEachSeq is TryForEach over a sequence. Nothing is pulled from seq
// after the first failure.
func TryForEachSeq[A, B any](seq iter.Seq[A], f func(A) (B, error)) rop.EnumerableResult[B] {
	var out []B
	err := rop.ProtectErr(func() error {
		for item := range seq {
			v, err := f(item)
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		return nil
	})
	if !err.IsZero() {
		return rop.EnumerableFail[B](err)
	}
	return rop.Enumerable(out)
}
