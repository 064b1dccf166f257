package solo

import (
	"context"

	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/errs"
	"github.com/ib-77/results/pkg/rop/future"
)

// spawn runs f in the background behind the panic firewall. The returned
// future always completes with a Result and never fails.
func spawn[T any](f func() rop.Result[T]) *future.Future[rop.Result[T]] {
	return future.FromFunc(func() (rop.Result[T], error) {
		return TryRunResult(f), nil
	})
}

// TryAsync is TryRun running in the background. A context error returned by
// f surfaces as an exception failure; see MapCancellation.
func TryAsync[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *future.Future[rop.Result[T]] {
	return spawn(func() rop.Result[T] {
		return TryRun(func() (T, error) { return f(ctx) })
	})
}

func TryAsyncResult[T any](ctx context.Context, f func(ctx context.Context) rop.Result[T]) *future.Future[rop.Result[T]] {
	return spawn(func() rop.Result[T] { return f(ctx) })
}

// Await waits for fut. A ctx done first gives an exception failure wrapping
// the context error.
func Await[T any](ctx context.Context, fut *future.Future[rop.Result[T]]) rop.Result[T] {
	r, err := fut.Get(ctx)
	if err != nil {
		return rop.Fail[T](rop.ProtectErr(func() error { return err }))
	}
	return r
}

func TryMapAsync[A, B any](ctx context.Context, item A, f func(ctx context.Context, in A) (B, error)) *future.Future[rop.Result[B]] {
	return TryAsync(ctx, func(ctx context.Context) (B, error) { return f(ctx, item) })
}

// TryForEachAsync projects items one after another in a single background
// goroutine. The projection stops at the first failure or once ctx is done.
func TryForEachAsync[A, B any](ctx context.Context, items []A, f func(ctx context.Context, in A) (B, error)) *future.Future[rop.EnumerableResult[B]] {
	return future.FromFunc(func() (rop.EnumerableResult[B], error) {
		return TryForEach(items, func(item A) (B, error) {
			if err := ctx.Err(); err != nil {
				var zero B
				return zero, err
			}
			return f(ctx, item)
		}), nil
	})
}

// TryRetryAsync is TryRetry running in the background with a predicate that
// may block. A ctx done before the first attempt gives an exception failure
// wrapping the context error; once ctx is done no retry is started.
func TryRetryAsync[T any](ctx context.Context, f func(ctx context.Context) rop.Result[T], canRetry AsyncRetryFunc, maxRetries int) *future.Future[rop.Result[T]] {
	return spawn(func() rop.Result[T] {
		attempt := func() rop.Result[T] {
			if err := ctx.Err(); err != nil {
				return rop.Fail[T](errs.Exception(err))
			}
			return f(ctx)
		}

		return TryRetry(attempt, func(err errs.Error) bool {
			return ctx.Err() == nil && canRetry(ctx, err)
		}, maxRetries)
	})
}
