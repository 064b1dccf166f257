package maybe

import (
	"context"

	"github.com/ib-77/results/pkg/rop/future"
)

// MapAsync runs f on the value of m in the background. None completes
// immediately without calling f. An error from f fails the future.
func MapAsync[T, B any](ctx context.Context, m Maybe[T], f func(context.Context, T) (B, error)) *future.Future[Maybe[B]] {
	if !m.hasValue {
		return future.Completed(None[B]())
	}
	return future.FromFunc(func() (Maybe[B], error) {
		v, err := f(ctx, m.value)
		if err != nil {
			return None[B](), err
		}
		return Some(v), nil
	})
}

// BindAsync is MapAsync for functions returning a Maybe.
func BindAsync[T, B any](ctx context.Context, m Maybe[T], f func(context.Context, T) (Maybe[B], error)) *future.Future[Maybe[B]] {
	if !m.hasValue {
		return future.Completed(None[B]())
	}
	return future.FromFunc(func() (Maybe[B], error) {
		return f(ctx, m.value)
	})
}

// MatchAsync runs some or none in the background.
func MatchAsync[T, B any](ctx context.Context, m Maybe[T], some func(context.Context, T) (B, error), none func(context.Context) (B, error)) *future.Future[B] {
	return future.FromFunc(func() (B, error) {
		if !m.hasValue {
			return none(ctx)
		}
		return some(ctx, m.value)
	})
}

// OrAsync completes with m when it has a value, otherwise with the Maybe
// produced by other.
func OrAsync[T any](ctx context.Context, m Maybe[T], other func(context.Context) (Maybe[T], error)) *future.Future[Maybe[T]] {
	if m.hasValue {
		return future.Completed(m)
	}
	return future.FromFunc(func() (Maybe[T], error) {
		return other(ctx)
	})
}

// ExecuteAsync runs action on the value in the background and completes
// with m once it returns.
func ExecuteAsync[T any](ctx context.Context, m Maybe[T], action func(context.Context, T) error) *future.Future[Maybe[T]] {
	if !m.hasValue {
		return future.Completed(m)
	}
	return future.FromFunc(func() (Maybe[T], error) {
		return m, action(ctx, m.value)
	})
}
