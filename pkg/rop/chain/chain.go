package chain

import (
	"context"
	"fmt"

	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/errs"
	"github.com/ib-77/results/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// live returns the current result, or a Cancel/Timeout failure once the
// context is done.
func live[T any](c *Chain[T]) rop.Result[T] {
	if c.result.IsSuccessful() {
		if err := c.ctx.Err(); err != nil {
			return rop.Fail[T](errs.FromContext(err))
		}
	}
	return c.result
}

func next[T, U any](c *Chain[T], result rop.Result[U]) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, result: result}
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return next(c, rop.Switch(live(c), func(v T) rop.Result[U] { return onSuccess(c.ctx, v) }))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return next(c, rop.MapErr(live(c), func(v T) (U, error) { return tryOnSuccess(c.ctx, v) }))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return next(c, rop.Map(live(c), func(v T) U { return onSuccess(c.ctx, v) }))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return next(c, solo.Tee(c.ctx, live(c),
		func(ctx context.Context, result rop.Result[T]) {
			onSuccess(ctx, result.Value())
		}))
}

// And runs check on the value and keeps it when check succeeds.
func (c *Chain[T]) And(check func(context.Context, T) rop.VoidResult) *Chain[T] {
	current := live(c)
	checked := current.ExecuteVoid(func(v T) rop.VoidResult { return check(c.ctx, v) })
	if checked.IsFailed() {
		return next(c, rop.Fail[T](checked.Err()))
	}
	return next(c, current)
}

// Or recovers a failed chain with onFailure. Successful chains are left
// alone.
func (c *Chain[T]) Or(onFailure func(context.Context, errs.Error) rop.Result[T]) *Chain[T] {
	if c.result.IsSuccessful() {
		return c
	}
	return next(c, solo.TryRunResult(func() rop.Result[T] { return onFailure(c.ctx, c.result.Err()) }))
}

// RepeatUntil applies step until done holds for the value, at most
// maxSteps times. Running out of steps fails the chain with a Fail error.
func RepeatUntil[T any](c *Chain[T], step func(context.Context, T) rop.Result[T], done func(T) bool, maxSteps int) *Chain[T] {
	current := c
	for i := 0; ; i++ {
		result := live(current)
		if result.IsFailed() {
			return next(c, result)
		}
		var finished bool
		if err := rop.Protect(func() { finished = done(result.Value()) }); !err.IsZero() {
			return next(c, rop.Fail[T](err))
		}
		if finished {
			return current
		}
		if i == maxSteps {
			return next(c, rop.Fail[T](errs.Fail(fmt.Sprintf("condition not met after %d steps", maxSteps))))
		}
		current = Then(current, step)
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, errs.Error) U, onCancel func(context.Context, errs.Error) U) U {
	return solo.Finally(c.ctx, live(c), onSuccess, onFailure, onCancel)
}
