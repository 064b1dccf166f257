package solo

import (
	"context"

	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/errs"
)

func Ok[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

// Failure returns a failed Result; without err it fails with a Fail error.
func Failure[T any](err ...errs.Error) rop.Result[T] {
	if len(err) == 0 {
		return rop.Fail[T](errs.Fail())
	}
	return rop.Fail[T](err[0])
}

func FailureMsg[T any](message string) rop.Result[T] {
	return rop.Fail[T](errs.New(message))
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Ok(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsFailed() {
		return input
	}

	var (
		isValid bool
		errMsg  string
	)
	if err := rop.Protect(func() { isValid, errMsg = validate(ctx, input.Value()) }); !err.IsZero() {
		return rop.Fail[T](err)
	}
	if !isValid {
		return rop.Fail[T](errs.New(errMsg))
	}
	return input
}

// ValidateAll runs every validator against input and aggregates the
// failures into a multi error. With breakOnError the first failure is
// returned alone and the remaining validators are skipped.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if input.IsFailed() {
		return input
	}

	var failures []errs.Error
	for _, validate := range validators {
		if err := ctx.Err(); err != nil {
			return rop.Fail[T](errs.FromContext(err))
		}

		current := TryRunResult(func() rop.Result[T] { return validate(ctx, input) })
		if current.IsSuccessful() {
			continue
		}
		if breakOnError {
			return current
		}
		failures = append(failures, current.Err())
	}

	switch len(failures) {
	case 0:
		return input
	case 1:
		return rop.Fail[T](failures[0])
	}
	return rop.Fail[T](errs.Multi(failures...))
}

// Tee runs onSuccess for a successful input and returns input.
func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	return TeeIf(ctx, input, nil, onSuccess)
}

// TeeIf is Tee guarded by condition; a nil condition always holds.
func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsFailed() {
		return input
	}

	err := rop.Protect(func() {
		if condition == nil || condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	})
	if !err.IsZero() {
		return rop.Fail[T](err)
	}
	return input
}

// FailOnError turns an error returned by maybeErr into a failure.
func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsFailed() {
		return input
	}
	if err := rop.ProtectErr(func() error { return maybeErr(ctx, input.Value()) }); !err.IsZero() {
		return rop.Fail[T](err)
	}
	return input
}

// Finally reduces input to an Out. Cancel failures go to onCancel, or to
// onError when onCancel is nil. A panic in onSuccess is handed to onError
// as an exception error.
func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err errs.Error) Out,
	onCancel func(ctx context.Context, err errs.Error) Out) Out {

	switch {
	case input.IsSuccessful():
		var out Out
		if err := rop.Protect(func() { out = onSuccess(ctx, input.Value()) }); !err.IsZero() {
			return onError(ctx, err)
		}
		return out
	case input.IsCancel() && onCancel != nil:
		return onCancel(ctx, input.Err())
	default:
		return onError(ctx, input.Err())
	}
}

// MapCancellation replaces an exception caused by context cancellation with
// a Cancel error and one caused by an expired deadline with a Timeout error.
func MapCancellation[T any](r rop.Result[T]) rop.Result[T] {
	if r.IsSuccessful() || !rop.IsCancellationError(r.Err()) {
		return r
	}
	return rop.Fail[T](errs.FromContext(r.Err()))
}

// Join feeds input through inputsF in order, passing every step result
// through concat. With breakOnError the first failed step ends the run.
func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := input
	for _, in := range inputsF {
		if err := ctx.Err(); err != nil {
			return rop.Fail[T](errs.FromContext(err))
		}

		nextRes := TryRunResult(func() rop.Result[T] { return concat(ctx, in(ctx, finalResult)) })
		if nextRes.IsFailed() && breakOnError {
			return nextRes
		}
		finalResult = nextRes
	}
	return finalResult
}
