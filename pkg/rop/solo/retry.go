package solo

import (
	"context"
	"slices"

	"golang.org/x/time/rate"

	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/errs"
)

// DefaultMaxRetries is the usual number of retries after the first attempt.
const DefaultMaxRetries = 3

// RetryFunc decides whether a failed attempt is worth another one.
type RetryFunc func(err errs.Error) bool

// AsyncRetryFunc is RetryFunc for TryRetryAsync. It may block, for instance
// to wait before the next attempt.
type AsyncRetryFunc func(ctx context.Context, err errs.Error) bool

func AlwaysRetry(errs.Error) bool {
	return true
}

func NeverRetry(errs.Error) bool {
	return false
}

// NotifyRetry calls onRetry with every failure and always retries.
func NotifyRetry(onRetry func(errs.Error)) RetryFunc {
	return func(err errs.Error) bool {
		onRetry(err)
		return true
	}
}

// RetryKinds retries failures of the given kinds only.
func RetryKinds(kinds ...errs.Kind) RetryFunc {
	return func(err errs.Error) bool {
		return slices.Contains(kinds, err.Kind())
	}
}

// LimitedRetry retries as fast as limiter allows. It declines once ctx is
// done or the limiter cannot grant a token before the ctx deadline.
func LimitedRetry(ctx context.Context, limiter *rate.Limiter) RetryFunc {
	return func(err errs.Error) bool {
		return waitRetry(ctx, limiter, err)
	}
}

// LimitedRetryAsync is LimitedRetry for TryRetryAsync.
func LimitedRetryAsync(limiter *rate.Limiter) AsyncRetryFunc {
	return func(ctx context.Context, err errs.Error) bool {
		return waitRetry(ctx, limiter, err)
	}
}

// Async adapts a RetryFunc to TryRetryAsync.
func Async(canRetry RetryFunc) AsyncRetryFunc {
	return func(_ context.Context, err errs.Error) bool {
		return canRetry(err)
	}
}

func waitRetry(ctx context.Context, limiter *rate.Limiter, err errs.Error) bool {
	if waitErr := limiter.Wait(ctx); waitErr != nil {
		log.Debugw("retry declined by limiter", "error", err.Description(), "reason", waitErr)
		return false
	}
	return true
}

// TryRetry calls f and, while it fails, asks canRetry about the latest error
// before each of at most maxRetries further calls. A declined retry returns
// the current failure at once. Attempts never overlap; a panicking attempt
// counts as a failed one.
func TryRetry[T any](f func() rop.Result[T], canRetry RetryFunc, maxRetries int) rop.Result[T] {
	result := TryRunResult(f)
	if result.IsSuccessful() {
		return result
	}

	for i := 0; i < maxRetries; i++ {
		if !allowRetry(func() bool { return canRetry(result.Err()) }) {
			return result
		}

		log.Debugw("retrying", "attempt", i+2, "error", result.Err().Description())
		result = TryRunResult(f)
		if result.IsSuccessful() {
			return result
		}
	}

	if maxRetries > 0 {
		log.Infow("retries exhausted", "retries", maxRetries, "error", result.Err().Description())
	}
	return result
}

// allowRetry treats a panicking predicate as a declined retry.
func allowRetry(canRetry func() bool) bool {
	var allowed bool
	if err := rop.Protect(func() { allowed = canRetry() }); !err.IsZero() {
		log.Debugw("retry predicate panicked", "error", err.Description())
		return false
	}
	return allowed
}
