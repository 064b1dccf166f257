// Package future provides the single-assignment Future used by the async
// counterparts of the outcome operations.
//
// A Future is completed exactly once; the first completion wins and later
// ones are ignored. Get can be called by any number of goroutines and all of
// them observe the same value. Continuations built with Then run one after
// another in a single goroutine, so async code never fans out.
package future

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/ib-77/results/pkg/rop/errs"
)

// ErrCanceled is reported by a future completed through Cancel.
var ErrCanceled = errors.New("future canceled")

// Func is the computation run by FromFunc.
type Func[T any] func() (T, error)

type Future[T any] struct {
	isCompleted atomic.Bool
	completed   chan struct{}

	value T
	err   error
}

// New creates an uncompleted Future. It must be completed with Complete,
// Fail or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// NewWithContext creates an uncompleted Future that is canceled when ctx is
// done before anything else completes it.
func NewWithContext[T any](ctx context.Context) *Future[T] {
	f := New[T]()
	go func() {
		select {
		case <-ctx.Done():
			f.Fail(ctx.Err())
		case <-f.completed:
		}
	}()
	return f
}

// FromFunc runs do in its own goroutine and completes the Future with its
// result. A panic in do fails the Future with the converted panic.
func FromFunc[T any](do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		defer func() {
			if p := recover(); p != nil {
				f.Fail(errs.FromPanic(p))
			}
		}()

		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Completed returns a Future that already holds value.
func Completed[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Failed returns a Future that already failed with err.
func Failed[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Complete completes f with value. It is a no-op on a completed Future.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(value, nil)
}

// Cancel fails f with ErrCanceled.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

func (f *Future[T]) Fail(err error) {
	f.internalComplete(*new(T), err)
}

func (f *Future[T]) internalComplete(val T, err error) {
	if f.isCompleted.CompareAndSwap(false, true) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// Done is closed once f is completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.completed
}

func (f *Future[T]) IsCompleted() bool {
	select {
	case <-f.completed:
		return true
	default:
		return false
	}
}

// Get blocks until f is completed or ctx is done. In the latter case the
// context error is returned.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}

// Then waits for f and completes the returned Future with transform applied
// to its value. A failure of f, a done ctx or a panic in transform fail the
// returned Future without further calls.
func Then[A, B any](ctx context.Context, f *Future[A], transform func(A) (B, error)) *Future[B] {
	return FromFunc(func() (B, error) {
		value, err := f.Get(ctx)
		if err != nil {
			return *new(B), err
		}
		return transform(value)
	})
}
