package solo

import (
	"context"
	"testing"

	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/errs"
)

// helper validators for int values that ignore prior result and validate captured value
func validateNonNegative(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v < 0 {
			return rop.Fail[int](errs.New("negative"))
		}
		return rop.Success(v)
	}
}

func validateEven(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v%2 != 0 {
			return rop.Fail[int](errs.New("odd"))
		}
		return rop.Success(v)
	}
}

func passThrough[T any]() func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
	return func(ctx context.Context, in rop.Result[T]) rop.Result[T] { return in }
}

func rule(pass bool, msg string) func(context.Context, rop.Result[int]) rop.Result[int] {
	return func(_ context.Context, in rop.Result[int]) rop.Result[int] {
		if pass {
			return in
		}
		return rop.Fail[int](errs.New(msg))
	}
}

func TestValidateAll_AllSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := 10 // non-negative, even
	input := rop.Success(v)

	res := ValidateAll(ctx, input, true, validateNonNegative(v), validateEven(v))

	if !res.IsSuccessful() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if res.Value() != v {
		t.Fatalf("expected result %d, got %d", v, res.Value())
	}
}

func TestValidateAll_FailBreakOnFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -1 // fails non-negative and odd
	input := rop.Success(v)

	executed := 0
	v1 := func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		executed++
		return validateNonNegative(v)(ctx, in)
	}

	v2 := func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		executed++
		return validateEven(v)(ctx, in)
	}

	res := ValidateAll(ctx, input, true, v1, v2)

	if res.IsSuccessful() {
		t.Fatalf("expected failure, got success: %v", res.Value())
	}
	if executed != 1 {
		t.Fatalf("expected only first validator to execute, got %d", executed)
	}
	if res.Err().Kind() == errs.KindMulti || res.Err().Error() != "negative" {
		t.Fatalf("expected 'negative' error, got: %v", res.Err())
	}
}

func TestValidateAll_AccumulateErrors_NoBreak(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -3 // negative and odd
	input := rop.Success(v)

	res := ValidateAll(ctx, input, false, validateNonNegative(v), validateNonNegative(v), validateEven(v))

	if res.IsSuccessful() {
		t.Fatalf("expected failure, got success: %v", res.Value())
	}

	errs := rop.GetErrors(res.Err())
	if len(errs) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d", len(errs))
	}

	// check messages; order should follow validator sequence
	if errs[0].Error() != "negative" || errs[1].Error() != "negative" || errs[2].Error() != "odd" {
		t.Fatalf("expected errors ['negative', 'negative', 'odd'], got ['%s','%s','%s']",
			errs[0].Error(), errs[1].Error(), errs[2].Error())
	}
}

func TestValidateAll_SkipsPassingValidators(t *testing.T) {
	t.Parallel()

	res := ValidateAll(context.Background(), rop.Success(1), false, rule(false, "a"), rule(true, "b"), rule(false, "c"))

	items := res.Err().Errors()
	if len(items) != 2 || items[0].Description() != "a" || items[1].Description() != "c" {
		t.Fatalf("expected errors ['a', 'c'], got %v", items)
	}
}

func TestValidateAll_InitialInputFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := rop.Fail[int](errs.New("initial"))

	res := ValidateAll(ctx, input, true, passThrough[int]())

	if res.IsSuccessful() {
		t.Fatalf("expected failure, got success")
	}
	if res.Err().Error() != "initial" {
		t.Fatalf("expected initial error to pass through, got: %v", res.Err())
	}
}

func TestValidateAll_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before running

	input := rop.Success(42)
	res := ValidateAll(ctx, input, false, validateNonNegative(42), validateEven(42))

	if !res.IsCancel() {
		t.Fatalf("expected cancel, got: %v", res)
	}
}

func TestValidateAll_NoValidators(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := rop.Success(7)

	res := ValidateAll(ctx, input, false /* no validators */)

	if !res.IsSuccessful() {
		t.Fatalf("expected success, got error: %v", res.Err())
	}
	if res.Value() != 7 {
		t.Fatalf("expected result 7, got %d", res.Value())
	}
}
