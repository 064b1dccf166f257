// Package rop holds the outcome types used for railway-oriented programming:
// Result[T] (a value or an errs.Error), VoidResult (success carrying nothing)
// and EnumerableResult[A] (a snapshot sequence or an errs.Error).
//
// Outcomes are immutable values. Every operation that runs caller code does so
// behind Protect, so a panic inside a callback becomes an exception failure
// instead of unwinding through the caller. ValueOrThrow is the only operation
// that panics on purpose.
//
// Type-changing operations (Map, Switch, Match, MapEach, ExecuteScalar, ...)
// are package-level functions because Go methods cannot take type parameters.
package rop
