// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Every step first looks at the chain context: once it is done the chain
// fails with a Cancel (or Timeout) error and no further step runs. Steps run
// behind the panic firewall of package rop.
//
// Key operations:
//   - Start/FromValue: begin a chain from a Result[T] or value
//   - Then: switch to a new Result[U] via a function
//   - ThenTry: call a function (U, error) and convert error to failure
//   - Map: transform the successful value (T -> U)
//   - Ensure/And: run side effects or checks on success
//   - Or: recover a failed chain
//   - RepeatUntil: apply a step until a condition holds
//   - Finally: collapse the chain into a final value via handlers
package chain
