// Package errs defines the closed error taxonomy carried by failed outcomes.
//
// An Error is an immutable value identified by its description: two errors are
// equal when their descriptions match case-insensitively, whatever their Kind
// or payload. The set of kinds is fixed; callers switch on Kind() instead of
// type-testing.
//
// Key constructors:
// - Fail/Null/Empty/Unknown/Timeout/Cancel/NotEnumerable/Cast: default descriptions
// - New/Newf: plain described errors
// - WithData/DataOf: errors carrying a typed payload
// - Exception/FromPanic/From: conversion of Go errors and panics
// - Multi/MultiWith: ordered aggregation of several errors
package errs
