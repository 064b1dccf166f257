// Package solo contains the free-standing combinators over rop.Result.
//
// Highlights:
//   - Ok/Failure/FailureMsg: construct outcomes
//   - TryRun/TryMap/TryForEach: run caller code behind the panic firewall
//   - TryAsync/TryMapAsync/TryForEachAsync/Await: the same on a future
//   - Fold/FoldSeq/Combine/Combine3: merge several outcomes
//   - TryRetry/TryRetryAsync: rerun a failing operation, strictly one attempt
//     after another
//   - Validate/AndValidate/ValidateAll: validation producing failures
//   - Tee/TeeIf/FailOnError: side-effect helpers
//   - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
