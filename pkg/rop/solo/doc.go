// Package solo contains single-value, synchronous ROP primitives that operate
// on result.Result[error, T]. These functions form the core building blocks
// for error-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail/Cancel: construct a Result
// - FromTuple/ToTuple: convert from and to Go's (value, error) pairs
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[error, In] to Result[error, Out]
// - Map/DoubleMap: transform successful values (with optional error/cancel handlers)
// - Try/FailOnError: call a function returning an error and convert it to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
//
// A failure whose error comes from a canceled or expired context counts as a
// cancellation, see IsCancellation.
package solo
