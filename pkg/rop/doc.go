// Package rop holds the pieces shared by the sum types of this module:
// the Unit marker, the Kind constraint for closed error enumerations,
// the Pair tuple and PanicError, the fatal signal raised on API misuse.
//
// The sum types themselves live in sub-packages:
// - option: Option[T], a value that may be absent
// - either: Either[L, R] and the reference variants LeftRef/RightRef
// - result: Result[E, T] and the allocation-free Res[K, T]
// - errs: the error hierarchy with kinds, sources and native causes
// - diag: Unwrap/Expect helpers that turn an unexpected variant into a panic
//
// Synchronous railway helpers built on result.Result[error, T] are in solo
// and chain.
package rop
