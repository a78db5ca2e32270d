// Package errs is a structured error hierarchy.
//
// Every error has a message, which Error returns unchanged, and an optional
// Source: the error that caused it. Kinded errors add a kind from a closed
// integer enumeration; when no message is given it is the decimal value of
// the kind. Errors may also wrap a native Go error, reachable through Cause
// and, at the bottom of its wrap chain, BaseCause.
//
// Value forms compare structurally: Plain, Err and ErrX.
// Pointer forms compare by identity: Typed and TypedX.
//
// All forms implement Unwrap() []error over their source and native cause,
// so errors.Is and errors.As walk the whole causal chain. Chain iterates the
// Source chain only, which must not contain a cycle.
package errs
