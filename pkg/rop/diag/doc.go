// Package diag turns an unexpected variant into a panic.
//
// The helpers are meant for tests, examples and program start-up, where a
// failure cannot be handled. Each panic value is a *rop.PanicError holding
// the payload that was found; when that payload wraps a native error the
// panic unwraps to it, so errors.Is and errors.As still work after recover.
package diag
