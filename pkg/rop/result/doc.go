// Package result provides Result[E, T], the outcome of a fallible
// computation, and Res[K, T], its allocation-free variant for kinded errors.
//
// A Result built with Ok or Err behaves as a plain two-variant union. The zero
// value reports IsErr but holds no error: reading its Err payload through
// Match, Err, MapErr or any other operation that needs it panics with a
// *rop.PanicError that unwraps to rop.ErrUninitialized.
//
// Operations that change a type parameter are package functions:
//
//	n := result.AndThen(parse(s), validate)
//	msg := result.Match(n, errorText, okText)
//
// Operations that keep both type parameters are methods:
//
//	v := n.UnwrapOr(0)
package result
