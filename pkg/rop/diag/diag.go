package diag

import (
	"github.com/ib-77/roptypes/internal/eq"
	"github.com/ib-77/roptypes/pkg/rop"
	"github.com/ib-77/roptypes/pkg/rop/option"
	"github.com/ib-77/roptypes/pkg/rop/result"
)

// Unwrap returns the Ok value of r and panics with a *rop.PanicError[E]
// carrying the error otherwise.
func Unwrap[E, T any](r result.Result[E, T]) T {
	return Expect(r, "called `Unwrap` on an `Error` value")
}

// Expect is Unwrap with a caller supplied message.
func Expect[E, T any](r result.Result[E, T], message string) T {
	return result.Match(r,
		func(e E) T { panic(rop.NewPanic(message, e)) },
		pass[T])
}

// UnwrapError returns the Err value of r and panics with a *rop.PanicError[T]
// carrying the Ok value otherwise.
func UnwrapError[E, T any](r result.Result[E, T]) E {
	return ExpectError(r, "called `UnwrapError` on an `Ok` value")
}

// ExpectError is UnwrapError with a caller supplied message.
func ExpectError[E, T any](r result.Result[E, T], message string) E {
	return result.Match(r,
		pass[E],
		func(v T) E { panic(rop.NewPanic(message, v)) })
}

// UnwrapSome returns the value of o and panics with a
// *rop.PanicError[rop.Unit] when there is none.
func UnwrapSome[T any](o option.Option[T]) T {
	return ExpectSome(o, "called `UnwrapSome` on a `None` value")
}

// ExpectSome is UnwrapSome with a caller supplied message.
func ExpectSome[T any](o option.Option[T], message string) T {
	return option.Match(o,
		func() T { panic(rop.NewPanicMessage(message, rop.Void)) },
		pass[T])
}

// UnwrapRes returns the Ok value of r and panics with a
// *rop.PanicError[result.RefErr[K]] otherwise.
func UnwrapRes[K rop.Kind, T any](r result.Res[K, T]) T {
	var zero T
	ok, refErr, isOk := r.Split(zero, result.RefErr[K]{})
	if !isOk {
		panic(rop.NewPanicMessage(
			"Expected Ok, called `Unwrap` on an Result with an Err: ["+refErr.String()+"]", refErr))
	}
	return ok
}

// UnwrapResError returns the error of r and panics with a
// *rop.PanicError[T] carrying the Ok value otherwise.
func UnwrapResError[K rop.Kind, T any](r result.Res[K, T]) result.RefErr[K] {
	var zero T
	ok, refErr, isOk := r.Split(zero, result.RefErr[K]{})
	if isOk {
		panic(rop.NewPanicMessage(
			"Expected Err, called `Unwrap` on an Result with an Ok: ["+eq.Sprint(ok)+"]", ok))
	}
	return refErr
}

func pass[T any](v T) T {
	return v
}
