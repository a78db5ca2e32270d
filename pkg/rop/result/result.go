package result

import (
	"github.com/ib-77/roptypes/internal/eq"
	"github.com/ib-77/roptypes/pkg/rop"
	"github.com/ib-77/roptypes/pkg/rop/option"
)

const uninitializedMessage = "Result is uninitialized. You cannot obtain the Err value."

type variant uint8

const (
	// the zero value is Err, reading its payload checks initialized
	variantErr variant = iota
	variantOk
)

// Result is either Ok(T) or Err(E).
//
// The zero value reports IsErr, but it carries no error: any operation that
// needs the Err payload of a zero Result panics with a *rop.PanicError whose
// cause is rop.ErrUninitialized. Ok paths never touch the Err payload, so
// chains of explicitly constructed Results are not affected.
type Result[E, T any] struct {
	err         E
	ok          T
	variant     variant
	initialized bool
}

func Ok[E, T any](value T) Result[E, T] {
	return Result[E, T]{ok: value, variant: variantOk, initialized: true}
}

func Err[E, T any](err E) Result[E, T] {
	return Result[E, T]{err: err, variant: variantErr, initialized: true}
}

func (r Result[E, T]) errValue() E {
	if !r.initialized {
		panic(rop.NewPanicWithCause(uninitializedMessage, r.err, rop.ErrUninitialized))
	}
	return r.err
}

func (r Result[E, T]) IsOk() bool {
	return r.variant == variantOk
}

func (r Result[E, T]) IsErr() bool {
	return r.variant == variantErr
}

// IsInitialized reports whether r was built with Ok or Err.
func (r Result[E, T]) IsInitialized() bool {
	return r.initialized
}

// Discriminant returns 0 for Err and 1 for Ok.
func (r Result[E, T]) Discriminant() uint8 {
	return uint8(r.variant)
}

// Ok converts r to an Option of its Ok value, discarding the error.
func (r Result[E, T]) Ok() option.Option[T] {
	if r.IsOk() {
		return option.Some(r.ok)
	}
	return option.None[T]()
}

// Err converts r to an Option of its Err value, discarding the Ok value.
func (r Result[E, T]) Err() option.Option[E] {
	if r.IsErr() {
		return option.Some(r.errValue())
	}
	return option.None[E]()
}

// Options returns both sides as Options; exactly one of them is Some.
func (r Result[E, T]) Options() (option.Option[E], option.Option[T]) {
	if r.IsOk() {
		return option.None[E](), option.Some(r.ok)
	}
	return option.Some(r.errValue()), option.None[T]()
}

// Split deconstructs r for imperative code. It returns the Ok value or
// okDefault, the Err value or errDefault, and whether r is Ok.
func (r Result[E, T]) Split(okDefault T, errDefault E) (T, E, bool) {
	if r.IsOk() {
		return r.ok, errDefault, true
	}
	return okDefault, r.errValue(), false
}

// UnwrapOr returns the Ok value or def. It never reads the Err payload.
func (r Result[E, T]) UnwrapOr(def T) T {
	if r.IsOk() {
		return r.ok
	}
	return def
}

// UnwrapOrElse returns the Ok value or computes one from the error.
func (r Result[E, T]) UnwrapOrElse(op func(E) T) T {
	if r.IsOk() {
		return r.ok
	}
	return op(r.errValue())
}

func (r Result[E, T]) For(onErr func(E), onOk func(T)) {
	if r.IsOk() {
		onOk(r.ok)
		return
	}
	onErr(r.errValue())
}

// Equal compares variant and payload. Two zero Results are equal, and a zero
// Result is never equal to an explicitly constructed one.
func (r Result[E, T]) Equal(other Result[E, T]) bool {
	if r.initialized != other.initialized || r.variant != other.variant {
		return false
	}
	if !r.initialized {
		return true
	}
	if r.IsOk() {
		return eq.Equal(r.ok, other.ok)
	}
	return eq.Equal(r.err, other.err)
}

// HashCode is the hash code of the active payload, 0 for a zero Result.
func (r Result[E, T]) HashCode() uint64 {
	switch {
	case !r.initialized:
		return 0
	case r.IsOk():
		return eq.Hash(r.ok)
	default:
		return eq.Hash(r.err)
	}
}

func (r Result[E, T]) String() string {
	if r.IsOk() {
		return eq.Sprint(r.ok)
	}
	return eq.Sprint(r.err)
}

// Match calls onOk with the Ok value or onErr with the Err value.
func Match[E, T, U any](r Result[E, T], onErr func(E) U, onOk func(T) U) U {
	if r.IsOk() {
		return onOk(r.ok)
	}
	return onErr(r.errValue())
}

// Map maps whichever side is active.
func Map[E, T, F, U any](r Result[E, T], selectErr func(E) F, selectOk func(T) U) Result[F, U] {
	if r.IsOk() {
		return Ok[F](selectOk(r.ok))
	}
	return Err[F, U](selectErr(r.errValue()))
}

// MapOk maps an Ok value, leaving an Err untouched.
func MapOk[E, T, U any](r Result[E, T], mapResultTo func(T) U) Result[E, U] {
	if r.IsOk() {
		return Ok[E](mapResultTo(r.ok))
	}
	return Err[E, U](r.errValue())
}

// MapErr maps an Err value, leaving an Ok untouched.
func MapErr[E, T, F any](r Result[E, T], handleError func(E) F) Result[F, T] {
	if r.IsOk() {
		return Ok[F](r.ok)
	}
	return Err[F, T](handleError(r.errValue()))
}

// And returns next if r is Ok, otherwise the error of r.
func And[E, T, U any](r Result[E, T], next Result[E, U]) Result[E, U] {
	if r.IsOk() {
		return next
	}
	return Err[E, U](r.errValue())
}

// AndThen calls op with the Ok value, otherwise propagates the error of r.
func AndThen[E, T, U any](r Result[E, T], op func(T) Result[E, U]) Result[E, U] {
	if r.IsOk() {
		return op(r.ok)
	}
	return Err[E, U](r.errValue())
}

// Or returns r if it is Ok, otherwise other. The error of r is not read.
func Or[E, T, F any](r Result[E, T], other Result[F, T]) Result[F, T] {
	if r.IsOk() {
		return Ok[F](r.ok)
	}
	return other
}

// OrElse returns r if it is Ok, otherwise calls op with the error.
func OrElse[E, T, F any](r Result[E, T], op func(E) Result[F, T]) Result[F, T] {
	if r.IsOk() {
		return Ok[F](r.ok)
	}
	return op(r.errValue())
}

// JoinOk pairs two Ok values. When either is Err, the first error wins.
func JoinOk[E, T, U any](r Result[E, T], second Result[E, U]) Result[E, rop.Pair[T, U]] {
	return MapOk2(r, second, rop.MakePair[T, U])
}

// AndJoinOk is JoinOk with a lazily computed second Result, which is not
// computed when r is Err.
func AndJoinOk[E, T, U any](r Result[E, T], second func() Result[E, U]) Result[E, rop.Pair[T, U]] {
	if !r.IsOk() {
		return Err[E, rop.Pair[T, U]](r.errValue())
	}
	return JoinOk(r, second())
}

// MapOk2 combines two Ok values with mapping. When either is Err, the first
// error wins.
func MapOk2[E, T, U, V any](r Result[E, T], second Result[E, U], mapping func(T, U) V) Result[E, V] {
	if !r.IsOk() {
		return Err[E, V](r.errValue())
	}
	if !second.IsOk() {
		return Err[E, V](second.errValue())
	}
	return Ok[E](mapping(r.ok, second.ok))
}

// MapOrElse unpacks r with mapResultTo, or with fallback for an error.
func MapOrElse[E, T, U any](r Result[E, T], fallback func(E) U, mapResultTo func(T) U) U {
	return Match(r, fallback, mapResultTo)
}

// UnwrapOrDefault returns the Ok value or the zero value of T.
func UnwrapOrDefault[E, T any](r Result[E, T]) T {
	var zero T
	return r.UnwrapOr(zero)
}

// ApplyCompose calls f1 with value and feeds an Ok outcome to f2.
func ApplyCompose[A, B, T, E any](f1 func(A) Result[E, B], f2 func(B) Result[E, T], value A) Result[E, T] {
	return AndThen(f1(value), f2)
}
