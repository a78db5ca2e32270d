package either

import (
	"errors"

	"github.com/ib-77/roptypes/internal/eq"
	"github.com/ib-77/roptypes/pkg/rop/option"
)

// ErrDefaultValue is wrapped by the error Match panics with when it is called on
// a zero-value Either, which holds neither a Left nor a Right value.
var ErrDefaultValue = errors.New("either is default value")

var errMatchDefault error = &defaultError{
	msg: "cannot perform Match, the Either is initialized as default, it has neither a Left or a Right value",
}

type status uint8

const (
	statusDefault status = iota
	statusLeft
	statusRight
)

// Either holds exactly one of a Left or a Right value. The zero value is a
// third, default state: it is neither, and Match panics on it.
type Either[L, R any] struct {
	left   L
	right  R
	status status
}

func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value, status: statusLeft}
}

func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, status: statusRight}
}

func (e Either[L, R]) IsLeft() bool {
	return e.status == statusLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.status == statusRight
}

// IsDefault reports whether e is the zero value.
func (e Either[L, R]) IsDefault() bool {
	return e.status == statusDefault
}

// Discriminant returns 0 for the default state, 1 for Left and 2 for Right.
func (e Either[L, R]) Discriminant() uint8 {
	return uint8(e.status)
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if e.IsLeft() {
		return e.left, true
	}
	var zero L
	return zero, false
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.IsRight() {
		return e.right, true
	}
	var zero R
	return zero, false
}

// Equal reports whether both hold the same side with equal values. Two
// default values are equal.
func (e Either[L, R]) Equal(other Either[L, R]) bool {
	if e.status != other.status {
		return false
	}
	switch e.status {
	case statusLeft:
		return eq.Equal(e.left, other.left)
	case statusRight:
		return eq.Equal(e.right, other.right)
	default:
		return true
	}
}

// HashCode is the hash code of the active value, 0 for the default state.
func (e Either[L, R]) HashCode() uint64 {
	switch e.status {
	case statusLeft:
		return eq.Hash(e.left)
	case statusRight:
		return eq.Hash(e.right)
	default:
		return 0
	}
}

func (e Either[L, R]) String() string {
	switch e.status {
	case statusLeft:
		return eq.Sprint(e.left)
	case statusRight:
		return eq.Sprint(e.right)
	default:
		return ""
	}
}

// Match calls onLeft or onRight with the active value.
// It panics with an error wrapping ErrDefaultValue when e is the zero value.
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	switch e.status {
	case statusRight:
		return onRight(e.right)
	case statusLeft:
		return onLeft(e.left)
	default:
		panic(errMatchDefault)
	}
}

// MatchOption is the non-panicking Match: the default state yields None.
func MatchOption[L, R, T any](e Either[L, R],
	onLeft func(L) option.Option[T], onRight func(R) option.Option[T]) option.Option[T] {
	switch e.status {
	case statusRight:
		return onRight(e.right)
	case statusLeft:
		return onLeft(e.left)
	default:
		return option.None[T]()
	}
}

// Map applies selectLeft or selectRight to the active value. The default
// state maps to the default state without calling either selector.
func Map[L, R, L2, R2 any](e Either[L, R], selectLeft func(L) L2, selectRight func(R) R2) Either[L2, R2] {
	switch e.status {
	case statusRight:
		return Right[L2](selectRight(e.right))
	case statusLeft:
		return Left[L2, R2](selectLeft(e.left))
	default:
		return Either[L2, R2]{}
	}
}

// MapLeft maps the Left value, leaving a Right untouched.
func MapLeft[L, R, L2 any](e Either[L, R], selector func(L) L2) Either[L2, R] {
	return Map(e, selector, identity[R])
}

// MapRight maps the Right value, leaving a Left untouched.
func MapRight[L, R, R2 any](e Either[L, R], selector func(R) R2) Either[L, R2] {
	return Map(e, identity[L], selector)
}

func identity[T any](v T) T {
	return v
}

type defaultError struct {
	msg string
}

func (e *defaultError) Error() string {
	return e.msg
}

func (e *defaultError) Unwrap() error {
	return ErrDefaultValue
}
