package option

import (
	"github.com/ib-77/roptypes/internal/eq"
)

type variant uint8

const (
	variantNone variant = iota
	variantSome
)

// Option is either Some value or None. The zero value is None.
type Option[T any] struct {
	value   T
	variant variant
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, variant: variantSome}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p) for a non-nil pointer and None otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.variant == variantSome
}

func (o Option[T]) IsNone() bool {
	return o.variant == variantNone
}

// Discriminant returns 0 for None and 1 for Some.
func (o Option[T]) Discriminant() uint8 {
	return uint8(o.variant)
}

// Get returns the contained value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	if o.IsSome() {
		return o.value, true
	}
	var zero T
	return zero, false
}

// GetOr returns the contained value and true, or def and false.
func (o Option[T]) GetOr(def T) (T, bool) {
	if o.IsSome() {
		return o.value, true
	}
	return def, false
}

// UnwrapOr returns the contained value or def.
func (o Option[T]) UnwrapOr(def T) T {
	if o.IsSome() {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value or computes one with orElse.
func (o Option[T]) UnwrapOrElse(orElse func() T) T {
	if o.IsSome() {
		return o.value
	}
	return orElse()
}

// For calls onSome with the value, or onNone when there is none.
func (o Option[T]) For(onNone func(), onSome func(T)) {
	if o.IsSome() {
		onSome(o.value)
		return
	}
	onNone()
}

// Equal reports whether both are None, or both are Some with equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.variant != other.variant {
		return false
	}
	if o.IsNone() {
		return true
	}
	return eq.Equal(o.value, other.value)
}

// HashCode is 0 for None and the hash code of the value for Some.
func (o Option[T]) HashCode() uint64 {
	if o.IsNone() {
		return 0
	}
	return eq.Hash(o.value)
}

// String prints the value, or "" for None.
func (o Option[T]) String() string {
	if o.IsNone() {
		return ""
	}
	return eq.Sprint(o.value)
}

// Match calls onSome with the value of o, or onNone when there is none.
func Match[T, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.IsNone() {
		return onNone()
	}
	return onSome(o.value)
}

// Map applies selector to the value of a Some. None maps to None.
func Map[T, U any](o Option[T], selector func(T) U) Option[U] {
	if o.IsSome() {
		return Some(selector(o.value))
	}
	return None[U]()
}

// MapOr applies mapValueTo to the value of a Some, or returns def.
func MapOr[T, U any](o Option[T], def U, mapValueTo func(T) U) U {
	if o.IsSome() {
		return mapValueTo(o.value)
	}
	return def
}
