package errs

import (
	"fmt"

	"github.com/ib-77/roptypes/internal/eq"
	"github.com/ib-77/roptypes/pkg/rop"
	"github.com/ib-77/roptypes/pkg/rop/option"
)

// Err is the value form of a kinded error. Two Errs are equal when message,
// source and kind are.
type Err[K rop.Kind] struct {
	base
	kind K
}

// Make builds an Err. Without WithMessage the message is the decimal value of kind.
func Make[K rop.Kind](kind K, opts ...Opt) Err[K] {
	return Err[K]{base: newBase(rop.FormatKind(kind), apply(opts)), kind: kind}
}

func (e Err[K]) Kind() K {
	return e.kind
}

// KindName prints the kind, through its String method when it has one.
func (e Err[K]) KindName() string {
	return fmt.Sprint(e.kind)
}

func (e Err[K]) Unwrap() []error {
	return e.unwrap(option.None[error]())
}

func (e Err[K]) Equal(other Err[K]) bool {
	return e.kind == other.kind && e.base.equal(other.base)
}

func (e Err[K]) HashCode() uint64 {
	return eq.Combine(e.base.hashCode(), eq.Hash(e.kind))
}

func (e Err[K]) Format(s fmt.State, verb rune) {
	format(s, verb, e, e.KindName(), option.None[error]())
}

// ErrX is the value form of a kinded error that wraps a native error of type X.
type ErrX[K rop.Kind, X error] struct {
	base
	kind  K
	cause option.Option[X]
}

// MakeX builds an ErrX. Without WithMessage the message is the decimal value of kind.
func MakeX[K rop.Kind, X error](kind K, cause option.Option[X], opts ...Opt) ErrX[K, X] {
	return ErrX[K, X]{base: newBase(rop.FormatKind(kind), apply(opts)), kind: kind, cause: cause}
}

func (e ErrX[K, X]) Kind() K {
	return e.kind
}

func (e ErrX[K, X]) KindName() string {
	return fmt.Sprint(e.kind)
}

func (e ErrX[K, X]) Cause() option.Option[X] {
	return e.cause
}

func (e ErrX[K, X]) BaseCause() option.Option[error] {
	return baseCause(e.cause)
}

func (e ErrX[K, X]) Unwrap() []error {
	return e.unwrap(widen(e.cause))
}

func (e ErrX[K, X]) Equal(other ErrX[K, X]) bool {
	return e.kind == other.kind && e.base.equal(other.base) && e.cause.Equal(other.cause)
}

func (e ErrX[K, X]) HashCode() uint64 {
	h := eq.Combine(e.base.hashCode(), eq.Hash(e.kind))
	return eq.Combine(h, e.cause.HashCode())
}

func (e ErrX[K, X]) Format(s fmt.State, verb rune) {
	format(s, verb, e, e.KindName(), widen(e.cause))
}

// Typed is the pointer form of a kinded error. It compares by identity.
type Typed[K rop.Kind] struct {
	base
	kind K
}

// New builds a Typed error. Without WithMessage the message is the decimal value of kind.
func New[K rop.Kind](kind K, opts ...Opt) *Typed[K] {
	return &Typed[K]{base: newBase(rop.FormatKind(kind), apply(opts)), kind: kind}
}

func (e *Typed[K]) Kind() K {
	return e.kind
}

func (e *Typed[K]) KindName() string {
	return fmt.Sprint(e.kind)
}

func (e *Typed[K]) Unwrap() []error {
	return e.unwrap(option.None[error]())
}

func (e *Typed[K]) Format(s fmt.State, verb rune) {
	format(s, verb, e, e.KindName(), option.None[error]())
}

// TypedX is the pointer form of a kinded error that wraps a native error of type X.
type TypedX[K rop.Kind, X error] struct {
	base
	kind  K
	cause option.Option[X]
}

// NewX builds a TypedX. Without WithMessage the message is the decimal value of kind.
func NewX[K rop.Kind, X error](kind K, cause option.Option[X], opts ...Opt) *TypedX[K, X] {
	return &TypedX[K, X]{base: newBase(rop.FormatKind(kind), apply(opts)), kind: kind, cause: cause}
}

func (e *TypedX[K, X]) Kind() K {
	return e.kind
}

func (e *TypedX[K, X]) KindName() string {
	return fmt.Sprint(e.kind)
}

func (e *TypedX[K, X]) Cause() option.Option[X] {
	return e.cause
}

func (e *TypedX[K, X]) BaseCause() option.Option[error] {
	return baseCause(e.cause)
}

func (e *TypedX[K, X]) Unwrap() []error {
	return e.unwrap(widen(e.cause))
}

func (e *TypedX[K, X]) Format(s fmt.State, verb rune) {
	format(s, verb, e, e.KindName(), widen(e.cause))
}
