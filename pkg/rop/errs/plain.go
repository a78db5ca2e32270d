package errs

import (
	"fmt"

	"github.com/ib-77/roptypes/internal/eq"
	"github.com/ib-77/roptypes/pkg/rop/option"
)

// Plain is an error without a kind. It may carry a source and a native cause.
type Plain struct {
	base
	cause option.Option[error]
}

func NewPlain(message string, opts ...Opt) Plain {
	o := apply(opts)
	return Plain{base: newBase(message, o), cause: o.cause}
}

// FromError wraps a non-nil native error, keeping its text as the message.
func FromError(err error, opts ...Opt) Plain {
	return NewPlain(err.Error(), append([]Opt{WithCause(err)}, opts...)...)
}

func (e Plain) Cause() option.Option[error] {
	return e.cause
}

// BaseCause is the innermost error of the native cause chain.
func (e Plain) BaseCause() option.Option[error] {
	return baseCause(e.cause)
}

func (e Plain) Unwrap() []error {
	return e.unwrap(e.cause)
}

func (e Plain) Equal(other Plain) bool {
	return e.base.equal(other.base) && e.cause.Equal(other.cause)
}

func (e Plain) HashCode() uint64 {
	return eq.Combine(e.base.hashCode(), e.cause.HashCode())
}

func (e Plain) Format(s fmt.State, verb rune) {
	format(s, verb, e, "", e.cause)
}
