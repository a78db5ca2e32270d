package errs

import (
	"errors"
	"iter"

	"github.com/ib-77/roptypes/internal/eq"
	"github.com/ib-77/roptypes/pkg/rop"
	"github.com/ib-77/roptypes/pkg/rop/option"
)

// Error is an error with a message that is always present and an optional
// Source, the error that caused it.
type Error interface {
	error
	Message() string
	Source() option.Option[Error]
}

// KindError is an Error classified by a kind from a closed enumeration.
type KindError[K rop.Kind] interface {
	Error
	Kind() K
}

// HasCause is implemented by errors that wrap a native Go error of type X.
type HasCause[X error] interface {
	rop.BaseCauser
	Cause() option.Option[X]
}

type options struct {
	message option.Option[string]
	source  option.Option[Error]
	cause   option.Option[error]
}

// Opt configures an error at construction.
type Opt func(*options)

// WithMessage replaces the message of a kinded error, which otherwise is the
// decimal value of its kind.
func WithMessage(message string) Opt {
	return func(o *options) {
		o.message = option.Some(message)
	}
}

// WithSource sets the error that caused the new one. A nil source is ignored.
func WithSource(source Error) Opt {
	return func(o *options) {
		if eq.IsNil(source) {
			o.source = option.None[Error]()
			return
		}
		o.source = option.Some(source)
	}
}

// WithCause attaches a native error to a Plain error. A nil cause is ignored.
func WithCause(cause error) Opt {
	return func(o *options) {
		if cause == nil {
			o.cause = option.None[error]()
			return
		}
		o.cause = option.Some(cause)
	}
}

func apply(opts []Opt) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// base holds what every error carries.
type base struct {
	message string
	source  option.Option[Error]
}

func newBase(fallback string, o options) base {
	return base{message: o.message.UnwrapOr(fallback), source: o.source}
}

// Error returns the message, without kind or source.
func (b base) Error() string {
	return b.message
}

func (b base) Message() string {
	return b.message
}

func (b base) Source() option.Option[Error] {
	return b.source
}

func (b base) equal(other base) bool {
	return b.message == other.message && b.source.Equal(other.source)
}

func (b base) hashCode() uint64 {
	return eq.Combine(eq.String(b.message), b.source.HashCode())
}

// unwrap lists the source and the native cause so errors.Is and errors.As
// see both.
func (b base) unwrap(cause option.Option[error]) []error {
	var out []error
	if src, ok := b.source.Get(); ok {
		out = append(out, src)
	}
	if c, ok := cause.Get(); ok {
		out = append(out, c)
	}
	return out
}

// Root walks the native wrap chain of err and returns its innermost error.
// An error that wraps several errors is followed through the first one.
func Root(err error) error {
	for err != nil {
		var next error
		switch x := err.(type) {
		case interface{ Unwrap() error }:
			next = x.Unwrap()
		case interface{ Unwrap() []error }:
			if errs := x.Unwrap(); len(errs) > 0 {
				next = errs[0]
			}
		}
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// Chain yields e followed by every error of its Source chain.
// Source chains are expected to be finite; a cycle makes the sequence endless.
func Chain(e Error) iter.Seq[Error] {
	return func(yield func(Error) bool) {
		cur := e
		for !eq.IsNil(cur) {
			if !yield(cur) {
				return
			}
			next, ok := cur.Source().Get()
			if !ok {
				return
			}
			cur = next
		}
	}
}

// As finds the first error in the chain of err that is an E.
func As[E error](err error) option.Option[E] {
	var target E
	if errors.As(err, &target) {
		return option.Some(target)
	}
	return option.None[E]()
}

func baseCause[X error](cause option.Option[X]) option.Option[error] {
	return option.Map(cause, func(x X) error { return Root(x) })
}

func widen[X error](cause option.Option[X]) option.Option[error] {
	return option.Map(cause, func(x X) error { return x })
}
