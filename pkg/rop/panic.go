package rop

import (
	"errors"

	"github.com/ib-77/roptypes/internal/eq"
)

// ErrUninitialized is the cause of the panic raised when the Err payload of a
// zero-value result.Result is read.
var ErrUninitialized = errors.New("result is uninitialized")

// PanicError is the value passed to panic when a sum type is used in a way
// that is only valid for another variant. Payload carries the value that was
// found instead of the expected one.
type PanicError[P any] struct {
	Payload P
	message string
	cause   error
}

// NewPanic formats "message: payload". When the payload wraps a native error
// (BaseCauser) or is an error itself, it becomes the cause of the panic.
func NewPanic[P any](message string, payload P) *PanicError[P] {
	return NewPanicWithCause(message, payload, causeOf(payload))
}

func NewPanicWithCause[P any](message string, payload P, cause error) *PanicError[P] {
	return &PanicError[P]{
		Payload: payload,
		message: message + ": " + eq.Sprint(payload),
		cause:   cause,
	}
}

// NewPanicMessage keeps message as is, for callers that place the payload in
// the text themselves. The cause is resolved as in NewPanic.
func NewPanicMessage[P any](message string, payload P) *PanicError[P] {
	return &PanicError[P]{
		Payload: payload,
		message: message,
		cause:   causeOf(payload),
	}
}

func (p *PanicError[P]) Error() string {
	return p.message
}

func (p *PanicError[P]) Unwrap() error {
	return p.cause
}

func causeOf(payload any) error {
	if eq.IsNil(payload) {
		return nil
	}
	if bc, ok := payload.(BaseCauser); ok {
		if cause, ok := bc.BaseCause().Get(); ok {
			return cause
		}
	}
	if err, ok := payload.(error); ok {
		return err
	}
	return nil
}
