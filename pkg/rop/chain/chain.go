package chain

import (
	"context"

	"github.com/ib-77/roptypes/pkg/rop/result"
	"github.com/ib-77/roptypes/pkg/rop/solo"
)

// Chain wraps a result.Result[error, T] with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result result.Result[error, T]
}

// Start creates a new chain from a result
func Start[T any](ctx context.Context, r result.Result[error, T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: r,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, solo.Succeed(value))
}

// FromTuple creates a new chain from a Go (value, error) pair
func FromTuple[T any](ctx context.Context, value T, err error) *Chain[T] {
	return Start(ctx, solo.FromTuple(value, err))
}

// Result returns the underlying result
func (c *Chain[T]) Result() result.Result[error, T] {
	return c.result
}

// Then chains a function that returns result.Result[error, U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) result.Result[error, U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Validate fails the chain with errMsg when validate rejects the value
func (c *Chain[T]) Validate(validate func(ctx context.Context, in T) (bool, string)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.AndValidate(c.ctx, c.result, validate),
	}
}

// ValidateAll runs the validators and joins their errors, see solo.ValidateAll
func (c *Chain[T]) ValidateAll(breakOnError bool,
	validators ...func(ctx context.Context, in result.Result[error, T]) result.Result[error, T]) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.ValidateAll(c.ctx, c.result, breakOnError, validators...),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, r result.Result[error, T]) {
				if v, ok := r.Ok().Get(); ok {
					onSuccess(ctx, v)
				}
			}),
	}
}

// RepeatUntil applies onSuccess at least once, then again for as long as the
// chain succeeds and until reports true for the new value
func (c *Chain[T]) RepeatUntil(onSuccess func(context.Context, T) result.Result[error, T],
	until func(context.Context, T) bool) *Chain[T] {

	for {
		v, ok := c.result.Ok().Get()
		if !ok {
			return c
		}
		c = Then(c, onSuccess)
		if v, ok = c.result.Ok().Get(); !ok || !until(c.ctx, v) {
			return c
		}
	}
}

// While applies onSuccess as long as the chain succeeds and while reports true
func (c *Chain[T]) While(onSuccess func(context.Context, T) result.Result[error, T],
	while func(context.Context, T) bool) *Chain[T] {

	for {
		v, ok := c.result.Ok().Get()
		if !ok || !while(c.ctx, v) {
			return c
		}
		c = Then(c, onSuccess)
	}
}

// Or returns the first successful chain. Without one it prefers a
// cancellation over a failure, and keeps the first of each.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	var canceled, failed *Chain[T]

	for _, ch := range append([]*Chain[T]{c}, alternatives...) {
		if ch.result.IsOk() {
			return ch
		}
		if solo.IsCancellation(errOf(ch.result)) {
			if canceled == nil {
				canceled = ch
			}
		} else if failed == nil {
			failed = ch
		}
	}

	if canceled != nil {
		return canceled
	}
	return failed
}

// And returns the first failed chain, or the last one when all succeed
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	last := c
	for _, ch := range append([]*Chain[T]{c}, required...) {
		if ch.result.IsErr() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}

func errOf[T any](r result.Result[error, T]) error {
	err, _ := r.Err().Get()
	return err
}
