package solo

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/roptypes/pkg/rop/errs"
	"github.com/ib-77/roptypes/pkg/rop/result"
)

func Succeed[T any](input T) result.Result[error, T] {
	return result.Ok[error](input)
}

func Fail[T any](err error) result.Result[error, T] {
	return result.Err[error, T](err)
}

// Cancel fails with err marked as a cancellation, so IsCancellation reports
// true for it and DoubleTee, DoubleMap and Finally take their cancel branch.
func Cancel[T any](err error) result.Result[error, T] {
	if err == nil {
		return Fail[T](context.Canceled)
	}
	if IsCancellation(err) {
		return Fail[T](err)
	}
	return Fail[T](fmt.Errorf("%w: %w", context.Canceled, err))
}

// IsCancellation reports whether err comes from a canceled or expired context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// FromTuple converts a Go (value, error) pair.
func FromTuple[T any](value T, err error) result.Result[error, T] {
	if err != nil {
		return Fail[T](err)
	}
	return Succeed(value)
}

// ToTuple is the inverse of FromTuple.
func ToTuple[T any](input result.Result[error, T]) (T, error) {
	var zero T
	value, err, ok := input.Split(zero, nil)
	if ok {
		return value, nil
	}
	return zero, err
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) result.Result[error, T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input result.Result[error, T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) result.Result[error, T] {

	return result.AndThen(input, func(in T) result.Result[error, T] {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return Fail[T](errs.NewPlain(errMsg))
		}
		return Succeed(in)
	})
}

// ValidateAll runs every validator and joins the errors of those that fail.
// With breakOnError it stops at the first failure.
func ValidateAll[T any](
	ctx context.Context,
	input result.Result[error, T],
	breakOnError bool,
	inputsF ...func(ctx context.Context, in result.Result[error, T]) result.Result[error, T]) result.Result[error, T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current result.Result[error, T]) result.Result[error, T] {

			// a validator that passes its failed input through adds nothing new
			if current.IsErr() && errOf(current) != err {
				e := flatten(err)
				e = append(e, errOf(current))
				err = errors.Join(e...)
			}

			if err == nil {
				return current
			}

			return Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input result.Result[error, In],
	onSuccess func(ctx context.Context, r In) result.Result[error, Out]) result.Result[error, Out] {

	return result.AndThen(input, func(in In) result.Result[error, Out] {
		return onSuccess(ctx, in)
	})
}

func Map[In any, Out any](ctx context.Context,
	input result.Result[error, In],
	onSuccess func(ctx context.Context, r In) Out) result.Result[error, Out] {

	return result.MapOk(input, func(in In) Out {
		return onSuccess(ctx, in)
	})
}

func Tee[T any](ctx context.Context,
	input result.Result[error, T],
	onSuccess func(ctx context.Context, r result.Result[error, T])) result.Result[error, T] {

	if input.IsOk() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input result.Result[error, T],
	condition func(ctx context.Context, r result.Result[error, T]) bool,
	onSuccessAndCondition func(ctx context.Context, r result.Result[error, T])) result.Result[error, T] {

	if input.IsOk() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input result.Result[error, T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) result.Result[error, T] {

	input.For(
		func(err error) {
			if IsCancellation(err) {
				onCancel(ctx, err)
				return
			}
			onError(ctx, err)
		},
		func(v T) { onSuccess(ctx, v) })

	return input
}

// DoubleMap maps a success. For a failure the matching handler runs for its
// side effect and the error is passed on.
func DoubleMap[In any, Out any](ctx context.Context, input result.Result[error, In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) result.Result[error, Out] {

	return result.Match(input,
		func(err error) result.Result[error, Out] {
			if IsCancellation(err) {
				onCancel(ctx, err)
			} else {
				onError(ctx, err)
			}
			return Fail[Out](err)
		},
		func(in In) result.Result[error, Out] {
			return Succeed(onSuccess(ctx, in))
		})
}

func Try[In any, Out any](ctx context.Context, input result.Result[error, In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) result.Result[error, Out] {

	return result.AndThen(input, func(in In) result.Result[error, Out] {
		out, err := onTryExecute(ctx, in)
		return FromTuple(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input result.Result[error, T],
	maybeErr func(ctx context.Context, in T) error) result.Result[error, T] {

	return result.AndThen(input, func(in T) result.Result[error, T] {
		if err := maybeErr(ctx, in); err != nil {
			return Fail[T](err)
		}
		return input
	})
}

func Finally[In, Out any](ctx context.Context, input result.Result[error, In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	return result.Match(input,
		func(err error) Out {
			if IsCancellation(err) {
				return onCancel(ctx, err)
			}
			return onError(ctx, err)
		},
		func(in In) Out {
			return onSuccess(ctx, in)
		})
}

// Join feeds input through inputsF in order, merging each outcome with concat.
// It stops when ctx is done, and at the first failure when breakOnError is set.
func Join[T any](ctx context.Context,
	input result.Result[error, T],
	breakOnError bool,
	concat func(ctx context.Context, current result.Result[error, T]) result.Result[error, T],
	inputsF ...func(ctx context.Context, in result.Result[error, T]) result.Result[error, T]) result.Result[error, T] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsOk() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsErr() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}

func errOf[T any](r result.Result[error, T]) error {
	err, _ := r.Err().Get()
	return err
}

// flatten lists the errors joined into err.
func flatten(err error) []error {
	if err == nil {
		return []error{}
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}

	return []error{err}
}
