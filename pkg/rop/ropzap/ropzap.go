package ropzap

import (
	"iter"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/roptypes/internal/eq"
	"github.com/ib-77/roptypes/pkg/rop"
	"github.com/ib-77/roptypes/pkg/rop/either"
	"github.com/ib-77/roptypes/pkg/rop/errs"
	"github.com/ib-77/roptypes/pkg/rop/option"
	"github.com/ib-77/roptypes/pkg/rop/result"
)

// Option logs o as {"variant":"none"} or {"variant":"some","value":v}.
func Option[T any](key string, o option.Option[T]) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		v, ok := o.Get()
		if !ok {
			enc.AddString("variant", "none")
			return nil
		}
		enc.AddString("variant", "some")
		return addPayload(enc, "value", v)
	}))
}

// Either logs the active side of e. A default Either is logged as
// {"variant":"default"} instead of panicking.
func Either[L, R any](key string, e either.Either[L, R]) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		if l, ok := e.GetLeft(); ok {
			enc.AddString("variant", "left")
			return addPayload(enc, "left", l)
		}
		if r, ok := e.GetRight(); ok {
			enc.AddString("variant", "right")
			return addPayload(enc, "right", r)
		}
		enc.AddString("variant", "default")
		return nil
	}))
}

// Result logs the active side of r. A zero Result is logged as
// {"variant":"uninitialized"}; its Err payload is never read.
func Result[E, T any](key string, r result.Result[E, T]) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		if !r.IsInitialized() {
			enc.AddString("variant", "uninitialized")
			return nil
		}
		if v, ok := r.Ok().Get(); ok {
			enc.AddString("variant", "ok")
			return addPayload(enc, "ok", v)
		}
		e, _ := r.Err().Get()
		enc.AddString("variant", "err")
		return addPayload(enc, "err", e)
	}))
}

// Error logs the message, kind, source chain and native root cause of err.
func Error(key string, err errs.Error) zap.Field {
	if eq.IsNil(err) {
		return zap.Skip()
	}
	return zap.Object(key, errorMarshaler{err: err})
}

type errorMarshaler struct {
	err errs.Error
}

type kindNamer interface {
	KindName() string
}

func (m errorMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	addError(enc, m.err)

	var sources []errs.Error
	for i, src := range enumerate(errs.Chain(m.err)) {
		if i > 0 {
			sources = append(sources, src)
		}
	}
	if len(sources) > 0 {
		err := enc.AddArray("sources", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
			for _, src := range sources {
				if err := ae.AppendObject(zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
					addError(enc, src)
					return nil
				})); err != nil {
					return err
				}
			}
			return nil
		}))
		if err != nil {
			return err
		}
	}

	if bc, ok := m.err.(rop.BaseCauser); ok {
		if cause, ok := bc.BaseCause().Get(); ok {
			enc.AddString("cause", cause.Error())
		}
	}
	return nil
}

func enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

func addError(enc zapcore.ObjectEncoder, err errs.Error) {
	enc.AddString("message", err.Message())
	if k, ok := err.(kindNamer); ok {
		enc.AddString("kind", k.KindName())
	}
}

func addPayload(enc zapcore.ObjectEncoder, key string, v any) error {
	if eq.IsNil(v) {
		return enc.AddReflected(key, nil)
	}
	switch x := v.(type) {
	case errs.Error:
		return enc.AddObject(key, errorMarshaler{err: x})
	case error:
		enc.AddString(key, x.Error())
		return nil
	case zapcore.ObjectMarshaler:
		return enc.AddObject(key, x)
	default:
		return enc.AddReflected(key, v)
	}
}
