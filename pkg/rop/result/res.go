package result

import (
	"fmt"

	"github.com/ib-77/roptypes/pkg/rop"
)

type resState uint8

const (
	resNotInitialized resState = iota
	resSuccess
	resError
)

// RefErr is the error side of Res: a kind and an optional message.
// It is not comparable.
type RefErr[K rop.Kind] struct {
	_    [0]func()
	Kind K
	Msg  string
}

func NewRefErr[K rop.Kind](kind K, msg string) RefErr[K] {
	return RefErr[K]{Kind: kind, Msg: msg}
}

// String prints "[kind]: msg".
func (e RefErr[K]) String() string {
	return fmt.Sprintf("[%v]: %s", e.Kind, e.Msg)
}

// Res is a Result narrowed to kinded errors, for hot paths that do not want an
// error value on the heap. It is not comparable and has no Equal or HashCode.
//
// The zero value behaves as an error with a zero RefErr.
type Res[K rop.Kind, T any] struct {
	_     [0]func()
	err   RefErr[K]
	ok    T
	state resState
}

func ResOk[K rop.Kind, T any](value T) Res[K, T] {
	return Res[K, T]{ok: value, state: resSuccess}
}

func ResErr[K rop.Kind, T any](kind K, msg string) Res[K, T] {
	return ResFail[K, T](NewRefErr(kind, msg))
}

func ResFail[K rop.Kind, T any](err RefErr[K]) Res[K, T] {
	return Res[K, T]{err: err, state: resError}
}

func (r Res[K, T]) IsOk() bool {
	return r.state == resSuccess
}

func (r Res[K, T]) IsErr() bool {
	return r.state != resSuccess
}

// Split returns the Ok value or okDefault, the error or errDefault, and
// whether r is Ok.
func (r Res[K, T]) Split(okDefault T, errDefault RefErr[K]) (T, RefErr[K], bool) {
	if r.IsOk() {
		return r.ok, errDefault, true
	}
	return okDefault, r.err, false
}

func (r Res[K, T]) UnwrapOr(def T) T {
	if r.IsOk() {
		return r.ok
	}
	return def
}

func MatchRes[K rop.Kind, T, U any](r Res[K, T], onErr func(RefErr[K]) U, onOk func(T) U) U {
	if r.IsOk() {
		return onOk(r.ok)
	}
	return onErr(r.err)
}

// MapRes binds both sides to a new Res.
func MapRes[K, K2 rop.Kind, T, U any](r Res[K, T],
	onErr func(RefErr[K]) Res[K2, U], onOk func(T) Res[K2, U]) Res[K2, U] {
	return MatchRes(r, onErr, onOk)
}

func MapResOk[K rop.Kind, T, U any](r Res[K, T], mapOk func(T) U) Res[K, U] {
	if r.IsOk() {
		return ResOk[K](mapOk(r.ok))
	}
	return Res[K, U]{err: r.err, state: r.state}
}

func MapResErr[K, K2 rop.Kind, T any](r Res[K, T], mapErr func(RefErr[K]) RefErr[K2]) Res[K2, T] {
	if r.IsOk() {
		return ResOk[K2](r.ok)
	}
	return ResFail[K2, T](mapErr(r.err))
}

// BindRes calls binder with the Ok value, otherwise propagates the error.
func BindRes[K rop.Kind, T, U any](r Res[K, T], binder func(T) Res[K, U]) Res[K, U] {
	if r.IsOk() {
		return binder(r.ok)
	}
	return ResFail[K, U](r.err)
}

func ResAndThen[K rop.Kind, T, U any](r Res[K, T], onOk func(T) Res[K, U]) Res[K, U] {
	return BindRes(r, onOk)
}

// ResAndJoinOk pairs the Ok value of r with the Ok value of second, which is
// only called when r is Ok. The first error wins.
func ResAndJoinOk[K rop.Kind, T, U any](r Res[K, T], second func() Res[K, U]) Res[K, rop.Pair[T, U]] {
	if !r.IsOk() {
		return ResFail[K, rop.Pair[T, U]](r.err)
	}
	s := second()
	if !s.IsOk() {
		return ResFail[K, rop.Pair[T, U]](s.err)
	}
	return ResOk[K](rop.MakePair(r.ok, s.ok))
}
