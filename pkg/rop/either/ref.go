package either

import (
	"github.com/ib-77/roptypes/internal/eq"
)

// Ref is the pointer form of Either. It is implemented only by *LeftRef and
// *RightRef, so a non-nil Ref always holds exactly one side and there is no
// default state to guard against.
type Ref[L, R any] interface {
	IsLeft() bool
	IsRight() bool
	HashCode() uint64
	dispatch(onLeft func(L), onRight func(R))
}

type LeftRef[L, R any] struct {
	value L
}

type RightRef[L, R any] struct {
	value R
}

func NewLeft[L, R any](value L) *LeftRef[L, R] {
	return &LeftRef[L, R]{value: value}
}

func NewRight[L, R any](value R) *RightRef[L, R] {
	return &RightRef[L, R]{value: value}
}

func (l *LeftRef[L, R]) Value() L { return l.value }

func (l *LeftRef[L, R]) IsLeft() bool  { return true }
func (l *LeftRef[L, R]) IsRight() bool { return false }

func (l *LeftRef[L, R]) dispatch(onLeft func(L), _ func(R)) {
	onLeft(l.value)
}

// Equal reports whether other is the same pointer or holds an equal value.
func (l *LeftRef[L, R]) Equal(other *LeftRef[L, R]) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	return eq.Equal(l.value, other.value)
}

func (l *LeftRef[L, R]) HashCode() uint64 {
	return eq.Hash(l.value)
}

func (l *LeftRef[L, R]) String() string {
	return eq.Sprint(l.value)
}

func (r *RightRef[L, R]) Value() R { return r.value }

func (r *RightRef[L, R]) IsLeft() bool  { return false }
func (r *RightRef[L, R]) IsRight() bool { return true }

func (r *RightRef[L, R]) dispatch(_ func(L), onRight func(R)) {
	onRight(r.value)
}

// Equal reports whether other is the same pointer or holds an equal value.
func (r *RightRef[L, R]) Equal(other *RightRef[L, R]) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return eq.Equal(r.value, other.value)
}

func (r *RightRef[L, R]) HashCode() uint64 {
	return eq.Hash(r.value)
}

func (r *RightRef[L, R]) String() string {
	return eq.Sprint(r.value)
}

// MatchRef calls onLeft or onRight with the value held by e.
func MatchRef[L, R, T any](e Ref[L, R], onLeft func(L) T, onRight func(R) T) T {
	var out T
	e.dispatch(
		func(v L) { out = onLeft(v) },
		func(v R) { out = onRight(v) },
	)
	return out
}

// SelectBoth maps the held value with the selector for its side and keeps the side.
func SelectBoth[L, R, L2, R2 any](e Ref[L, R], selectLeft func(L) L2, selectRight func(R) R2) Ref[L2, R2] {
	return MatchRef(e,
		func(v L) Ref[L2, R2] { return NewLeft[L2, R2](selectLeft(v)) },
		func(v R) Ref[L2, R2] { return NewRight[L2](selectRight(v)) },
	)
}

func MapLeftRef[L, R, L2 any](e Ref[L, R], selector func(L) L2) Ref[L2, R] {
	return SelectBoth(e, selector, identity[R])
}

func MapRightRef[L, R, R2 any](e Ref[L, R], selector func(R) R2) Ref[L, R2] {
	return SelectBoth(e, identity[L], selector)
}

// ToEither copies the held value into the value form.
func ToEither[L, R any](e Ref[L, R]) Either[L, R] {
	return MatchRef(e, Left[L, R], Right[L, R])
}
