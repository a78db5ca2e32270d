package rop

import "strconv"

// FormatKind returns the decimal representation of the numeric kind value.
// It is the message of a kinded error constructed without one.
func FormatKind[K Kind](kind K) string {
	if kind < 0 {
		return strconv.FormatInt(int64(kind), 10)
	}
	return strconv.FormatUint(uint64(kind), 10)
}

// Pair is the tuple produced when two Ok values are joined.
type Pair[A, B any] struct {
	First  A
	Second B
}

func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}
