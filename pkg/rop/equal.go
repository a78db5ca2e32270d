package rop

import "github.com/ib-77/roptypes/internal/eq"

// Equal compares two payloads the way the sum types compare theirs: an
// Equal(T) bool method wins, then == for comparable values, then deep equality.
func Equal[T any](a, b T) bool {
	return eq.Equal(a, b)
}

// Hash returns the hash code the sum types use for a payload. A HashCode
// method wins. Nil references hash to 0.
func Hash[T any](v T) uint64 {
	return eq.Hash(v)
}
