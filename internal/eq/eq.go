// Package eq holds the value equality and hashing rules shared by the sum types.
//
// A payload that implements Equal(T) bool or HashCode() uint64 decides for
// itself. Otherwise comparable dynamic types use ==, non-comparable ones fall
// back to reflect.DeepEqual, and hashing goes through xxhash. Float payloads
// treat NaN as equal to NaN and hash -0 like +0.
package eq

import (
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Prime is the multiplier used when folding several hash codes together.
const Prime = 397

type hasher interface {
	HashCode() uint64
}

// IsNil reports whether v is nil or a nil pointer, slice, map, chan, func or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Equal compares two payloads of the same static type.
func Equal[T any](a, b T) bool {
	if e, ok := any(a).(interface{ Equal(T) bool }); ok {
		return e.Equal(b)
	}
	return equalAny(any(a), any(b))
}

func equalAny(a, b any) (equal bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Float32, reflect.Float64:
		return equalFloat(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	// a comparable struct may still hold an interface field with a
	// non-comparable dynamic value, == panics on those
	defer func() {
		if recover() != nil {
			equal = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}

// equalFloat is == except that NaN equals NaN, so every payload equals itself.
func equalFloat(x, y float64) bool {
	return x == y || (math.IsNaN(x) && math.IsNaN(y))
}

// Hash returns the hash code of a payload. Nil references hash to 0.
func Hash[T any](v T) uint64 {
	x := any(v)
	if IsNil(x) {
		return 0
	}
	if h, ok := x.(hasher); ok {
		return h.HashCode()
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return hashFloat(rv.Float())
	}
	return String(fmt.Sprintf("%#v", x))
}

// canonicalNaN is the hash shared by every NaN payload.
var canonicalNaN = math.Float64bits(math.NaN())

// hashFloat agrees with equalFloat: +0 and -0 hash alike, as do all NaNs.
func hashFloat(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return canonicalNaN
	}
	return math.Float64bits(f)
}

// String hashes s with xxhash.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Combine folds next into an accumulated hash code.
func Combine(acc, next uint64) uint64 {
	return acc*Prime ^ next
}

// Sprint formats a payload for messages, printing nil references as "".
func Sprint(v any) string {
	if IsNil(v) {
		return ""
	}
	return fmt.Sprint(v)
}
