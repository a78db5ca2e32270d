// Package option provides Option[T], a value that is either Some(T) or None.
//
// The zero value is None, which carries no payload, so an Option that was
// never explicitly constructed is always safe to consume.
//
// Key operations:
// - Some/None/FromPtr: construct an Option
// - Match: call exactly one of two branches
// - Map/MapOr: transform the value when present
// - Get/GetOr/UnwrapOr/UnwrapOrElse: read the value with a fallback
// - Equal/HashCode: value semantics, None hashes to 0
package option
