package rop

import "github.com/ib-77/roptypes/pkg/rop/option"

// Variant is implemented by every sum type. Serialization adapters use the
// discriminant to encode which variant is active.
type Variant interface {
	// Discriminant returns the small integer tag of the active variant
	Discriminant() uint8
}

// Hashable values expose a hash code that agrees with their Equal method.
type Hashable interface {
	HashCode() uint64
}

// BaseCauser is implemented by errors that wrap a native Go error.
type BaseCauser interface {
	// BaseCause returns the innermost native error of the wrapped cause chain
	BaseCause() option.Option[error]
}

// Kind constrains error kinds to closed integer enumerations.
type Kind interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
