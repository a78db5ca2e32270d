package rop

// Unit is a type with a single value. It marks the successful completion of
// an operation that has nothing to return.
type Unit struct{}

// Void is the Unit value.
var Void = Unit{}

func (Unit) Equal(Unit) bool { return true }

func (Unit) Compare(Unit) int { return 0 }

func (Unit) HashCode() uint64 { return 0 }

func (Unit) String() string { return "void" }
