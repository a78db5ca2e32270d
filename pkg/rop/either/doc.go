// Package either provides a two-sided tagged union in two forms.
//
// Either[L, R] is a value type. Its zero value is a third, default state that
// holds neither side; Match panics on it with an error wrapping
// ErrDefaultValue, while MatchOption and the Map functions pass it through.
//
// Ref[L, R] is the pointer form, built with NewLeft or NewRight. It has no
// default state.
//
// Key operations:
// - Match/MatchOption/MatchRef: call the branch for the active side
// - Map/MapLeft/MapRight: bifunctor mapping of the value form
// - SelectBoth/MapLeftRef/MapRightRef: the same for the pointer form
// - ToEither: copy a Ref into the value form
package either
