// Package chain provides a fluent wrapper around result.Result[error, T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue/FromTuple: begin a chain from a result, a value or a (value, error) pair
// - Then: switch to a new result via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Validate/ValidateAll: reject values, optionally collecting every error
// - Ensure: run side effects on success without changing the result
// - RepeatUntil/While: loop a step while the chain succeeds
// - Or/And: pick among alternative or required chains
// - Finally: collapse the chain into a final value via handlers
package chain
