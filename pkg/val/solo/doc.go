// Package solo contains single-value, synchronous operations over plain
// values and the val types. None of them can fail and none keep state.
//
// Highlights:
// - Tap/TapResult: run an observer on a copy of a value and pass the value on
// - Chain: apply a transformation in left-to-right style
// - Apply1..Apply12: call a function with the members of a grouping
// - Map/MapErr/Switch: transform one branch of a Result
// - DoubleTee: branch-specific side effects
// - Finally: reduce a Result to a concrete value via ok/err handlers
// - Try: convert a (value, error) pair into Result[T, error]
// - MapSome/OkOr: transform and convert Option values
package solo
