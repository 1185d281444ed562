// Package tiny provides a minimal fluent Value[T] for method-style
// composition over plain values.
//
// It mirrors the solo package but reads left to right:
// - Of: wrap a value
// - Tap/Then: observe or transform without changing the type
// - Some/When: lift into an Option
// - Single/Pair/Triple: replicate into a grouping
// - Get: unwrap
//
// Go methods cannot introduce type parameters, so steps that change the
// type go through solo.Chain.
package tiny
