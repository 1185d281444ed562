// Package val contains the value types shared by the solo and tiny packages:
// Option[T], Result[T, E], the fixed-arity groupings T1..T12 and their
// constructors.
//
// Highlights:
// - Some/None/FromBool: construct Option[T]
// - Ok/Err/Succeed: construct Result[T, E]; Swap exchanges the branches
// - NewT1..NewT12: construct groupings; ToSingle/ToPair/ToTriple replicate a value
//
// All values are immutable after construction and safe to share between
// goroutines.
package val
