package tiny

import (
	"github.com/ib-77/valops/pkg/val"
	"github.com/ib-77/valops/pkg/val/solo"
)

type Value[T any] struct {
	v T
}

func Of[T any](v T) Value[T] {
	return Value[T]{v: v}
}

func (c Value[T]) Get() T {
	return c.v
}

func (c Value[T]) Tap(observe func(in T)) Value[T] {
	return Value[T]{v: solo.Tap(c.v, observe)}
}

// Then replaces the wrapped value with transform's result.
func (c Value[T]) Then(transform func(in T) T) Value[T] {
	return Value[T]{v: solo.Chain(c.v, transform)}
}

func (c Value[T]) Some() val.Option[T] {
	return val.Some(c.v)
}

func (c Value[T]) When(flag bool) val.Option[T] {
	return val.FromBool(flag, c.v)
}

func (c Value[T]) Single() val.T1[T] {
	return val.ToSingle(c.v)
}

func (c Value[T]) Pair() val.T2[T, T] {
	return val.ToPair(c.v)
}

func (c Value[T]) Triple() val.T3[T, T, T] {
	return val.ToTriple(c.v)
}
