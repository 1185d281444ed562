package val

import "fmt"

type Option[T any] struct {
	value  T
	isSome bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{
		value:  value,
		isSome: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromBool returns Some(value) when flag is set and None otherwise.
func FromBool[T any](flag bool, value T) Option[T] {
	if flag {
		return Some(value)
	}
	return None[T]()
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

func (o Option[T]) UnwrapOr(defaultV T) T {
	if o.isSome {
		return o.value
	}
	return defaultV
}

// UnwrapOrElse calls orElse only when the option is empty.
func (o Option[T]) UnwrapOrElse(orElse func() T) T {
	if o.isSome {
		return o.value
	}
	return orElse()
}

func (o Option[T]) String() string {
	if o.isSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
