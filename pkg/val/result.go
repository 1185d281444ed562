package val

import "fmt"

// Unit is the informationless type. It is the failure type of results built
// with Succeed.
type Unit = struct{}

// Result holds either a success value of type T or a failure value of type E.
// The zero Result is a failure holding the zero E.
type Result[T, E any] struct {
	value T
	err   E
	isOk  bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		isOk:  true,
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:  err,
		isOk: false,
	}
}

// Succeed is Ok for call sites that only care about the success type.
func Succeed[T any](value T) Result[T, Unit] {
	return Ok[T, Unit](value)
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

func (r Result[T, E]) Ok() Option[T] {
	return FromBool(r.isOk, r.value)
}

func (r Result[T, E]) Err() Option[E] {
	return FromBool(!r.isOk, r.err)
}

func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.isOk
}

func (r Result[T, E]) UnwrapOr(defaultV T) T {
	if r.isOk {
		return r.value
	}
	return defaultV
}

// Swap turns Ok(v) into Err(v) and Err(e) into Ok(e).
func (r Result[T, E]) Swap() Result[E, T] {
	if r.isOk {
		return Err[E, T](r.value)
	}
	return Ok[E, T](r.err)
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
