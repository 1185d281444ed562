package solo

import "github.com/ib-77/valops/pkg/val"

// Tap calls observe once with a copy of input and returns input unchanged.
func Tap[T any](input T, observe func(in T)) T {
	observe(input)
	return input
}

// TapResult is Tap for observers that return something; the return value is
// dropped.
func TapResult[T, R any](input T, observe func(in T) R) T {
	_ = observe(input)
	return input
}

func Chain[T, R any](input T, transform func(in T) R) R {
	return transform(input)
}

func Map[In, Out, E any](input val.Result[In, E], onOk func(r In) Out) val.Result[Out, E] {
	if v, ok := input.Get(); ok {
		return val.Ok[Out, E](onOk(v))
	}
	e, _ := input.Err().Get()
	return val.Err[Out, E](e)
}

func MapErr[T, In, Out any](input val.Result[T, In], onErr func(e In) Out) val.Result[T, Out] {
	if v, ok := input.Get(); ok {
		return val.Ok[T, Out](v)
	}
	e, _ := input.Err().Get()
	return val.Err[T, Out](onErr(e))
}

// Switch moves an ok Result[In, E] onto the track chosen by onOk. Failures
// pass through untouched.
func Switch[In, Out, E any](input val.Result[In, E], onOk func(r In) val.Result[Out, E]) val.Result[Out, E] {
	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	e, _ := input.Err().Get()
	return val.Err[Out, E](e)
}

func DoubleTee[T, E any](input val.Result[T, E],
	onOk func(r T),
	onErr func(e E)) val.Result[T, E] {

	if v, ok := input.Get(); ok {
		if onOk != nil {
			onOk(v)
		}
	} else if onErr != nil {
		e, _ := input.Err().Get()
		onErr(e)
	}

	return input
}

func Finally[T, E, Out any](input val.Result[T, E],
	onOk func(r T) Out,
	onErr func(e E) Out) Out {

	if v, ok := input.Get(); ok {
		return onOk(v)
	}
	e, _ := input.Err().Get()
	return onErr(e)
}

// Try is meant to wrap calls directly: solo.Try(strconv.Atoi(s)).
func Try[T any](value T, err error) val.Result[T, error] {
	if err != nil {
		return val.Err[T, error](err)
	}
	return val.Ok[T, error](value)
}

func MapSome[In, Out any](input val.Option[In], onSome func(in In) Out) val.Option[Out] {
	if v, ok := input.Get(); ok {
		return val.Some(onSome(v))
	}
	return val.None[Out]()
}

func OkOr[T, E any](input val.Option[T], err E) val.Result[T, E] {
	if v, ok := input.Get(); ok {
		return val.Ok[T, E](v)
	}
	return val.Err[T, E](err)
}
