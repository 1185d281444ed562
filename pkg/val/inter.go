package val

// Getter is implemented by values that may or may not carry a T.
type Getter[T any] interface {
	// Get returns the carried value and true, or the zero T and false
	Get() (T, bool)
}

var (
	_ Getter[int] = Option[int]{}
	_ Getter[int] = Result[int, Unit]{}
)

// GetOr returns the value carried by g, or defaultV when there is none.
func GetOr[T any](g Getter[T], defaultV T) T {
	if v, ok := g.Get(); ok {
		return v
	}
	return defaultV
}
