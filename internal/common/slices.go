package common

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// NonZero returns the elements of s that are not the zero value, in order.
func NonZero[S ~[]E, E comparable](s S) S {
	var zero E

	out := make(S, 0, len(s))

	for _, e := range s {
		if e != zero {
			out = append(out, e)
		}
	}

	return out
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](low T, value T, high T) bool {
	return low <= value && value <= high
}
