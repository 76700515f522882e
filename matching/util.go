package matching

import (
	"gopkg.in/typ.v4"
)

// Min returns the smaller of two ordered values.
func Min[T typ.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two ordered values.
func Max[T typ.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
