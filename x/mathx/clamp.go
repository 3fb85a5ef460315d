// Package mathx holds small generic numeric helpers.
package mathx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// Fixed scales f by scale, rounds half away from zero and saturates to the
// range of T. NaN maps to zero.
func Fixed[T constraints.Signed](f, scale float64) T {
	if math.IsNaN(f) {
		return 0
	}
	lo, hi := signedRange[T]()
	return T(Clamp(math.Round(f*scale), lo, hi))
}

func signedRange[T constraints.Signed]() (float64, float64) {
	var z T
	switch any(z).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	}
	// int and int64: the largest float64 below 2^63.
	return math.MinInt64, math.Nextafter(math.MaxInt64, 0)
}
