// Package conv provides saturating fixed-width numeric conversions.
//
// The sample types use these helpers for every narrowing store: values
// outside the destination range clamp to the nearest bound instead of
// wrapping, floating inputs truncate toward zero, and NaN converts to zero.
package conv

import "math"

// maxUint64Float is the smallest float64 that exceeds math.MaxUint64.
// MaxUint64 itself is not exactly representable.
const maxUint64Float float64 = 1 << 64

// ClampInt64 clamps v to [lo, hi].
func ClampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Int64FromFloat64 converts f to int64, truncating toward zero. Values
// beyond the int64 range saturate; NaN converts to 0.
func Int64FromFloat64(f float64) int64 {
	if math.IsNaN(f) {
		return 0
	}
	// MaxInt64 rounds up to 2^63 as a float64, so >= is the right check.
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	if f <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(math.Trunc(f))
}

// Uint64FromFloat64 converts f to uint64, truncating toward zero. Negative
// values convert to 0, values beyond the uint64 range saturate; NaN
// converts to 0.
func Uint64FromFloat64(f float64) uint64 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= maxUint64Float {
		return math.MaxUint64
	}
	return uint64(math.Trunc(f))
}

// Uint64FromInt64 converts v to uint64, clamping negatives to 0.
func Uint64FromInt64(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

// Int64FromUint64 converts v to int64, saturating at math.MaxInt64.
func Int64FromUint64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
