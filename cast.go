package dtype

import (
	"github.com/hupe1980/dtype/bigcomplex"
	"github.com/hupe1980/dtype/internal/conv"
)

// Cast converts a value of type U into out using the cheapest fixed-width
// representation both types support. The paths are tried in order:
//
//  1. both integer: via int64
//  2. both floating: via float64
//  3. integer source, floating destination: widen int64 to float64
//  4. floating source, integer destination: truncate toward zero
//
// Exactly one path runs; the source is never mutated. When no path applies
// (complex or unbounded types on either side) out is left untouched and
// ErrUnsupportedCast is returned. Use CastWith for those types.
//
// The integer path is exact within the int64 range. The floating paths lose
// precision beyond 53 mantissa bits, which is expected. Stores into a
// destination that cannot represent the value saturate to the destination's
// bounds.
func Cast[U, V any](src Type[U], in U, dst Type[V], out *V) error {
	switch {
	case src.HasInt64() && dst.HasInt64():
		dst.SetInt64(out, src.Int64(in))
	case src.HasFloat64() && dst.HasFloat64():
		dst.SetFloat64(out, src.Float64(in))
	case src.HasInt64() && dst.HasFloat64():
		dst.SetFloat64(out, float64(src.Int64(in)))
	case src.HasFloat64() && dst.HasInt64():
		dst.SetInt64(out, conv.Int64FromFloat64(src.Float64(in)))
	default:
		return ErrUnsupportedCast
	}

	return nil
}

// CastWith is the total form of Cast: tmp is used as an arbitrary-precision
// intermediate whenever no fixed-width path exists, so the conversion always
// succeeds. A matching fixed-width path short-circuits and leaves tmp
// untouched.
//
// tmp is borrowed for the duration of the call and may be reused across any
// number of conversions; no reference to it is retained. Concurrent calls
// need disjoint tmp and out values.
func CastWith[U, V any](src Type[U], in U, dst Type[V], out *V, tmp *bigcomplex.Number) {
	if err := Cast(src, in, dst, out); err == nil {
		return
	}

	src.ToBigComplex(in, tmp)
	dst.FromBigComplex(out, tmp)
}
