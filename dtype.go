package dtype

import (
	"github.com/hupe1980/dtype/bigcomplex"
)

// Info is the non-generic facet of a Type descriptor. It is what the
// registry stores and what capability-driven callers inspect before
// committing to a concrete sample type.
type Info interface {
	// Name returns the registry name of the sample type (e.g. "uint12").
	Name() string

	// HasInt64 reports whether values of the type can be represented as a
	// 64-bit signed integer for conversion purposes.
	HasInt64() bool

	// HasFloat64 reports whether values of the type can be represented as a
	// 64-bit float for conversion purposes.
	HasFloat64() bool
}

// Type describes a concrete numeric sample representation T.
//
// The fixed-width accessors (Int64, Float64, SetInt64, SetFloat64) are only
// meaningful when the corresponding capability predicate returns true; Cast
// never calls them otherwise. Implementations still provide best-effort
// behavior for direct callers.
//
// Stores into bounded types saturate to the type's bounds. Floating values
// stored into integer types are truncated toward zero before clamping; NaN
// stores zero.
type Type[T any] interface {
	Info

	// Int64 returns the value as a 64-bit signed integer.
	Int64(v T) int64

	// Float64 returns the value as a 64-bit float.
	Float64(v T) float64

	// SetInt64 stores a 64-bit signed integer into v.
	SetInt64(v *T, val int64)

	// SetFloat64 stores a 64-bit float into v.
	SetFloat64(v *T, val float64)

	// ToBigComplex writes the value into the scratch number losslessly.
	ToBigComplex(v T, dst *bigcomplex.Number)

	// FromBigComplex stores the scratch number into v, saturating bounded
	// types.
	FromBigComplex(v *T, src *bigcomplex.Number)
}
