// Package f16 implements IEEE-754 binary16 (float16) encoding/decoding.
//
// The float16 sample type stores raw binary16 bit-patterns; this package
// bridges them to float32/float64 for conversion.
package f16

import "math"

// Bits is a raw IEEE-754 binary16 bit-pattern: 1 sign bit, 5 exponent bits
// (bias 15), 10 fraction bits.
type Bits uint16

const (
	signMask Bits = 0x8000
	expMask  Bits = 0x7C00
	fracMask Bits = 0x03FF

	expBias   = 15
	fracWidth = 10

	f32ExpMask  uint32 = 0x7F800000
	f32FracMask uint32 = 0x007FFFFF
)

// Float32 converts a binary16 bit-pattern to float32. The conversion is
// exact: every binary16 value is representable in binary32.
func Float32(h Bits) float32 {
	sign := uint32(h&signMask) << 16
	exp := uint32(h&expMask) >> fracWidth
	frac := uint32(h & fracMask)

	switch exp {
	case 0:
		if frac == 0 {
			return math.Float32frombits(sign) // signed zero
		}
		// Subnormal: shift the fraction up until the leading 1 appears,
		// adjusting the exponent, then drop the now-implicit 1.
		e := int32(-14)
		m := frac
		for m&0x0400 == 0 {
			m <<= 1
			e--
		}
		m &= uint32(fracMask)
		return math.Float32frombits(sign | uint32(127+e)<<23 | m<<13)
	case 0x1F:
		if frac == 0 {
			return math.Float32frombits(sign | f32ExpMask) // infinity
		}
		return math.Float32frombits(sign | f32ExpMask | frac<<13) // NaN
	default:
		return math.Float32frombits(sign | uint32(int32(exp)-expBias+127)<<23 | frac<<13)
	}
}

// Float64 converts a binary16 bit-pattern to float64 exactly.
func Float64(h Bits) float64 {
	return float64(Float32(h))
}

// FromFloat32 converts a float32 value to a binary16 bit-pattern, rounding
// to nearest with ties to even. Values beyond the binary16 range overflow
// to infinity; values below the subnormal range underflow to zero.
func FromFloat32(f float32) Bits {
	bits := math.Float32bits(f)
	sign := Bits(bits>>16) & signMask
	exp := int32((bits & f32ExpMask) >> 23)
	frac := bits & f32FracMask

	if exp == 0xFF {
		if frac == 0 {
			return sign | expMask
		}
		// Keep a non-zero quiet payload so NaN stays NaN.
		payload := Bits(frac>>13)&fracMask | 0x0200
		return sign | expMask | payload
	}

	// Zeros, and float32 subnormals, which are far below the binary16
	// subnormal range.
	if exp == 0 {
		return sign
	}

	e16 := exp - 127 + expBias

	if e16 >= 0x1F {
		return sign | expMask
	}

	if e16 <= 0 {
		if e16 < -fracWidth {
			return sign
		}
		// Binary16 subnormal: make the implicit 1 explicit and shift the
		// 24-bit significand down to 10 bits plus the denormalization.
		mant := frac | 0x00800000
		shift := uint32(1-e16) + 13
		return sign | Bits(roundShift(mant, shift))
	}

	m := roundShift(frac, 13)
	if m == 0x0400 {
		// Rounding carried into the exponent.
		m = 0
		e16++
		if e16 >= 0x1F {
			return sign | expMask
		}
	}

	return sign | Bits(uint32(e16)<<fracWidth) | Bits(m)
}

// FromFloat64 converts a float64 value to a binary16 bit-pattern through
// float32. Double rounding can differ from a direct binary64→binary16
// rounding in rare halfway cases, which is acceptable for a storage type.
func FromFloat64(f float64) Bits {
	return FromFloat32(float32(f))
}

// roundShift shifts v right by shift bits, rounding to nearest with ties
// to even.
func roundShift(v, shift uint32) uint32 {
	m := v >> shift
	rem := v & (1<<shift - 1)
	half := uint32(1) << (shift - 1)
	if rem > half || (rem == half && m&1 == 1) {
		m++
	}
	return m
}
