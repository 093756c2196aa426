// Package bigcomplex implements the arbitrary-precision complex number used
// as the universal conversion intermediate.
//
// A Number is a reusable, caller-owned scratch value: allocate one, pass it
// to every conversion that needs it, and the per-call allocation cost of the
// slow path disappears. The zero value is ready to use and equal to 0+0i.
package bigcomplex

import (
	"fmt"
	"math"
	"math/big"
)

// Prec is the mantissa precision of both components, in bits. 128 bits
// comfortably exceeds every fixed-width representation handled by the fast
// paths.
const Prec = 128

// Number is an arbitrary-precision complex number.
//
// A Number must not be copied by value after first use; pass *Number.
type Number struct {
	re big.Float
	im big.Float
}

// New returns a Number set to 0+0i.
func New() *Number {
	n := &Number{}
	n.ensure()
	return n
}

// ensure fixes the component precision. Needed so zero-value Numbers behave
// like New'd ones.
func (n *Number) ensure() {
	if n.re.Prec() == 0 {
		n.re.SetPrec(Prec)
	}
	if n.im.Prec() == 0 {
		n.im.SetPrec(Prec)
	}
}

// Set copies the value of other into n.
func (n *Number) Set(other *Number) {
	n.ensure()
	n.re.Set(&other.re)
	n.im.Set(&other.im)
}

// SetInt64 sets n to v+0i.
func (n *Number) SetInt64(v int64) {
	n.ensure()
	n.re.SetInt64(v)
	n.im.SetInt64(0)
}

// SetUint64 sets n to v+0i.
func (n *Number) SetUint64(v uint64) {
	n.ensure()
	n.re.SetUint64(v)
	n.im.SetInt64(0)
}

// SetFloat64 sets n to v+0i. NaN is stored as zero; infinities are kept.
func (n *Number) SetFloat64(v float64) {
	n.ensure()
	if math.IsNaN(v) {
		v = 0
	}
	n.re.SetFloat64(v)
	n.im.SetInt64(0)
}

// SetComplex128 sets n to v. NaN components are stored as zero.
func (n *Number) SetComplex128(v complex128) {
	n.ensure()
	re, im := real(v), imag(v)
	if math.IsNaN(re) {
		re = 0
	}
	if math.IsNaN(im) {
		im = 0
	}
	n.re.SetFloat64(re)
	n.im.SetFloat64(im)
}

// SetParts sets the real and imaginary components. A nil part is treated
// as zero.
func (n *Number) SetParts(re, im *big.Float) {
	n.ensure()
	if re != nil {
		n.re.Set(re)
	} else {
		n.re.SetInt64(0)
	}
	if im != nil {
		n.im.Set(im)
	} else {
		n.im.SetInt64(0)
	}
}

// Re returns the real component. The returned value aliases n.
func (n *Number) Re() *big.Float {
	n.ensure()
	return &n.re
}

// Im returns the imaginary component. The returned value aliases n.
func (n *Number) Im() *big.Float {
	n.ensure()
	return &n.im
}

// Int64 returns the real component truncated toward zero, saturated to the
// int64 range. The imaginary component is ignored.
func (n *Number) Int64() int64 {
	n.ensure()
	if n.re.IsInf() {
		if n.re.Signbit() {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	v, _ := n.re.Int64()
	return v
}

// Uint64 returns the real component truncated toward zero, saturated to the
// uint64 range. Negative values return 0. The imaginary component is
// ignored.
func (n *Number) Uint64() uint64 {
	n.ensure()
	if n.re.IsInf() {
		if n.re.Signbit() {
			return 0
		}
		return math.MaxUint64
	}

	i, _ := n.re.Int(nil)
	if i.Sign() < 0 {
		return 0
	}
	if !i.IsUint64() {
		return math.MaxUint64
	}

	return i.Uint64()
}

// Float64 returns the real component rounded to the nearest float64,
// overflowing to an infinity of matching sign. The imaginary component is
// ignored.
func (n *Number) Float64() float64 {
	n.ensure()
	v, _ := n.re.Float64()
	return v
}

// Complex128 returns the value rounded to complex128 precision.
func (n *Number) Complex128() complex128 {
	n.ensure()
	re, _ := n.re.Float64()
	im, _ := n.im.Float64()
	return complex(re, im)
}

// IsZero reports whether n equals 0+0i.
func (n *Number) IsZero() bool {
	n.ensure()
	return n.re.Sign() == 0 && n.im.Sign() == 0
}

// Equal reports whether n and other represent the same value.
func (n *Number) Equal(other *Number) bool {
	n.ensure()
	other.ensure()
	return n.re.Cmp(&other.re) == 0 && n.im.Cmp(&other.im) == 0
}

// String returns the value in "re+imi" form.
func (n *Number) String() string {
	n.ensure()
	im := n.im.Text('g', -1)
	if !n.im.Signbit() {
		im = "+" + im
	}
	return fmt.Sprintf("%s%si", n.re.Text('g', -1), im)
}
