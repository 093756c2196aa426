package dtype

import (
	"github.com/hupe1980/dtype/bigcomplex"
	"github.com/hupe1980/dtype/internal/conv"
)

// Complex sample types have no fixed-width representation: a single int64
// or float64 cannot carry both components. Casting into or out of them
// requires the arbitrary-precision path, i.e. CastWith.
var (
	Complex64  Type[complex64]  = &complexType[complex64]{name: "complex64"}
	Complex128 Type[complex128] = &complexType[complex128]{name: "complex128"}

	// BigComplex is the unbounded sample type backed by
	// *bigcomplex.Number. Nil destinations are allocated on store.
	BigComplex Type[*bigcomplex.Number] = &bigComplexType{}
)

type complexType[T ~complex64 | ~complex128] struct {
	name string
}

func (t *complexType[T]) Name() string     { return t.name }
func (t *complexType[T]) HasInt64() bool   { return false }
func (t *complexType[T]) HasFloat64() bool { return false }

// Int64 returns the truncated real component. Best effort only: the
// capability predicates keep Cast off this accessor.
func (t *complexType[T]) Int64(v T) int64 {
	return conv.Int64FromFloat64(real(complex128(v)))
}

// Float64 returns the real component, discarding the imaginary part.
func (t *complexType[T]) Float64(v T) float64 {
	return real(complex128(v))
}

func (t *complexType[T]) SetInt64(v *T, val int64) {
	*v = T(complex(float64(val), 0))
}

func (t *complexType[T]) SetFloat64(v *T, val float64) {
	*v = T(complex(val, 0))
}

func (t *complexType[T]) ToBigComplex(v T, dst *bigcomplex.Number) {
	dst.SetComplex128(complex128(v))
}

func (t *complexType[T]) FromBigComplex(v *T, src *bigcomplex.Number) {
	*v = T(src.Complex128())
}

type bigComplexType struct{}

func (t *bigComplexType) Name() string     { return "bigcomplex" }
func (t *bigComplexType) HasInt64() bool   { return false }
func (t *bigComplexType) HasFloat64() bool { return false }

func (t *bigComplexType) Int64(v *bigcomplex.Number) int64 {
	if v == nil {
		return 0
	}
	return v.Int64()
}

func (t *bigComplexType) Float64(v *bigcomplex.Number) float64 {
	if v == nil {
		return 0
	}
	return v.Float64()
}

func (t *bigComplexType) SetInt64(v **bigcomplex.Number, val int64) {
	t.ensure(v)
	(*v).SetInt64(val)
}

func (t *bigComplexType) SetFloat64(v **bigcomplex.Number, val float64) {
	t.ensure(v)
	(*v).SetFloat64(val)
}

func (t *bigComplexType) ToBigComplex(v *bigcomplex.Number, dst *bigcomplex.Number) {
	if v == nil {
		dst.SetInt64(0)
		return
	}
	dst.Set(v)
}

func (t *bigComplexType) FromBigComplex(v **bigcomplex.Number, src *bigcomplex.Number) {
	t.ensure(v)
	(*v).Set(src)
}

func (t *bigComplexType) ensure(v **bigcomplex.Number) {
	if *v == nil {
		*v = bigcomplex.New()
	}
}
