package dtype

import (
	"math"

	"github.com/hupe1980/dtype/bigcomplex"
	"github.com/hupe1980/dtype/internal/conv"
)

// Built-in sample type descriptors. Bit and Uint12 use a wider Go storage
// type clamped to their own bounds.
var (
	Bit    Type[uint8]  = &intType[uint8]{name: "bit", min: 0, max: 1}
	Int8   Type[int8]   = &intType[int8]{name: "int8", min: math.MinInt8, max: math.MaxInt8}
	Uint8  Type[uint8]  = &intType[uint8]{name: "uint8", min: 0, max: math.MaxUint8}
	Uint12 Type[uint16] = &intType[uint16]{name: "uint12", min: 0, max: 4095}
	Int16  Type[int16]  = &intType[int16]{name: "int16", min: math.MinInt16, max: math.MaxInt16}
	Uint16 Type[uint16] = &intType[uint16]{name: "uint16", min: 0, max: math.MaxUint16}
	Int32  Type[int32]  = &intType[int32]{name: "int32", min: math.MinInt32, max: math.MaxInt32}
	Uint32 Type[uint32] = &intType[uint32]{name: "uint32", min: 0, max: math.MaxUint32}
	Int64  Type[int64]  = &intType[int64]{name: "int64", min: math.MinInt64, max: math.MaxInt64}
	Uint64 Type[uint64] = &uint64Type{}

	Float32 Type[float32] = &floatType[float32]{name: "float32"}
	Float64 Type[float64] = &floatType[float64]{name: "float64"}
)

// fixedInt covers the storage types of the bounded integer descriptors.
// uint64 is excluded: its range exceeds int64 and it gets its own
// descriptor.
type fixedInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// intType describes a bounded integer sample type with values in
// [min, max]. Both fixed-width representations are supported; stores
// saturate to the bounds.
type intType[T fixedInt] struct {
	name string
	min  int64
	max  int64
}

func (t *intType[T]) Name() string     { return t.name }
func (t *intType[T]) HasInt64() bool   { return true }
func (t *intType[T]) HasFloat64() bool { return true }

func (t *intType[T]) Int64(v T) int64 {
	return int64(v)
}

func (t *intType[T]) Float64(v T) float64 {
	return float64(v)
}

func (t *intType[T]) SetInt64(v *T, val int64) {
	*v = T(conv.ClampInt64(val, t.min, t.max))
}

func (t *intType[T]) SetFloat64(v *T, val float64) {
	t.SetInt64(v, conv.Int64FromFloat64(val))
}

func (t *intType[T]) ToBigComplex(v T, dst *bigcomplex.Number) {
	dst.SetInt64(int64(v))
}

func (t *intType[T]) FromBigComplex(v *T, src *bigcomplex.Number) {
	t.SetInt64(v, src.Int64())
}

// uint64Type describes the full-range 64-bit unsigned sample type. Its
// range exceeds int64, so only the floating representation is advertised;
// conversions that need exactness above 2^53 go through the
// arbitrary-precision path.
type uint64Type struct{}

func (t *uint64Type) Name() string     { return "uint64" }
func (t *uint64Type) HasInt64() bool   { return false }
func (t *uint64Type) HasFloat64() bool { return true }

func (t *uint64Type) Int64(v uint64) int64 {
	return conv.Int64FromUint64(v)
}

func (t *uint64Type) Float64(v uint64) float64 {
	return float64(v)
}

func (t *uint64Type) SetInt64(v *uint64, val int64) {
	*v = conv.Uint64FromInt64(val)
}

func (t *uint64Type) SetFloat64(v *uint64, val float64) {
	*v = conv.Uint64FromFloat64(val)
}

func (t *uint64Type) ToBigComplex(v uint64, dst *bigcomplex.Number) {
	dst.SetUint64(v)
}

func (t *uint64Type) FromBigComplex(v *uint64, src *bigcomplex.Number) {
	*v = src.Uint64()
}

// floatType describes an IEEE-754 sample type stored as T.
type floatType[T ~float32 | ~float64] struct {
	name string
}

func (t *floatType[T]) Name() string     { return t.name }
func (t *floatType[T]) HasInt64() bool   { return false }
func (t *floatType[T]) HasFloat64() bool { return true }

func (t *floatType[T]) Int64(v T) int64 {
	return conv.Int64FromFloat64(float64(v))
}

func (t *floatType[T]) Float64(v T) float64 {
	return float64(v)
}

func (t *floatType[T]) SetInt64(v *T, val int64) {
	*v = T(val)
}

func (t *floatType[T]) SetFloat64(v *T, val float64) {
	*v = T(val)
}

func (t *floatType[T]) ToBigComplex(v T, dst *bigcomplex.Number) {
	dst.SetFloat64(float64(v))
}

func (t *floatType[T]) FromBigComplex(v *T, src *bigcomplex.Number) {
	*v = T(src.Float64())
}
