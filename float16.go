package dtype

import (
	"github.com/hupe1980/dtype/bigcomplex"
	"github.com/hupe1980/dtype/internal/conv"
	"github.com/hupe1980/dtype/internal/f16"
)

// Half is a raw IEEE-754 binary16 sample. Samples are stored as
// bit-patterns; the descriptor bridges them to wider representations.
type Half uint16

// Float16 is the 16-bit floating sample type. Values beyond the binary16
// range round to infinity on store; every binary16 value converts to wider
// floats exactly.
var Float16 Type[Half] = &float16Type{}

type float16Type struct{}

func (t *float16Type) Name() string     { return "float16" }
func (t *float16Type) HasInt64() bool   { return false }
func (t *float16Type) HasFloat64() bool { return true }

func (t *float16Type) Int64(v Half) int64 {
	return conv.Int64FromFloat64(f16.Float64(f16.Bits(v)))
}

func (t *float16Type) Float64(v Half) float64 {
	return f16.Float64(f16.Bits(v))
}

func (t *float16Type) SetInt64(v *Half, val int64) {
	*v = Half(f16.FromFloat64(float64(val)))
}

func (t *float16Type) SetFloat64(v *Half, val float64) {
	*v = Half(f16.FromFloat64(val))
}

func (t *float16Type) ToBigComplex(v Half, dst *bigcomplex.Number) {
	dst.SetFloat64(f16.Float64(f16.Bits(v)))
}

func (t *float16Type) FromBigComplex(v *Half, src *bigcomplex.Number) {
	*v = Half(f16.FromFloat64(src.Float64()))
}
