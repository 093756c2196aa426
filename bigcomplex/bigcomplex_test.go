package bigcomplex

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueUsable(t *testing.T) {
	var n Number
	assert.True(t, n.IsZero())

	n.SetInt64(3)
	assert.Equal(t, int64(3), n.Int64())
	assert.Equal(t, uint(Prec), n.Re().Prec())
}

func TestSetInt64(t *testing.T) {
	n := New()
	n.SetInt64(-42)
	assert.Equal(t, int64(-42), n.Int64())
	assert.Equal(t, -42.0, n.Float64())
	assert.Equal(t, 0, n.Im().Sign())
}

func TestSetUint64(t *testing.T) {
	n := New()
	n.SetUint64(math.MaxUint64)
	assert.Equal(t, uint64(math.MaxUint64), n.Uint64())

	// Beyond int64: saturates on the signed accessor.
	assert.Equal(t, int64(math.MaxInt64), n.Int64())
}

func TestSetFloat64(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		n := New()
		n.SetFloat64(3.75)
		assert.Equal(t, 3.75, n.Float64())
		assert.Equal(t, int64(3), n.Int64(), "truncates toward zero")
	})

	t.Run("negative truncates toward zero", func(t *testing.T) {
		n := New()
		n.SetFloat64(-3.75)
		assert.Equal(t, int64(-3), n.Int64())
	})

	t.Run("nan stores zero", func(t *testing.T) {
		n := New()
		n.SetFloat64(math.NaN())
		assert.True(t, n.IsZero())
	})

	t.Run("infinity saturates integer accessors", func(t *testing.T) {
		n := New()
		n.SetFloat64(math.Inf(1))
		assert.Equal(t, int64(math.MaxInt64), n.Int64())
		assert.Equal(t, uint64(math.MaxUint64), n.Uint64())

		n.SetFloat64(math.Inf(-1))
		assert.Equal(t, int64(math.MinInt64), n.Int64())
		assert.Equal(t, uint64(0), n.Uint64())
	})
}

func TestSetComplex128(t *testing.T) {
	n := New()
	n.SetComplex128(1.5 - 2.5i)
	assert.Equal(t, 1.5-2.5i, n.Complex128())
	assert.Equal(t, 1.5, n.Float64())
}

func TestSetParts(t *testing.T) {
	n := New()
	n.SetParts(big.NewFloat(2), nil)
	assert.Equal(t, 2+0i, n.Complex128())
}

func TestUint64Negative(t *testing.T) {
	n := New()
	n.SetInt64(-7)
	assert.Equal(t, uint64(0), n.Uint64())
}

func TestSetCopies(t *testing.T) {
	a := New()
	a.SetComplex128(1 + 1i)

	b := New()
	b.Set(a)
	a.SetInt64(9)

	assert.Equal(t, 1+1i, b.Complex128(), "Set must copy, not alias")
}

func TestEqual(t *testing.T) {
	a, b := New(), New()
	a.SetFloat64(0.5)
	b.SetFloat64(0.5)
	assert.True(t, a.Equal(b))

	b.SetComplex128(0.5 + 1i)
	assert.False(t, a.Equal(b))
}

func TestPrecisionBeyondFloat64(t *testing.T) {
	// 2^64+1 is not representable in float64 or int64 but fits easily in
	// 128 mantissa bits.
	v := new(big.Int).Lsh(big.NewInt(1), 64)
	v.Add(v, big.NewInt(1))

	n := New()
	n.Re().SetInt(v)

	i, acc := n.Re().Int(nil)
	assert.Equal(t, big.Exact, acc)
	assert.Equal(t, "18446744073709551617", i.String())
}

func TestString(t *testing.T) {
	n := New()
	n.SetComplex128(1 - 2i)
	assert.Equal(t, "1-2i", n.String())
}
