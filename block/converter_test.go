package block

import (
	"context"
	"math"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dtype"
)

func TestConverterConvert(t *testing.T) {
	ctx := context.Background()

	t.Run("fast path plane", func(t *testing.T) {
		in := []int16{math.MinInt16, -5, 0, 5, math.MaxInt16}
		out := make([]float32, len(in))

		c := NewConverter(dtype.Int16, dtype.Float32)
		require.NoError(t, c.Convert(ctx, in, out))

		assert.Equal(t, []float32{math.MinInt16, -5, 0, 5, math.MaxInt16}, out)
	})

	t.Run("arbitrary-precision plane", func(t *testing.T) {
		in := []complex64{1 + 2i, -3i, 0}
		out := make([]complex128, len(in))

		c := NewConverter(dtype.Complex64, dtype.Complex128)
		require.NoError(t, c.Convert(ctx, in, out))

		assert.Equal(t, []complex128{1 + 2i, -3i, 0}, out)
	})

	t.Run("parallel matches sequential", func(t *testing.T) {
		const n = 10_000

		in := make([]float64, n)
		for i := range in {
			in[i] = float64(i) + 0.7
		}

		sequential := make([]int32, n)
		cs := NewConverter(dtype.Float64, dtype.Int32, WithParallelism(1))
		require.NoError(t, cs.Convert(ctx, in, sequential))

		parallel := make([]int32, n)
		cp := NewConverter(dtype.Float64, dtype.Int32, WithParallelism(4), WithChunkSize(128))
		require.NoError(t, cp.Convert(ctx, in, parallel))

		assert.Equal(t, sequential, parallel)
		assert.Equal(t, int32(41), parallel[41], "truncation toward zero")
	})

	t.Run("empty plane", func(t *testing.T) {
		c := NewConverter(dtype.Int8, dtype.Int16)
		require.NoError(t, c.Convert(ctx, nil, nil))
	})

	t.Run("length mismatch", func(t *testing.T) {
		c := NewConverter(dtype.Int8, dtype.Int16)
		err := c.Convert(ctx, make([]int8, 3), make([]int16, 4))

		var lengthErr *ErrLengthMismatch
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, 3, lengthErr.Expected)
		assert.Equal(t, 4, lengthErr.Actual)
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewConverter(dtype.Int16, dtype.Float32)
		err := c.Convert(canceled, make([]int16, 10), make([]float32, 10))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConverterConvertMasked(t *testing.T) {
	ctx := context.Background()

	t.Run("converts only masked samples", func(t *testing.T) {
		in := []int16{10, 20, 30, 40}
		out := []float32{-1, -1, -1, -1}

		mask := roaring.BitmapOf(1, 3)

		c := NewConverter(dtype.Int16, dtype.Float32)
		require.NoError(t, c.ConvertMasked(ctx, in, out, mask))

		assert.Equal(t, []float32{-1, 20, -1, 40}, out)
	})

	t.Run("nil and empty masks are no-ops", func(t *testing.T) {
		in := []int16{1, 2}
		out := []float32{9, 9}

		c := NewConverter(dtype.Int16, dtype.Float32)
		require.NoError(t, c.ConvertMasked(ctx, in, out, nil))
		require.NoError(t, c.ConvertMasked(ctx, in, out, roaring.New()))
		assert.Equal(t, []float32{9, 9}, out)
	})

	t.Run("mask beyond plane bounds", func(t *testing.T) {
		c := NewConverter(dtype.Int16, dtype.Float32)
		err := c.ConvertMasked(ctx, make([]int16, 4), make([]float32, 4), roaring.BitmapOf(7))

		var rangeErr *ErrMaskOutOfRange
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, uint32(7), rangeErr.Index)
	})
}

func TestConverterScratchReuse(t *testing.T) {
	// Repeated conversions reuse pooled scratch values; results must stay
	// identical run over run.
	ctx := context.Background()
	c := NewConverter(dtype.Complex128, dtype.Complex64)

	in := []complex128{1.5 + 0.5i, -2 - 2i}
	for i := 0; i < 5; i++ {
		out := make([]complex64, len(in))
		require.NoError(t, c.Convert(ctx, in, out))
		assert.Equal(t, []complex64{1.5 + 0.5i, -2 - 2i}, out)
	}
}
