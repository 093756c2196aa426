package conv

import (
	"math"
	"testing"
)

func TestClampInt64(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  int64
		want       int64
	}{
		{"in range", 5, -10, 10, 5},
		{"below", -20, -10, 10, -10},
		{"above", 20, -10, 10, 10},
		{"at lower bound", -10, -10, 10, -10},
		{"at upper bound", 10, -10, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampInt64(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("ClampInt64(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestInt64FromFloat64(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		want int64
	}{
		{"positive truncates", 3.7, 3},
		{"negative truncates toward zero", -3.7, -3},
		{"zero", 0, 0},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), math.MaxInt64},
		{"negative infinity", math.Inf(-1), math.MinInt64},
		{"above range", 1e19, math.MaxInt64},
		{"below range", -1e19, math.MinInt64},
		{"exact power of two", 1 << 52, 1 << 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int64FromFloat64(tt.f); got != tt.want {
				t.Errorf("Int64FromFloat64(%v) = %d, want %d", tt.f, got, tt.want)
			}
		})
	}
}

func TestUint64FromFloat64(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		want uint64
	}{
		{"positive truncates", 9.99, 9},
		{"negative clamps", -1.5, 0},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), math.MaxUint64},
		{"above range", 2e19, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Uint64FromFloat64(tt.f); got != tt.want {
				t.Errorf("Uint64FromFloat64(%v) = %d, want %d", tt.f, got, tt.want)
			}
		})
	}
}

func TestUint64FromInt64(t *testing.T) {
	if got := Uint64FromInt64(-1); got != 0 {
		t.Errorf("Uint64FromInt64(-1) = %d, want 0", got)
	}
	if got := Uint64FromInt64(math.MaxInt64); got != math.MaxInt64 {
		t.Errorf("Uint64FromInt64(MaxInt64) = %d, want %d", got, int64(math.MaxInt64))
	}
}

func TestInt64FromUint64(t *testing.T) {
	if got := Int64FromUint64(math.MaxUint64); got != math.MaxInt64 {
		t.Errorf("Int64FromUint64(MaxUint64) = %d, want MaxInt64", got)
	}
	if got := Int64FromUint64(42); got != 42 {
		t.Errorf("Int64FromUint64(42) = %d, want 42", got)
	}
}
