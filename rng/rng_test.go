package rng

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := Uniform(r, 75, 200)
		require.GreaterOrEqual(t, v, 75.0)
		require.Less(t, v, 200.0)
	}
	require.Equal(t, -22.5, Uniform(Lowest{}, -22.5, 22.5))
}

func TestIntRangeNeverReturnsHigh(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		n := IntRange(r, 1, 5)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 4)
		seen[n] = true
	}
	require.Len(t, seen, 4)
	require.Equal(t, 4, IntRange(&Fixed{Uniforms: []float64{0.9999}}, 1, 5))
}

func TestClampedGaussianInt(t *testing.T) {
	tests := []struct {
		name   string
		normal float64
		want   int
	}{
		{"mean", 0, 2},
		{"far left", -100, 1},
		{"far right", 100, 10},
		{"one sigma", 1, 5},
		{"just under max", 2.49, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &Fixed{Normals: []float64{tt.normal}}
			require.Equal(t, tt.want, ClampedGaussianInt(src, 2.5, 3, 1, 10))
		})
	}
	require.Equal(t, 1, ClampedGaussianInt(Lowest{}, 2.5, 3, 1, 10))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		cur, low, high, want float64
	}{
		{5, 1, 10, 5},
		{-3, 1, 10, 1},
		{12, 1, 10, 10},
		{12, 10, 1, 10}, // swapped bounds
		{math.Inf(-1), 1, 10, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.cur, tt.low, tt.high); got != tt.want {
			t.Errorf("Want Clamp(%v, %v, %v) = %v, got %v", tt.cur, tt.low, tt.high, tt.want, got)
		}
	}
}

func TestChoose(t *testing.T) {
	names := []string{"yellow", "orange", "red"}
	require.Equal(t, "yellow", Choose(Lowest{}, names))
	require.Equal(t, "orange", Choose(&Fixed{Uniforms: []float64{0.5}}, names))
	require.Equal(t, "red", Choose(&Fixed{Uniforms: []float64{0.99}}, names))
	require.Equal(t, "", Choose(Lowest{}, nil))
}

func TestFixedCycles(t *testing.T) {
	f := &Fixed{Uniforms: []float64{0.1, 0.2}}
	require.Equal(t, []float64{0.1, 0.2, 0.1}, []float64{f.Float64(), f.Float64(), f.Float64()})
}
