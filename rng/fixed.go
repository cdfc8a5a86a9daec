package rng

import "math"

// Lowest is a Source where every draw lands on the bottom of its range.
// Uniform draws return their lower bound and Gaussian draws are clamped to
// their minimum.
type Lowest struct{}

func (Lowest) Float64() float64     { return 0 }
func (Lowest) NormFloat64() float64 { return math.Inf(-1) }

// Fixed replays scripted values, cycling when it runs out.
// An empty script behaves like Lowest for uniform draws and returns 0 for
// normal draws.
type Fixed struct {
	Uniforms []float64
	Normals  []float64

	u, n int
}

func (f *Fixed) Float64() float64 {
	if len(f.Uniforms) == 0 {
		return 0
	}
	v := f.Uniforms[f.u%len(f.Uniforms)]
	f.u++
	return v
}

func (f *Fixed) NormFloat64() float64 {
	if len(f.Normals) == 0 {
		return 0
	}
	v := f.Normals[f.n%len(f.Normals)]
	f.n++
	return v
}
