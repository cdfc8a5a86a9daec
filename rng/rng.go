// Package rng draws the random parameters a poster is built from.
package rng

import (
	"math"
)

// Source is anything that can produce uniform and normal draws.
// *math/rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal value (mean 0, stddev 1).
	NormFloat64() float64
}

// Uniform returns a value in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Float64()*(hi-lo)
}

// IntRange returns floor(Uniform(lo, hi)), so hi itself is never returned.
func IntRange(src Source, lo, hi int) int {
	return int(math.Floor(Uniform(src, float64(lo), float64(hi))))
}

// Gaussian returns a normal draw with the given mean and standard deviation.
func Gaussian(src Source, mean, stddev float64) float64 {
	return mean + stddev*src.NormFloat64()
}

// ClampedGaussianInt draws a Gaussian, clamps it to [min, max] and floors it.
func ClampedGaussianInt(src Source, mean, stddev float64, min, max int) int {
	v := Gaussian(src, mean, stddev)
	if math.IsNaN(v) {
		v = float64(min)
	}
	return int(math.Floor(Clamp(v, float64(min), float64(max))))
}

// Clamp current value between low and high
func Clamp(cur, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// Choose picks one of names uniformly. It returns "" if names is empty.
func Choose(src Source, names []string) string {
	if len(names) == 0 {
		return ""
	}
	i := int(src.Float64() * float64(len(names)))
	if i >= len(names) {
		i = len(names) - 1
	}
	return names[i]
}
