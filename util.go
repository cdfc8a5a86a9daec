package posy

import (
	"path/filepath"
)

// Basename retrieves the basename of a file path.
func Basename(fName string) string {
	return filepath.Base(fName)
}

// Remap maps v from the range [lo1, hi1] onto [lo2, hi2] without clamping.
func Remap(v, lo1, hi1, lo2, hi2 float64) float64 {
	return lo2 + (hi2-lo2)*((v-lo1)/(hi1-lo1))
}
