package geom

import "math"

// MaxF64 returns the greater of two doubles.
func MaxF64(a, b float64) float64 {
	return math.Max(a, b)
}
