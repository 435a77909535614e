package testutil

import "testing"

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3 + 1e-13}, 1e-12)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1, 1e300})
	RequireFinite32(t, []float32{0, -1, 1e30})
}

func TestRequireInRange32Passes(t *testing.T) {
	RequireInRange32(t, []float32{-1, 0, 1}, -1, 1)
}
