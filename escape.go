package mandel

import (
	"github.com/marben/perturb_mandel/bigmath"
)

// EscapeTime iterates z ← z² + point from z = 0 and returns the index of the
// step at which z escaped, or maxChecks if it survived every step.
//
// Each step first narrows z to single precision and only computes the
// precise |z|² once a component exceeds EscapeBound. Right at the escape
// boundary this can report escape a step or two later than a purely precise
// test would.
func EscapeTime(point bigmath.Complex, maxChecks int) int {
	it := bigmath.NewIter(point, NormPrec)
	for i := 0; i < maxChecks; i++ {
		it.Step()

		re, im := it.Narrow()
		if abs32(re) > EscapeBound || abs32(im) > EscapeBound {
			if it.Norm() > EscapeNormSq {
				return i
			}
		}
	}
	return maxChecks
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
