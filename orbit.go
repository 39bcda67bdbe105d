package mandel

import (
	"github.com/marben/perturb_mandel/bigmath"
)

// OrbitPoint is one reference orbit value in single precision.
type OrbitPoint [2]float32

// CalculateOrbit returns the reference orbit z₀ = 0, z₁, z₂, ... of
// reference, narrowed to single precision, and the number of meaningful
// entries. The orbit stops after the first point whose successor escapes;
// the slice is always maxIter long, padded with zeros.
func CalculateOrbit(reference bigmath.Complex, maxIter int) ([]OrbitPoint, int) {
	if maxIter < 0 {
		maxIter = 0
	}
	orbit := make([]OrbitPoint, maxIter)
	it := bigmath.NewIter(reference, NormPrec)

	valid := 0
	for valid < maxIter {
		re, im := it.Narrow()
		orbit[valid] = OrbitPoint{re, im}
		valid++

		it.Step()
		if it.Norm() > EscapeNormSq {
			break
		}
	}

	return orbit, valid
}
