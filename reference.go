package mandel

import (
	"github.com/marben/perturb_mandel/bigmath"
)

// FindBestReference looks for a point near center that survives longer than
// center itself. It returns center untouched if center already survives
// maxIter steps. Otherwise it walks SearchPattern, scaled by 1/zoom, and
// returns the first candidate with the highest score, stopping as soon as
// one survives. The returned score is never below center's.
func FindBestReference(center bigmath.Complex, zoom bigmath.Scalar, maxIter int) (bigmath.Complex, int) {
	centerScore := EscapeTime(center, maxIter)
	if centerScore == maxIter {
		return center, centerScore
	}

	best, bestScore := center, centerScore
	radius := zoom.Inv()

	for _, o := range SearchPattern {
		candidate := bigmath.Complex{
			Re: center.Re.Add(bigmath.NewScalar(o[0]).Mul(radius)),
			Im: center.Im.Add(bigmath.NewScalar(o[1]).Mul(radius)),
		}

		score := EscapeTime(candidate, maxIter)
		if score > bestScore {
			best, bestScore = candidate, score
			if bestScore == maxIter {
				break
			}
		}
	}

	return best, bestScore
}
