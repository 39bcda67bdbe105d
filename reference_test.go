package mandel

import (
	"testing"

	"github.com/marben/perturb_mandel/bigmath"
)

func TestFindBestReferenceInteriorCenter(t *testing.T) {
	center := bigmath.NewComplex(-0.5, 0)
	got, score := FindBestReference(center, bigmath.NewScalar(1), 500)
	if score != 500 {
		t.Fatalf("score = %d, want 500", score)
	}
	if !got.Equal(center) {
		t.Fatalf("interior center replaced by %v", got)
	}
}

func TestFindBestReferenceNoImprovement(t *testing.T) {
	// Every pattern point around 2+2i escapes within one step, so nothing
	// strictly beats the center.
	center := bigmath.NewComplex(2, 2)
	got, score := FindBestReference(center, bigmath.NewScalar(1), 500)
	if score != EscapeTime(center, 500) {
		t.Fatalf("score = %d, want center score %d", score, EscapeTime(center, 500))
	}
	if !got.Equal(center) {
		t.Fatalf("got %v, want center", got)
	}
}

func TestFindBestReferenceFindsSurvivor(t *testing.T) {
	// 0.3 is just right of the cardioid cusp; 0.2+0.1i, the third pattern
	// point at zoom 1, is inside the cardioid.
	center := bigmath.NewComplex(0.3, 0)
	got, score := FindBestReference(center, bigmath.NewScalar(1), 500)
	if score != 500 {
		t.Fatalf("score = %d, want 500", score)
	}
	want := center.Add(bigmath.NewComplex(-0.1, 0.1))
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFindBestReferenceRadiusShrinksWithZoom(t *testing.T) {
	center := bigmath.NewComplex(0.3, 0)
	zoom := bigmath.NewScalar(1000)
	got, score := FindBestReference(center, zoom, 500)

	// At zoom 1000 the pattern spans ±0.0002: no candidate reaches the
	// cardioid, and whatever wins must lie inside that box.
	d := got.Sub(center)
	if dr, di := d.Re.Float64(), d.Im.Float64(); dr < -0.0002 || dr > 0.0002 || di < -0.0002 || di > 0.0002 {
		t.Fatalf("candidate %v outside the search box", got)
	}
	if score == 500 {
		t.Fatalf("unexpected survivor %v", got)
	}
	if score != EscapeTime(got, 500) {
		t.Fatalf("reported score %d, point scores %d", score, EscapeTime(got, 500))
	}
}

func TestFindBestReferenceNeverWorseThanCenter(t *testing.T) {
	centers := []bigmath.Complex{
		bigmath.NewComplex(2, 2),
		bigmath.NewComplex(0.3, 0),
		bigmath.NewComplex(-0.75, 0.1),
		bigmath.NewComplex(-1.25, 0.2),
		bigmath.NewComplex(0.36, 0.1),
	}
	for _, c := range centers {
		for _, z := range []float64{1, 10, 1e6} {
			_, score := FindBestReference(c, bigmath.NewScalar(z), 400)
			if cs := EscapeTime(c, 400); score < cs {
				t.Fatalf("center %v zoom %v: score %d below center score %d", c, z, score, cs)
			}
		}
	}
}
