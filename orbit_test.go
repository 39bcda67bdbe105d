package mandel

import (
	"testing"

	"github.com/marben/perturb_mandel/bigmath"
)

func TestCalculateOrbitEscaping(t *testing.T) {
	orbit, valid := CalculateOrbit(bigmath.NewComplex(1, 0), 10)
	if len(orbit) != 10 {
		t.Fatalf("len = %d, want 10", len(orbit))
	}
	// 0 → 1 → 2 → 5: 5 escapes, so 0, 1, 2 are kept
	if valid != 3 {
		t.Fatalf("valid = %d, want 3", valid)
	}
	want := []OrbitPoint{{0, 0}, {1, 0}, {2, 0}}
	for i, w := range want {
		if orbit[i] != w {
			t.Fatalf("orbit[%d] = %v, want %v", i, orbit[i], w)
		}
	}
	for i := valid; i < len(orbit); i++ {
		if orbit[i] != (OrbitPoint{}) {
			t.Fatalf("padding orbit[%d] = %v", i, orbit[i])
		}
	}
}

func TestCalculateOrbitFirstStepEscapes(t *testing.T) {
	orbit, valid := CalculateOrbit(bigmath.NewComplex(2, 2), 500)
	if len(orbit) != 500 || valid != 1 {
		t.Fatalf("len = %d valid = %d, want 500 and 1", len(orbit), valid)
	}
}

func TestCalculateOrbitSurvivor(t *testing.T) {
	orbit, valid := CalculateOrbit(bigmath.NewComplex(-1, 0), 64)
	if len(orbit) != 64 || valid != 64 {
		t.Fatalf("len = %d valid = %d, want 64 and 64", len(orbit), valid)
	}
	// period two: 0, -1, 0, -1, ...
	for i, p := range orbit {
		want := OrbitPoint{0, 0}
		if i%2 == 1 {
			want = OrbitPoint{-1, 0}
		}
		if p != want {
			t.Fatalf("orbit[%d] = %v, want %v", i, p, want)
		}
	}
}

func TestCalculateOrbitLengthContract(t *testing.T) {
	points := []bigmath.Complex{
		bigmath.NewComplex(0, 0),
		bigmath.NewComplex(0.3, 0),
		bigmath.NewComplex(-0.75, 0.1),
		bigmath.NewComplex(-2, 0),
	}
	for _, p := range points {
		for _, n := range []int{0, 1, 37, 500} {
			orbit, valid := CalculateOrbit(p, n)
			if len(orbit) != n {
				t.Fatalf("%v/%d: len = %d", p, n, len(orbit))
			}
			if valid > n {
				t.Fatalf("%v/%d: valid = %d", p, n, valid)
			}
			for i := valid; i < n; i++ {
				if orbit[i] != (OrbitPoint{}) {
					t.Fatalf("%v/%d: padding orbit[%d] = %v", p, n, i, orbit[i])
				}
			}
		}
	}
}
