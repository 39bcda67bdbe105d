package bigmath

import (
	"math"
	"testing"
)

func TestZeroValueIsZero(t *testing.T) {
	var s Scalar
	if s.Sign() != 0 {
		t.Fatalf("zero Scalar sign = %d", s.Sign())
	}
	var z Complex
	if !z.Equal(NewComplex(0, 0)) {
		t.Fatalf("zero Complex != 0+0i")
	}
	if got := s.Add(NewScalar(1.5)).Float64(); got != 1.5 {
		t.Fatalf("0 + 1.5 = %v", got)
	}
}

func TestOperationsDoNotAlias(t *testing.T) {
	a := NewScalar(2)
	b := a.Add(NewScalar(1))
	if a.Float64() != 2 || b.Float64() != 3 {
		t.Fatalf("a=%v b=%v", a, b)
	}

	big := a.Big()
	big.SetFloat64(42)
	if a.Float64() != 2 {
		t.Fatalf("modifying Big() copy changed the scalar: %v", a)
	}
}

func TestPrecisionBeyondFloat64(t *testing.T) {
	// 1 + 2^-100 is not representable in float64 but is at 128 bits.
	tiny := NewScalar(math.Ldexp(1, -100))
	one := NewScalar(1)
	sum := one.Add(tiny)
	if sum.Equal(one) {
		t.Fatalf("1 + 2^-100 collapsed to 1")
	}
	if sum.Float64() != 1 {
		t.Fatalf("narrowing should round to 1, got %v", sum.Float64())
	}
	if !sum.Sub(one).Equal(tiny) {
		t.Fatalf("(1 + 2^-100) - 1 = %v", sum.Sub(one))
	}
}

func TestInvAndQuo(t *testing.T) {
	z := NewScalar(4)
	if got := z.Inv().Float64(); got != 0.25 {
		t.Fatalf("1/4 = %v", got)
	}
	if got := NewScalar(3).Quo(z).Float64(); got != 0.75 {
		t.Fatalf("3/4 = %v", got)
	}
}

func TestLog10(t *testing.T) {
	tests := []struct {
		in   Scalar
		want float64
	}{
		{NewScalar(1), 0},
		{NewScalar(1000), 3},
		{NewScalar(0.01), -2},
		{NewScalar(1.15), math.Log10(1.15)},
	}
	for _, tt := range tests {
		if got := tt.in.Log10(); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("log10(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// 1.15^6000 overflows float64 but not a Scalar.
	z := NewScalar(1)
	f := NewScalar(1.15)
	for i := 0; i < 6000; i++ {
		z = z.Mul(f)
	}
	want := 6000 * math.Log10(1.15)
	if got := z.Log10(); math.Abs(got-want) > 1e-6 {
		t.Fatalf("log10(1.15^6000) = %v, want %v", got, want)
	}
	if !math.IsInf(NewScalar(0).Log10(), -1) {
		t.Fatalf("log10(0) should be -Inf")
	}
}

func TestNarrow(t *testing.T) {
	re, im := NewComplex(0.1, -2.5).Narrow()
	if re != float32(0.1) || im != -2.5 {
		t.Fatalf("Narrow = (%v, %v)", re, im)
	}
}

func TestComplexArithmetic(t *testing.T) {
	a := NewComplex(1, 2)
	b := NewComplex(0.5, -1)
	if !a.Add(b).Equal(NewComplex(1.5, 1)) {
		t.Fatalf("a+b = %v", a.Add(b))
	}
	if !a.Sub(b).Equal(NewComplex(0.5, 3)) {
		t.Fatalf("a-b = %v", a.Sub(b))
	}
	if !a.Scale(NewScalar(2)).Equal(NewComplex(2, 4)) {
		t.Fatalf("2a = %v", a.Scale(NewScalar(2)))
	}
}

func TestIter(t *testing.T) {
	// c = i: 0 → i → -1+i → -i → -1+i ...
	it := NewIter(NewComplex(0, 1), 24)
	want := [][2]float32{{0, 1}, {-1, 1}, {0, -1}, {-1, 1}}
	for i, w := range want {
		it.Step()
		re, im := it.Narrow()
		if re != w[0] || im != w[1] {
			t.Fatalf("step %d: got (%v, %v), want %v", i+1, re, im, w)
		}
	}
	if n := it.Norm(); n != 2 {
		t.Fatalf("|-1+i|² = %v", n)
	}
	if !it.Z().Equal(NewComplex(-1, 1)) {
		t.Fatalf("Z() = %v", it.Z())
	}
}
