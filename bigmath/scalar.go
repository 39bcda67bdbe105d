// Package bigmath provides the fixed-precision arbitrary-precision numbers the
// deep zoom engine is built on.
//
// Every value carries a 128-bit mantissa. Values are immutable: operations
// return new values and never touch their operands, so a Scalar or Complex
// can be copied and shared freely. Conversions to native floats only happen
// through the named narrowing methods (Float32, Float64, Narrow).
package bigmath

import (
	"math"
	"math/big"
)

// Prec is the mantissa width, in bits, of every Scalar.
const Prec = 128

// zero is shared by all zero-valued Scalars. It is never written to.
var zero = new(big.Float).SetPrec(Prec)

// Scalar is an arbitrary-precision real number with a Prec-bit mantissa.
// The zero value is 0.
type Scalar struct {
	f *big.Float
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(Prec)
}

// NewScalar returns x at full precision.
func NewScalar(x float64) Scalar {
	return Scalar{f: newFloat().SetFloat64(x)}
}

// FromBig returns a Scalar holding x rounded to Prec bits. x is not retained.
func FromBig(x *big.Float) Scalar {
	return Scalar{f: newFloat().Set(x)}
}

func (s Scalar) get() *big.Float {
	if s.f == nil {
		return zero
	}
	return s.f
}

// Big returns a copy of s that the caller may modify.
func (s Scalar) Big() *big.Float {
	return newFloat().Set(s.get())
}

func (s Scalar) Add(o Scalar) Scalar {
	return Scalar{f: newFloat().Add(s.get(), o.get())}
}

func (s Scalar) Sub(o Scalar) Scalar {
	return Scalar{f: newFloat().Sub(s.get(), o.get())}
}

func (s Scalar) Mul(o Scalar) Scalar {
	return Scalar{f: newFloat().Mul(s.get(), o.get())}
}

// Quo returns s/o. It panics if both are zero, like big.Float.Quo.
func (s Scalar) Quo(o Scalar) Scalar {
	return Scalar{f: newFloat().Quo(s.get(), o.get())}
}

func (s Scalar) Neg() Scalar {
	return Scalar{f: newFloat().Neg(s.get())}
}

// Inv returns 1/s.
func (s Scalar) Inv() Scalar {
	return Scalar{f: newFloat().Quo(newFloat().SetInt64(1), s.get())}
}

// Cmp compares s and o and returns -1, 0 or +1.
func (s Scalar) Cmp(o Scalar) int {
	return s.get().Cmp(o.get())
}

// Equal reports whether s and o are the same number at full precision.
func (s Scalar) Equal(o Scalar) bool {
	return s.Cmp(o) == 0
}

func (s Scalar) Sign() int {
	return s.get().Sign()
}

// Float32 narrows s to single precision (nearest, ±Inf on overflow).
func (s Scalar) Float32() float32 {
	f, _ := s.get().Float32()
	return f
}

// Float64 narrows s to double precision.
func (s Scalar) Float64() float64 {
	f, _ := s.get().Float64()
	return f
}

// Log10 returns log10(s) as a float64. It works for magnitudes far outside
// the float64 range. Non-positive values return -Inf.
func (s Scalar) Log10() float64 {
	if s.Sign() <= 0 {
		return math.Inf(-1)
	}
	var mant big.Float
	exp := s.get().MantExp(&mant)
	m, _ := mant.Float64()
	return math.Log10(m) + float64(exp)*math.Log10(2)
}

func (s Scalar) String() string {
	return s.get().Text('g', -1)
}
