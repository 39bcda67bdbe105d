package bigmath

import "math/big"

// Complex is an arbitrary-precision complex number. The zero value is 0+0i.
type Complex struct {
	Re, Im Scalar
}

func NewComplex(re, im float64) Complex {
	return Complex{Re: NewScalar(re), Im: NewScalar(im)}
}

func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Scale multiplies both components by s.
func (z Complex) Scale(s Scalar) Complex {
	return Complex{Re: z.Re.Mul(s), Im: z.Im.Mul(s)}
}

// Equal reports whether z and w match exactly at full precision.
func (z Complex) Equal(w Complex) bool {
	return z.Re.Equal(w.Re) && z.Im.Equal(w.Im)
}

// Narrow returns both components narrowed to single precision.
func (z Complex) Narrow() (float32, float32) {
	return z.Re.Float32(), z.Im.Float32()
}

func (z Complex) String() string {
	return "(" + z.Re.String() + ", " + z.Im.String() + ")"
}

// Iter runs the Mandelbrot recurrence z ← z² + c in place. It owns its
// working storage, so a long orbit allocates nothing per step.
type Iter struct {
	cr, ci *big.Float
	zr, zi *big.Float
	rr, ii *big.Float
	ri     *big.Float
	norm   *big.Float
}

// NewIter returns an iterator for c starting at z = 0. normPrec is the
// mantissa width of the squared magnitude returned by Norm.
func NewIter(c Complex, normPrec uint) *Iter {
	return &Iter{
		cr:   c.Re.Big(),
		ci:   c.Im.Big(),
		zr:   newFloat(),
		zi:   newFloat(),
		rr:   newFloat(),
		ii:   newFloat(),
		ri:   newFloat(),
		norm: new(big.Float).SetPrec(normPrec),
	}
}

// Step advances z to z² + c.
func (it *Iter) Step() {
	it.rr.Mul(it.zr, it.zr)
	it.ii.Mul(it.zi, it.zi)
	it.ri.Mul(it.zr, it.zi)

	// im = 2·re·im + ci
	it.zi.Add(it.ri, it.ri)
	it.zi.Add(it.zi, it.ci)

	// re = re² − im² + cr
	it.zr.Sub(it.rr, it.ii)
	it.zr.Add(it.zr, it.cr)
}

// Narrow returns the current z narrowed to single precision.
func (it *Iter) Narrow() (float32, float32) {
	re, _ := it.zr.Float32()
	im, _ := it.zi.Float32()
	return re, im
}

// Norm returns |z|² rounded to the iterator's norm precision, then narrowed
// to single precision.
func (it *Iter) Norm() float32 {
	it.rr.Mul(it.zr, it.zr)
	it.ii.Mul(it.zi, it.zi)
	it.norm.Add(it.rr, it.ii)
	n, _ := it.norm.Float32()
	return n
}

// Z returns the current iterate.
func (it *Iter) Z() Complex {
	return Complex{Re: FromBig(it.zr), Im: FromBig(it.zi)}
}
