package mandel

// MaxIter is the capacity of the orbit buffer shared with the renderer and
// the upper bound of the per-frame iteration budget.
const MaxIter = 20000

// Escape test.
const (
	// EscapeBound gates the precise test: a component must exceed it in
	// single precision before the magnitude is computed.
	EscapeBound = 2.0
	// EscapeNormSq is the squared escape radius.
	EscapeNormSq = 4.0
	// NormPrec is the mantissa width used for |z|².
	NormPrec = 24
)

// Iteration budget: BaseIters + ItersPerDecade·log10(zoom), capped at MaxIter.
const (
	BaseIters      = 500
	ItersPerDecade = 100
)

// ZoomFactor is applied per scroll step.
const ZoomFactor = 1.15

// SearchPattern lists the reference candidates tried around the camera, in
// units of 1/zoom. Order matters: the first point with the best score wins.
var SearchPattern = [...][2]float64{
	{0, 0},
	{0.1, 0.1},
	{0.1, -0.1},
	{-0.1, 0.1},
	{-0.1, -0.1},
	{0.2, 0},
	{-0.2, 0},
	{0, 0.2},
	{0, -0.2},
}
