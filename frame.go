package mandel

import (
	"github.com/marben/perturb_mandel/bigmath"
)

// RefState says how the reference relates to the camera in a frame.
type RefState int

const (
	// Synced: the camera survives the budget and is the reference; the
	// offset is exactly zero.
	Synced RefState = iota
	// Drifted: the reference lags the camera and the offset carries the
	// zoom-scaled difference.
	Drifted
)

func (s RefState) String() string {
	switch s {
	case Synced:
		return "SYNCED"
	case Drifted:
		return "DRIFTED"
	}
	return "unknown"
}

// Frame is the outcome of one FrameUpdater.Update call.
type Frame struct {
	Uniforms    FrameUniforms
	Orbit       *OrbitBuffer
	ValidLen    int
	TargetIters int
	State       RefState
	// Searched is set when the reference was invalid and a search ran.
	Searched bool
	// Adopted is set when the search result replaced the reference.
	Adopted bool
}

// FrameUpdater derives the renderer inputs from a ViewState once per frame.
// It owns the orbit buffer, which is overwritten on every Update.
type FrameUpdater struct {
	orbit OrbitBuffer
}

func NewFrameUpdater() *FrameUpdater {
	return &FrameUpdater{}
}

// TargetIters returns the iteration budget for zoom: BaseIters plus
// ItersPerDecade per decade of zoom, truncated, capped at MaxIter. Zooming
// out never drops the budget below BaseIters.
//
// The decade count is narrowed to float32 before scaling, so truncation
// lands on the same step as a single-precision renderer would compute.
func TargetIters(zoom bigmath.Scalar) int {
	extra := float32(ItersPerDecade) * float32(zoom.Log10())
	if !(extra > 0) {
		extra = 0
	}
	if extra >= MaxIter {
		return MaxIter
	}
	return min(BaseIters+int(extra), MaxIter)
}

// Update validates or repairs v's reference, regenerates the orbit and
// returns the frame's uniforms. The returned Orbit is owned by the updater
// and stays valid until the next call.
func (fu *FrameUpdater) Update(v *ViewState) Frame {
	target := TargetIters(v.zoom)

	refScore := EscapeTime(v.reference, target)
	cameraScore := EscapeTime(v.camera, target)

	f := Frame{TargetIters: target, Orbit: &fu.orbit}

	if cameraScore == target {
		v.reference = v.camera
		f.State = Synced
	} else {
		f.State = Drifted
		if refScore != target {
			f.Searched = true
			best, bestScore := FindBestReference(v.camera, v.zoom, target)
			if bestScore > refScore {
				v.reference = best
				f.Adopted = true
			}
		}
		f.Uniforms.Offset = driftOffset(v)
	}

	orbit, valid := CalculateOrbit(v.reference, target)
	n := copy(fu.orbit[:], orbit)
	clear(fu.orbit[n:])
	f.ValidLen = valid

	f.Uniforms.Zoom = v.zoom.Float32()
	f.Uniforms.Aspect = v.Aspect()
	f.Uniforms.IterCount = uint32(valid)
	return f
}

// driftOffset returns (camera − reference)·zoom narrowed to single
// precision.
func driftOffset(v *ViewState) [2]float32 {
	d := v.camera.Sub(v.reference).Scale(v.zoom)
	re, im := d.Narrow()
	return [2]float32{re, im}
}
