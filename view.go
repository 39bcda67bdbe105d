package mandel

import (
	"github.com/marben/perturb_mandel/bigmath"
)

// ViewState is the camera, zoom and reference anchor of one viewer.
//
// Input operations move the camera and zoom; the reference is only replaced
// by FrameUpdater.Update. A ViewState is not safe for concurrent use.
type ViewState struct {
	camera    bigmath.Complex
	zoom      bigmath.Scalar
	reference bigmath.Complex

	width, height int

	cursorKnown bool
	cursorX     float64
	cursorY     float64
}

// NewViewState returns the start-up view: camera and reference at the
// origin, zoom 1, and a width×height viewport.
func NewViewState(width, height int) *ViewState {
	v := &ViewState{
		zoom:   bigmath.NewScalar(1),
		width:  1,
		height: 1,
	}
	v.Resize(width, height)
	return v
}

func (v *ViewState) Camera() bigmath.Complex    { return v.camera }
func (v *ViewState) Zoom() bigmath.Scalar       { return v.zoom }
func (v *ViewState) Reference() bigmath.Complex { return v.reference }

// Size returns the viewport size in pixels.
func (v *ViewState) Size() (int, int) { return v.width, v.height }

// Aspect returns width/height of the viewport.
func (v *ViewState) Aspect() float32 {
	return float32(v.width) / float32(v.height)
}

// Resize records a new viewport size. Non-positive sizes, as reported by a
// minimised window, are ignored.
func (v *ViewState) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width, v.height = width, height
}

// CursorMoved records the pointer position in pixels from the top-left.
func (v *ViewState) CursorMoved(x, y float64) {
	v.cursorKnown = true
	v.cursorX, v.cursorY = x, y
}

// CursorLeft forgets the pointer position; scrolling then zooms about the
// camera.
func (v *ViewState) CursorLeft() {
	v.cursorKnown = false
}

// Scroll zooms out by ZoomFactor for a negative delta and in otherwise,
// including a zero delta. With a known cursor the camera shifts so that the
// point under the cursor stays put.
func (v *ViewState) Scroll(delta float64) {
	oldZoom := v.zoom
	mult := bigmath.NewScalar(ZoomFactor)
	if delta < 0 {
		mult = mult.Inv()
	}
	newZoom := oldZoom.Mul(mult)

	if v.cursorKnown {
		mx, my := v.cursorVector()
		diff := oldZoom.Inv().Sub(newZoom.Inv())
		v.camera = bigmath.Complex{
			Re: v.camera.Re.Add(bigmath.NewScalar(mx).Mul(diff)),
			Im: v.camera.Im.Add(bigmath.NewScalar(my).Mul(diff)),
		}
	}

	v.zoom = newZoom
}

// Pan moves the camera by a pointer drag of (dx, dy) pixels so that the
// point under the pointer follows it.
func (v *ViewState) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	h := float64(v.height)
	inv := v.zoom.Inv()
	v.camera = bigmath.Complex{
		Re: v.camera.Re.Sub(bigmath.NewScalar(2 * dx / h).Mul(inv)),
		Im: v.camera.Im.Add(bigmath.NewScalar(2 * dy / h).Mul(inv)),
	}
}

// cursorVector returns the cursor in aspect-corrected normalized device
// coordinates: x in [-aspect, aspect], y in [-1, 1] with y up.
func (v *ViewState) cursorVector() (float64, float64) {
	w, h := float64(v.width), float64(v.height)
	ndcX := (v.cursorX/w)*2 - 1
	ndcY := 1 - (v.cursorY/h)*2
	return ndcX * (w / h), ndcY
}

var _ InputSink = (*ViewState)(nil)
