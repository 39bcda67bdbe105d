package mandel

import (
	"image"
)

// Renderer draws a frame from the uniform record and orbit buffer produced by
// FrameUpdater. Implementations must not modify u or orbit.
type Renderer interface {
	RenderFrame(u FrameUniforms, orbit *OrbitBuffer, dst *image.RGBA) error
}

// InputSink receives the pointer and window events that move the view.
type InputSink interface {
	Resize(width, height int)
	CursorMoved(x, y float64)
	CursorLeft()
	Scroll(delta float64)
	Pan(dx, dy float64)
}
