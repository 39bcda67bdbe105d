package main

import (
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	mandel "github.com/marben/perturb_mandel"
	"github.com/marben/perturb_mandel/render"
)

// viewer implements ebiten.Game. Everything runs on ebiten's update
// goroutine: input moves the view, and a moved view is re-rendered once in
// the same tick.
type viewer struct {
	view     *mandel.ViewState
	updater  *mandel.FrameUpdater
	renderer mandel.Renderer

	frame mandel.Frame
	img   *image.RGBA
	fbImg *ebiten.Image
	dirty bool

	cursorX, cursorY int
	dragging         bool
	snapshots        int
}

func newViewer(w, h int) *viewer {
	v := &viewer{
		view:     mandel.NewViewState(w, h),
		updater:  mandel.NewFrameUpdater(),
		renderer: render.RendererImpl{},
		dirty:    true,
	}
	v.reconfigure()
	return v
}

// reconfigure allocates render targets for the current view size.
func (v *viewer) reconfigure() {
	w, h := v.view.Size()
	v.img = image.NewRGBA(image.Rect(0, 0, w, h))
	if v.fbImg != nil {
		v.fbImg.Deallocate()
	}
	v.fbImg = ebiten.NewImage(w, h)
	v.dirty = true
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	v.pollPointer()

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := v.saveSnapshot(); err != nil {
			log.Printf("snapshot: %v", err)
		}
	}

	if !v.dirty {
		return nil
	}
	v.dirty = false
	return v.renderFrame()
}

func (v *viewer) pollPointer() {
	x, y := ebiten.CursorPosition()
	w, h := v.view.Size()
	inside := x >= 0 && y >= 0 && x < w && y < h

	if x != v.cursorX || y != v.cursorY {
		if v.dragging {
			v.view.Pan(float64(x-v.cursorX), float64(y-v.cursorY))
			v.dirty = true
		}
		v.cursorX, v.cursorY = x, y
	}
	if inside {
		v.view.CursorMoved(float64(x), float64(y))
	} else {
		v.view.CursorLeft()
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		v.dragging = inside
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		v.dragging = false
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		v.view.Scroll(dy)
		log.Printf("zoom: 10^%.2f", v.view.Zoom().Log10())
		v.dirty = true
	}
}

func (v *viewer) renderFrame() error {
	v.frame = v.updater.Update(v.view)
	if v.frame.Searched {
		log.Printf("reference search at %d iterations, adopted: %v", v.frame.TargetIters, v.frame.Adopted)
	}

	err := v.renderer.RenderFrame(v.frame.Uniforms, v.frame.Orbit, v.img)
	switch mandel.RenderErrorAction(err) {
	case mandel.ActionNone:
		v.fbImg.WritePixels(v.img.Pix)
	case mandel.ActionReconfigure:
		log.Printf("render: %v, reconfiguring", err)
		v.reconfigure()
	case mandel.ActionTerminate:
		return fmt.Errorf("render: %w", err)
	default:
		log.Printf("render: %v, frame skipped", err)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.fbImg, nil)

	f := v.frame
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS: %0.2f\nZoom: 10^%.2f\nIter: %d/%d\nRef: %s\nCamera: %s",
		ebiten.ActualTPS(),
		v.view.Zoom().Log10(),
		f.ValidLen, f.TargetIters,
		f.State,
		v.view.Camera(),
	))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth/pixelScale, 1)
	h := max(outsideHeight/pixelScale, 1)
	if cw, ch := v.view.Size(); cw != w || ch != h {
		v.view.Resize(w, h)
		v.reconfigure()
	}
	return w, h
}
