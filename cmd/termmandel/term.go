package main

import (
	"fmt"
	"image"
	"log"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	mandel "github.com/marben/perturb_mandel"
	"github.com/marben/perturb_mandel/render"
)

// statusLine keeps the last logged line for the bottom row of the screen.
type statusLine struct {
	mu   sync.Mutex
	last string
}

func (s *statusLine) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = strings.TrimRight(string(p), "\n")
	return len(p), nil
}

func (s *statusLine) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

type termViewer struct {
	screen   tcell.Screen
	status   *statusLine
	view     *mandel.ViewState
	updater  *mandel.FrameUpdater
	renderer mandel.Renderer

	frame mandel.Frame
	img   *image.RGBA

	dragging     bool
	lastX, lastY int
}

func run(status *statusLine) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen.Init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	tv := &termViewer{
		screen:   screen,
		status:   status,
		view:     mandel.NewViewState(1, 1),
		updater:  mandel.NewFrameUpdater(),
		renderer: render.RendererImpl{},
	}
	tv.resize()
	log.Printf("scroll: zoom, drag: pan, q: quit")

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	dirty := true
	for {
		if dirty {
			if err := tv.draw(); err != nil {
				return err
			}
			dirty = false
		}

		ev, ok := <-eventChan
		if !ok {
			return nil
		}
		quit, changed := tv.handleEvent(ev)
		if quit {
			return nil
		}
		// coalesce queued events into one frame
		for !quit && len(eventChan) > 0 {
			var c bool
			quit, c = tv.handleEvent(<-eventChan)
			changed = changed || c
		}
		if quit {
			return nil
		}
		dirty = changed
	}
}

// handleEvent applies one terminal event to the view. It reports whether the
// viewer should exit and whether the view changed.
func (tv *termViewer) handleEvent(ev tcell.Event) (quit, changed bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return true, false
		}

	case *tcell.EventResize:
		tv.resize()
		tv.screen.Sync()
		return false, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		// a cell holds two pixels; aim at the middle of the pair
		tv.view.CursorMoved(float64(x)+0.5, float64(y*2)+1)

		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			tv.view.Scroll(1)
			log.Printf("zoom: 10^%.2f", tv.view.Zoom().Log10())
			changed = true
		case buttons&tcell.WheelDown != 0:
			tv.view.Scroll(-1)
			log.Printf("zoom: 10^%.2f", tv.view.Zoom().Log10())
			changed = true
		case buttons&tcell.Button1 != 0:
			if tv.dragging && (x != tv.lastX || y != tv.lastY) {
				tv.view.Pan(float64(x-tv.lastX), float64((y-tv.lastY)*2))
				changed = true
			}
			tv.dragging = true
			tv.lastX, tv.lastY = x, y
		default:
			tv.dragging = false
		}
	}
	return false, changed
}

// resize matches the view to the terminal, keeping the last row for status.
func (tv *termViewer) resize() {
	cols, rows := tv.screen.Size()
	rows = max(rows-1, 1)
	tv.view.Resize(cols, rows*2)
	w, h := tv.view.Size()
	tv.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (tv *termViewer) draw() error {
	tv.frame = tv.updater.Update(tv.view)

	err := tv.renderer.RenderFrame(tv.frame.Uniforms, tv.frame.Orbit, tv.img)
	switch mandel.RenderErrorAction(err) {
	case mandel.ActionNone:
	case mandel.ActionReconfigure:
		log.Printf("render: %v, reconfiguring", err)
		tv.resize()
		return nil
	case mandel.ActionTerminate:
		return fmt.Errorf("render: %w", err)
	default:
		log.Printf("render: %v, frame skipped", err)
		return nil
	}

	b := tv.img.Bounds()
	for y := 0; y < b.Dy()/2; y++ {
		for x := 0; x < b.Dx(); x++ {
			top := tv.img.RGBAAt(x, y*2)
			bottom := tv.img.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			tv.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	tv.drawStatus(b.Dy() / 2)
	tv.screen.Show()
	return nil
}

func (tv *termViewer) drawStatus(row int) {
	cols, _ := tv.screen.Size()
	f := tv.frame
	text := fmt.Sprintf(" %s %d/%d | %s", f.State, f.ValidLen, f.TargetIters, tv.status)

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(text)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		tv.screen.SetContent(x, row, r, nil, style)
	}
}
