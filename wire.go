package mandel

import "fmt"

// Input event kinds sent by stream clients.
const (
	EventResize = "resize"
	EventCursor = "cursor"
	EventLeave  = "leave"
	EventScroll = "scroll"
	EventPan    = "pan"
)

// InputEvent is the JSON message a stream client sends for every pointer or
// window event. Only the fields relevant to Kind are read.
type InputEvent struct {
	Kind   string  `json:"kind"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
}

// Apply forwards the event to s.
func (e InputEvent) Apply(s InputSink) error {
	switch e.Kind {
	case EventResize:
		s.Resize(e.Width, e.Height)
	case EventCursor:
		s.CursorMoved(e.X, e.Y)
	case EventLeave:
		s.CursorLeft()
	case EventScroll:
		s.Scroll(e.Delta)
	case EventPan:
		s.Pan(e.DX, e.DY)
	default:
		return fmt.Errorf("unknown input event %q", e.Kind)
	}
	return nil
}
