package mandel

import "errors"

var (
	// ErrSurfaceLost means the render target is gone or no longer matches
	// the window. The frontend reconfigures and retries on the next frame.
	ErrSurfaceLost = errors.New("render: surface lost")
	// ErrOutOfMemory means the renderer cannot allocate what it needs.
	ErrOutOfMemory = errors.New("render: out of memory")
)

// Action is what a frontend does after a failed RenderFrame.
type Action int

const (
	ActionNone Action = iota
	ActionReconfigure
	ActionTerminate
	ActionSkip
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionReconfigure:
		return "reconfigure"
	case ActionTerminate:
		return "terminate"
	case ActionSkip:
		return "skip"
	}
	return "unknown"
}

// RenderErrorAction maps a renderer error to the frontend's response. The
// view state is never touched whatever the error.
func RenderErrorAction(err error) Action {
	switch {
	case err == nil:
		return ActionNone
	case errors.Is(err, ErrSurfaceLost):
		return ActionReconfigure
	case errors.Is(err, ErrOutOfMemory):
		return ActionTerminate
	default:
		return ActionSkip
	}
}
