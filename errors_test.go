package mandel

import (
	"errors"
	"fmt"
	"testing"
)

func TestRenderErrorAction(t *testing.T) {
	tests := []struct {
		err  error
		want Action
	}{
		{nil, ActionNone},
		{ErrSurfaceLost, ActionReconfigure},
		{fmt.Errorf("tile 3: %w", ErrSurfaceLost), ActionReconfigure},
		{ErrOutOfMemory, ActionTerminate},
		{fmt.Errorf("alloc: %w", ErrOutOfMemory), ActionTerminate},
		{errors.New("timeout"), ActionSkip},
	}
	for _, tt := range tests {
		if got := RenderErrorAction(tt.err); got != tt.want {
			t.Fatalf("RenderErrorAction(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
