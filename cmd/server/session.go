package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/perturb_mandel"
)

// Viewport every session starts with until the client resizes.
const (
	defaultWidth  = 1920
	defaultHeight = 1080
)

var errBadEvent = errors.New("bad input event")

// session is the engine state of one connected client.
type session struct {
	conn    *websocket.Conn
	view    *mandel.ViewState
	updater *mandel.FrameUpdater
	buf     []byte
}

func newSession(c *websocket.Conn) *session {
	return &session{
		conn:    c,
		view:    mandel.NewViewState(defaultWidth, defaultHeight),
		updater: mandel.NewFrameUpdater(),
		buf:     make([]byte, 0, mandel.UniformsSize+mandel.OrbitBufferSize),
	}
}

// serveSession sends the start-up frame and then one frame per received
// input event. It returns when ctx is done, the connection fails or the
// client sends an event it cannot apply.
func serveSession(ctx context.Context, c *websocket.Conn) error {
	s := newSession(c)
	if err := s.sendFrame(ctx); err != nil {
		return err
	}

	for {
		var ev mandel.InputEvent
		if err := wsjson.Read(ctx, c, &ev); err != nil {
			return fmt.Errorf("wsjson.Read: %w", err)
		}
		if err := ev.Apply(s.view); err != nil {
			return fmt.Errorf("%w: %v", errBadEvent, err)
		}
		if err := s.sendFrame(ctx); err != nil {
			return err
		}
	}
}

func (s *session) sendFrame(ctx context.Context) error {
	f := s.updater.Update(s.view)
	s.buf = mandel.EncodeFrame(s.buf[:0], f.Uniforms, f.Orbit)
	if err := s.conn.Write(ctx, websocket.MessageBinary, s.buf); err != nil {
		return fmt.Errorf("conn.Write: %w", err)
	}
	return nil
}
