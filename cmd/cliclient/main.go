// cliclient is a headless client for the frame stream server.
// It connects to the server, replays a zoom as input events, renders the final
// frame on the local CPU and saves it as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/marben/perturb_mandel"
	"github.com/marben/perturb_mandel/render"
)

type options struct {
	addr     string
	width    int
	height   int
	steps    int
	landmark string
	out      string
	verbose  bool
}

func main() {
	var o options
	flag.StringVar(&o.addr, "addr", "localhost:8080", "stream server address")
	flag.IntVar(&o.width, "w", 1920, "image width")
	flag.IntVar(&o.height, "h", 1080, "image height")
	flag.IntVar(&o.steps, "steps", -1, "scroll steps to zoom in (default: fit the landmark, else 0)")
	flag.StringVar(&o.landmark, "landmark", "", "zoom into a landmark: "+strings.Join(landmarkNames(), ", "))
	flag.StringVar(&o.out, "out", "mandel.png", "output file")
	flag.BoolVar(&o.verbose, "v", false, "log every rendered tile")
	flag.Parse()

	log.Printf("Starting CLI client...")
	if err := run(o); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func landmarkNames() []string {
	names := make([]string, 0, len(mandel.Landmarks))
	for name := range mandel.Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// zoomEvents builds the input sequence that frames the requested view on a
// fresh session: resize, pan the landmark into the middle, then scroll with
// the cursor held on the middle.
func zoomEvents(o options) ([]mandel.InputEvent, error) {
	events := []mandel.InputEvent{
		{Kind: mandel.EventResize, Width: o.width, Height: o.height},
	}

	steps := o.steps
	if o.landmark != "" {
		region, ok := mandel.Landmarks[o.landmark]
		if !ok {
			return nil, fmt.Errorf("unknown landmark %q", o.landmark)
		}
		// at zoom 1 one pixel spans 2/height; a drag moves the camera against it
		center := region.Center()
		h := float64(o.height)
		events = append(events, mandel.InputEvent{
			Kind: mandel.EventPan,
			DX:   -center.Re.Float64() * h / 2,
			DY:   center.Im.Float64() * h / 2,
		})
		if steps < 0 {
			steps = region.ZoomSteps()
		}
	}
	if steps < 0 {
		steps = 0
	}

	events = append(events, mandel.InputEvent{
		Kind: mandel.EventCursor,
		X:    float64(o.width) / 2,
		Y:    float64(o.height) / 2,
	})
	for range steps {
		events = append(events, mandel.InputEvent{Kind: mandel.EventScroll, Delta: 1})
	}
	return events, nil
}

// run connects to the server, sends the zoom, renders the last frame and
// saves it as a PNG file.
func run(o options) error {
	events, err := zoomEvents(o)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Printf("Connecting to stream server on %s...", o.addr)
	c, _, err := websocket.Dial(ctx, "ws://"+o.addr+"/ws", nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer c.CloseNow()
	c.SetReadLimit(mandel.UniformsSize + mandel.OrbitBufferSize)

	// start-up frame
	frame, err := readFrame(ctx, c)
	if err != nil {
		return err
	}

	log.Printf("Sending %d input events...", len(events))
	for _, ev := range events {
		if err := wsjson.Write(ctx, c, ev); err != nil {
			return fmt.Errorf("wsjson.Write: %w", err)
		}
		if frame, err = readFrame(ctx, c); err != nil {
			return err
		}
	}
	c.Close(websocket.StatusNormalClosure, "")

	u, orbit, err := mandel.DecodeFrame(frame)
	if err != nil {
		return fmt.Errorf("mandel.DecodeFrame: %w", err)
	}
	log.Printf("Final frame: zoom %g, %d iterations", u.Zoom, u.IterCount)

	renderer := render.RendererImpl{}
	if o.verbose {
		renderer.OnTileRender = func(tile image.Rectangle) { log.Printf("Rendering tile: %s", tile) }
	}
	img := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	if err := renderer.RenderFrameContext(ctx, u, orbit, img); err != nil {
		return fmt.Errorf("renderer.RenderFrame: %w", err)
	}

	log.Printf("Saving rendered image to %q...", o.out)
	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("Fully rendered image saved to %q", o.out)
	return nil
}

func readFrame(ctx context.Context, c *websocket.Conn) ([]byte, error) {
	typ, b, err := c.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("c.Read: %w", err)
	}
	if typ != websocket.MessageBinary {
		return nil, fmt.Errorf("unexpected %v message", typ)
	}
	return b, nil
}
