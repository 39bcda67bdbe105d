// Package render draws frames from the engine's uniform record and reference
// orbit. Each pixel iterates only a single-precision perturbation against the
// reference orbit; the frame is split into tiles rendered in parallel.
package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"

	mandel "github.com/marben/perturb_mandel"
	"golang.org/x/sync/errgroup"
)

const tileSize = 64

// ErrNilOrbit is returned when a frame is rendered without a reference orbit.
var ErrNilOrbit = errors.New("render: nil orbit")

type RendererImpl struct {
	// OnTileRender, when set, is called before each tile is rendered. It may
	// be called from several goroutines at once.
	OnTileRender func(tile image.Rectangle)
	// Workers bounds the number of tiles rendered at once; 0 means
	// runtime.NumCPU().
	Workers int
}

// RenderFrame implements mandel.Renderer.
func (imp RendererImpl) RenderFrame(u mandel.FrameUniforms, orbit *mandel.OrbitBuffer, dst *image.RGBA) error {
	return imp.RenderFrameContext(context.Background(), u, orbit, dst)
}

// RenderFrameContext renders into dst, stopping early when ctx is done.
func (imp RendererImpl) RenderFrameContext(ctx context.Context, u mandel.FrameUniforms, orbit *mandel.OrbitBuffer, dst *image.RGBA) error {
	if dst == nil || dst.Bounds().Empty() {
		return mandel.ErrSurfaceLost
	}
	if orbit == nil {
		return ErrNilOrbit
	}

	workers := imp.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, tile := range splitRectNoClip(dst.Bounds(), tileSize, tileSize) {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if imp.OnTileRender != nil {
				imp.OnTileRender(tile)
			}
			imp.renderTile(u, orbit, dst, tile)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return ctx.Err()
}

// renderTile writes one tile of dst. Tiles never overlap, so concurrent
// calls write disjoint parts of dst.Pix.
func (imp RendererImpl) renderTile(u mandel.FrameUniforms, orbit *mandel.OrbitBuffer, dst *image.RGBA, tile image.Rectangle) {
	b := dst.Bounds()
	imgW := float32(b.Dx())
	imgH := float32(b.Dy())

	for py := tile.Min.Y; py < tile.Max.Y; py++ {
		ndcY := 1 - ((float32(py-b.Min.Y)+0.5)/imgH)*2

		for px := tile.Min.X; px < tile.Max.X; px++ {
			ndcX := ((float32(px-b.Min.X)+0.5)/imgW)*2 - 1

			dcr := (ndcX*u.Aspect + u.Offset[0]) / u.Zoom
			dci := (ndcY + u.Offset[1]) / u.Zoom

			mu, escaped := Perturb(orbit, int(u.IterCount), dcr, dci)

			col := color.RGBA{A: 255}
			if escaped {
				col = hsv(math.Mod(mu*0.02, 1.0), 0.8, 1)
			}
			dst.SetRGBA(px, py, col)
		}
	}
}

// Perturb iterates the pixel offset dc against the reference orbit:
// δₙ₊₁ = 2·Zₙ·δₙ + δₙ² + dc, with the pixel's own iterate Zₙ + δₙ. It
// returns the smooth escape count and whether the pixel escaped within
// iterCount steps.
func Perturb(orbit *mandel.OrbitBuffer, iterCount int, dcr, dci float32) (float64, bool) {
	if iterCount > len(orbit) {
		iterCount = len(orbit)
	}

	var dr, di float32
	for n := 0; n < iterCount; n++ {
		zr, zi := orbit[n][0], orbit[n][1]

		xr := zr + dr
		xi := zi + di
		mag := xr*xr + xi*xi
		if mag > mandel.EscapeNormSq {
			return smooth(n, float64(mag)), true
		}

		// 2·Z·δ + δ² + dc
		nr := 2*(zr*dr-zi*di) + (dr*dr - di*di) + dcr
		ni := 2*(zr*di+zi*dr) + 2*dr*di + dci
		dr, di = nr, ni
	}
	return float64(iterCount), false
}

func smooth(n int, magSq float64) float64 {
	if math.IsInf(magSq, 0) {
		return float64(n)
	}
	// log|z| = ½·log|z|²
	return float64(n) + 1 - math.Log(0.5*math.Log(magSq))/math.Log(2)
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := tileH
		if oy+th > h {
			th = h - oy
		}

		for ox := 0; ox < w; ox += tileW {
			tw := tileW
			if ox+tw > w {
				tw = w - ox
			}

			tile := image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			)
			tiles = append(tiles, tile)
		}
	}

	return tiles
}

var _ mandel.Renderer = RendererImpl{}
