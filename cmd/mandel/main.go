// mandel is the interactive deep zoom viewer. Scroll to zoom towards the
// cursor, drag to pan, S saves a snapshot, Esc quits.
package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	// pixelScale is the number of window pixels per rendered pixel.
	pixelScale = 2
)

func main() {
	ebiten.SetWindowTitle("Mandelbrot")
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	log.Println("window created")
	log.Println("controls:")
	log.Println("  scroll: zoom in/out towards the cursor")
	log.Println("  drag:   pan")
	log.Println("  s:      save snapshot")
	log.Println("  esc:    quit")

	if err := ebiten.RunGame(newViewer(windowWidth/pixelScale, windowHeight/pixelScale)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run: %+v", err)
	}
	log.Println("close requested, exiting")
}
