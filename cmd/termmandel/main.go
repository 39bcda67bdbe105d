// termmandel is the deep zoom viewer for a terminal. Every character cell
// shows two pixels stacked with a half block. Mouse wheel zooms towards the
// pointer, dragging pans, q or Esc quits.
package main

import (
	"log"
	"os"
)

func main() {
	status := &statusLine{}
	log.SetOutput(status)
	log.SetFlags(0)

	if err := run(status); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("run: %+v", err)
	}
}
