package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
)

// saveSnapshot writes the last rendered frame as a numbered PNG in the
// working directory.
func (v *viewer) saveSnapshot() error {
	v.snapshots++
	filename := fmt.Sprintf("mandel_%03d.png", v.snapshots)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, v.img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("snapshot saved to %q", filename)
	return nil
}
