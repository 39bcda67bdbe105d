package main

import (
	"flag"
	"fmt"
	"log"
)

// main is the entry point for the frame stream server.
// Note: the server only runs the engine. Pixels are drawn by the clients from
// the uniforms and orbit it streams.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	flag.Parse()

	httpServer := webServer(*addr)

	log.Printf("stream server waiting for websocket connections on %s/ws", *addr)
	if err := httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}
