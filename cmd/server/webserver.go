package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

// webServer creates the http server with the websocket endpoint at /ws.
func webServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           newMux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler)
	return mux
}

// websocketHandler upgrades the request and runs one session on it until the
// client goes away.
func websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	log.Printf("got connection from: %s", r.RemoteAddr)
	err = serveSession(r.Context(), c)

	switch {
	case err == nil,
		websocket.CloseStatus(err) == websocket.StatusNormalClosure,
		websocket.CloseStatus(err) == websocket.StatusGoingAway:
		log.Printf("connection from %s closed", r.RemoteAddr)
		c.Close(websocket.StatusNormalClosure, "")
	case errors.Is(err, errBadEvent):
		log.Printf("err: session %s: %v", r.RemoteAddr, err)
		c.Close(websocket.StatusUnsupportedData, "bad input event")
	default:
		log.Printf("err: session %s: %v", r.RemoteAddr, err)
	}
}
