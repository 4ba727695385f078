package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The feed carries the same read-only document as the GET endpoint,
	// so cross-origin chart pages may connect.
	CheckOrigin: func(*http.Request) bool { return true },
}

// sendgraphFeedHandler upgrades the connection and pushes the current
// sankey document immediately and then on every push interval, until the
// client goes away.
func (s *Server) sendgraphFeedHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading sendgraph feed connection: %v", err)
		return
	}
	defer conn.Close()

	// Drain client frames so pings are answered and disconnects noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	if err := s.pushGraph(conn); err != nil {
		return
	}

	ticker := time.NewTicker(s.pushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := s.pushGraph(conn); err != nil {
				return
			}
		}
	}
}

func (s *Server) pushGraph(conn *websocket.Conn) error {
	doc, err := s.graph.ToJSON()
	if err != nil {
		log.Printf("Error serializing sendgraph: %v", err)
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, doc)
}
