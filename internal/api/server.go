// Package api serves the aggregated send graph over HTTP: the sankey
// JSON document, a websocket feed of the same document, prometheus
// metrics, and a health probe.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"Go2SendGraph/internal/config"
	"Go2SendGraph/internal/graph"
)

// Server exposes a SendGraph over HTTP.
type Server struct {
	graph        *graph.SendGraph
	http         *http.Server
	pushInterval time.Duration
}

// NewServer builds the router and the underlying http.Server.
// pushInterval is how often the websocket feed sends the current graph;
// the collection interval is the natural choice.
func NewServer(cfg config.APIConfig, g *graph.SendGraph, pushInterval time.Duration) *Server {
	s := &Server{graph: g, pushInterval: pushInterval}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/sendgraph", s.sendgraphHandler).Methods("GET")
	r.HandleFunc("/api/v1/sendgraph/ws", s.sendgraphFeedHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/healthz", healthzHandler).Methods("GET")

	s.http = &http.Server{Addr: cfg.ListenAddr, Handler: r}
	return s
}

// Handler returns the server's router, for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start launches the HTTP server in the background.
func (s *Server) Start() {
	go func() {
		log.Printf("API server starting on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", s.http.Addr, err)
		}
	}()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) sendgraphHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.graph.Sankey()); err != nil {
		log.Printf("Error writing sendgraph response: %v", err)
	}
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
