// Package engine assembles the global send graph from the snapshot
// reports of all tasks.
package engine

import (
	"log"

	"Go2SendGraph/internal/config"
	"Go2SendGraph/internal/graph"
	"Go2SendGraph/internal/metrics"
	"Go2SendGraph/internal/model"
	"Go2SendGraph/internal/report"
)

// Engine subscribes to snapshot reports and folds them into a SendGraph.
type Engine struct {
	sub   *report.Subscriber
	graph *graph.SendGraph
}

// New connects the snapshot subscriber and creates an empty send graph.
func New(cfg *config.Config) (*Engine, error) {
	sub, err := report.NewSubscriber(cfg.NATS)
	if err != nil {
		return nil, err
	}
	return &Engine{sub: sub, graph: graph.New()}, nil
}

// Graph returns the engine's send graph for the API layer.
func (e *Engine) Graph() *graph.SendGraph {
	return e.graph
}

// Start begins consuming snapshot reports.
func (e *Engine) Start() error {
	return e.sub.Start(e.apply)
}

// Stop shuts down the subscription. The graph keeps its last state so
// the API can still serve it during shutdown.
func (e *Engine) Stop() {
	e.sub.Close()
}

// apply folds one report into the graph. Counters only ever increment,
// so a negative count means a corrupt or misbehaving sender; such
// reports are rejected whole rather than silently coerced.
func (e *Engine) apply(r model.SnapshotReport) {
	metrics.ReportsReceived.Inc()

	for dst, count := range r.Counts {
		if count < 0 {
			metrics.ReportsRejected.Inc()
			log.Printf("Rejecting snapshot report %s from task %d: negative count %d for destination %d",
				r.ReportID, r.TaskID, count, dst)
			return
		}
	}

	e.graph.Fold(r)
	metrics.EdgeUpserts.Add(float64(len(r.Counts)))

	nodes, edges := e.graph.Size()
	metrics.GraphNodes.Set(float64(nodes))
	metrics.GraphEdges.Set(float64(edges))
}
