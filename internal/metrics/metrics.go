// Package metrics exposes prometheus instrumentation for the
// aggregation engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportsReceived counts snapshot reports received from task hosts.
	ReportsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sendgraph_reports_received_total",
		Help: "Snapshot reports received from task hosts.",
	})

	// ReportsRejected counts reports dropped because they failed to
	// decode or validate.
	ReportsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sendgraph_reports_rejected_total",
		Help: "Snapshot reports dropped due to decode or validation failure.",
	})

	// EdgeUpserts counts edge weight updates applied to the send graph.
	EdgeUpserts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sendgraph_edge_upserts_total",
		Help: "Edge weight updates applied to the send graph.",
	})

	// GraphNodes tracks the tasks currently present in the send graph.
	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sendgraph_nodes",
		Help: "Tasks currently present in the send graph.",
	})

	// GraphEdges tracks the distinct edges currently present in the
	// send graph.
	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sendgraph_edges",
		Help: "Distinct edges currently present in the send graph.",
	})
)
