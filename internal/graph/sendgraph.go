// Package graph holds the aggregated send graph: a directed weighted
// graph over task ids whose edge weights are the most recently reported
// per-interval send counts.
package graph

import (
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"Go2SendGraph/internal/model"
)

// EdgeKey identifies a directed edge by its endpoints.
type EdgeKey struct {
	From model.TaskID
	To   model.TaskID
}

// WeightedEdge is one edge of an exported snapshot.
type WeightedEdge struct {
	From   model.TaskID
	To     model.TaskID
	Weight uint64
}

// Snapshot is an immutable point-in-time copy of the graph, with nodes
// sorted by id and edges sorted by (from, to) so the output is
// deterministic for a given graph state.
type Snapshot struct {
	Nodes []model.TaskID
	Edges []WeightedEdge
}

// SendGraph accumulates the latest known edge weight for every
// (from, to) pair reported by any task. All methods hold a single mutex,
// so instances can be shared between the engine and the API layer; call
// rates are low, one report per task per collection interval.
type SendGraph struct {
	mu    sync.Mutex
	nodes map[model.TaskID]struct{}
	edges map[EdgeKey]uint64
}

// New creates an empty send graph.
func New() *SendGraph {
	return &SendGraph{
		nodes: make(map[model.TaskID]struct{}),
		edges: make(map[EdgeKey]uint64),
	}
}

// SetEdgeWeight sets the weight of the edge from -> to, replacing any
// previous value, and registers both endpoints as nodes. Weights replace
// rather than accumulate: the graph shows the most recent interval's
// counts, not totals across all time.
func (g *SendGraph) SetEdgeWeight(from, to model.TaskID, weight uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}
	g.edges[EdgeKey{From: from, To: to}] = weight
}

// AddNode registers a node without any edge. Edge endpoints are
// registered automatically by SetEdgeWeight; this is for tasks that have
// not sent anything yet.
func (g *SendGraph) AddNode(id model.TaskID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[id] = struct{}{}
}

// Fold applies one task's snapshot report: every (destination, count)
// pair becomes the weight of the edge from the reporting task to that
// destination. The caller is expected to have validated the report.
func (g *SendGraph) Fold(r model.SnapshotReport) {
	for dst, count := range r.Counts {
		g.SetEdgeWeight(r.TaskID, dst, uint64(count))
	}
}

// Size returns the current number of nodes and edges.
func (g *SendGraph) Size() (nodes, edges int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.nodes), len(g.edges)
}

// Snapshot copies the graph under the same lock that SetEdgeWeight
// holds, so an exported edge always has both endpoints in the node set.
func (g *SendGraph) Snapshot() Snapshot {
	g.mu.Lock()
	nodes := make([]model.TaskID, 0, len(g.nodes))
	for id := range g.nodes {
		nodes = append(nodes, id)
	}
	edges := make([]WeightedEdge, 0, len(g.edges))
	for key, weight := range g.edges {
		edges = append(edges, WeightedEdge{From: key.From, To: key.To, Weight: weight})
	}
	g.mu.Unlock()

	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return Snapshot{Nodes: nodes, Edges: edges}
}

// Sankey shapes a snapshot into the node-link document the chart
// renderer consumes.
func (g *SendGraph) Sankey() model.SankeyGraph {
	snap := g.Snapshot()
	doc := model.SankeyGraph{
		Nodes: make([]model.SankeyNode, 0, len(snap.Nodes)),
		Graph: make([]model.SankeyLink, 0, len(snap.Edges)),
	}
	for _, id := range snap.Nodes {
		doc.Nodes = append(doc.Nodes, model.SankeyNode{Name: strconv.Itoa(int(id))})
	}
	for _, e := range snap.Edges {
		doc.Graph = append(doc.Graph, model.SankeyLink{Source: e.From, Target: e.To, Value: e.Weight})
	}
	return doc
}

// ToJSON serializes the sankey document.
func (g *SendGraph) ToJSON() ([]byte, error) {
	return json.Marshal(g.Sankey())
}
