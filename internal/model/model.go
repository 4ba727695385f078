package model

import "time"

// TaskID identifies a single task (processing unit) within a topology.
// IDs are assigned by the host runtime; this package attaches no meaning
// to them beyond identity.
type TaskID int

// SnapshotReport carries one collection interval's send counts for a
// single task from its host process to the aggregation engine. Counts
// maps destination task ids to the number of messages sent to them; the
// source task id is explicit in TaskID.
type SnapshotReport struct {
	ReportID string
	TaskID   TaskID
	TakenAt  time.Time
	Counts   map[TaskID]int64
}

// SankeyNode, SankeyLink and SankeyGraph are the JSON shapes consumed by
// the sankey chart renderer. The field names are fixed by the renderer
// and must not change.
type SankeyNode struct {
	Name string `json:"name"`
}

type SankeyLink struct {
	Source TaskID `json:"source"`
	Target TaskID `json:"target"`
	Value  uint64 `json:"value"`
}

type SankeyGraph struct {
	Nodes []SankeyNode `json:"nodes"`
	Graph []SankeyLink `json:"graph"`
}
