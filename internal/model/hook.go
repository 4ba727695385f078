package model

// Metric is a value source that the host runtime polls on a fixed
// interval. GetValueAndReset returns the value accumulated since the
// previous poll and resets the underlying accumulator.
type Metric interface {
	GetValueAndReset() any
}

// TaskContext is the slice of the host runtime's per-task context that
// the send metrics hook needs: the identity of the task the hook is
// attached to, and a way to register an interval-driven metric.
type TaskContext interface {
	ThisTaskID() TaskID
	RegisterMetric(name string, metric Metric, intervalSecs int)
}

// TaskHook receives task lifecycle callbacks from the host runtime.
type TaskHook interface {
	// Prepare is called once when the task is set up. conf is the host
	// runtime's configuration map for the topology.
	Prepare(conf map[string]any, ctx TaskContext) error

	// Emit is called on every message emission with the ids of all tasks
	// the message was routed to.
	Emit(outTasks []TaskID)

	// Cleanup is called once when the task shuts down.
	Cleanup()
}
