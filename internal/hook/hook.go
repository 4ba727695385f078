// Package hook attaches send-behavior metrics collection to a task's
// lifecycle. The hook counts, per destination task, how many messages
// the task it is attached to emits, and registers an interval-driven
// metric with the host runtime so the counts are periodically collected
// and reset. The full send graph is assembled downstream, in the engine,
// from the collected per-task counts.
package hook

import (
	"log"

	"Go2SendGraph/internal/config"
	"Go2SendGraph/internal/model"
	"Go2SendGraph/internal/sendstats"
)

// MetricEmittedMessages is the name under which the per-task send counts
// are registered with the host runtime's metric scheduler.
const MetricEmittedMessages = "emitted_messages"

var _ model.TaskHook = (*SendMetrics)(nil)

// SendMetrics implements model.TaskHook. One instance is attached to
// each task, so the source of every counted message is implicit.
type SendMetrics struct {
	slot   *sendstats.Slot
	taskID model.TaskID
}

// New creates a hook with an empty counter slot.
func New() *SendMetrics {
	return &SendMetrics{slot: sendstats.NewSlot()}
}

// Prepare reads the collection interval from the host configuration and
// registers the emitted_messages metric. A malformed interval option is
// surfaced to the host, not defaulted away.
func (h *SendMetrics) Prepare(conf map[string]any, ctx model.TaskContext) error {
	intervalSecs, err := config.IntervalFromConf(conf)
	if err != nil {
		return err
	}

	h.taskID = ctx.ThisTaskID()
	log.Printf("Initializing send metrics hook for task %d with interval %ds", h.taskID, intervalSecs)

	ctx.RegisterMetric(MetricEmittedMessages, metricFunc(h.collect), intervalSecs)
	return nil
}

// collect swaps out the active counter set and returns its counts.
func (h *SendMetrics) collect() any {
	return h.slot.CollectAndReset().Counts()
}

// Emit counts one message per destination task.
func (h *SendMetrics) Emit(outTasks []model.TaskID) {
	for _, dst := range outTasks {
		h.slot.Increment(dst)
	}
}

// Cleanup implements model.TaskHook. There is nothing to release; any
// counts still in the slot are simply not reported.
func (h *SendMetrics) Cleanup() {}

// Slot exposes the hook's counter slot for hosts that drive collection
// themselves instead of through RegisterMetric.
func (h *SendMetrics) Slot() *sendstats.Slot {
	return h.slot
}

// metricFunc adapts a closure to the model.Metric interface.
type metricFunc func() any

func (f metricFunc) GetValueAndReset() any {
	return f()
}
