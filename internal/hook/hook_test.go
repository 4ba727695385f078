package hook

import (
	"testing"

	"Go2SendGraph/internal/config"
	"Go2SendGraph/internal/model"
)

// fakeContext records the metric registration the hook performs.
type fakeContext struct {
	taskID       model.TaskID
	name         string
	metric       model.Metric
	intervalSecs int
}

func (c *fakeContext) ThisTaskID() model.TaskID { return c.taskID }

func (c *fakeContext) RegisterMetric(name string, metric model.Metric, intervalSecs int) {
	c.name = name
	c.metric = metric
	c.intervalSecs = intervalSecs
}

func TestPrepare_DefaultInterval(t *testing.T) {
	h := New()
	ctx := &fakeContext{taskID: 3}

	if err := h.Prepare(map[string]any{}, ctx); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if ctx.name != MetricEmittedMessages {
		t.Errorf("Expected metric name %q, got %q", MetricEmittedMessages, ctx.name)
	}
	if ctx.intervalSecs != config.DefaultIntervalSecs {
		t.Errorf("Expected default interval %d, got %d", config.DefaultIntervalSecs, ctx.intervalSecs)
	}
	if ctx.metric == nil {
		t.Fatal("No metric registered")
	}
}

func TestPrepare_ConfiguredInterval(t *testing.T) {
	h := New()
	ctx := &fakeContext{taskID: 3}
	conf := map[string]any{config.ConfIntervalKey: 30}

	if err := h.Prepare(conf, ctx); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if ctx.intervalSecs != 30 {
		t.Errorf("Expected interval 30, got %d", ctx.intervalSecs)
	}
}

func TestPrepare_MalformedInterval(t *testing.T) {
	h := New()
	ctx := &fakeContext{taskID: 3}
	conf := map[string]any{config.ConfIntervalKey: "soon"}

	if err := h.Prepare(conf, ctx); err == nil {
		t.Error("Expected error for non-integer interval, got nil")
	}
}

func TestEmitAndCollect(t *testing.T) {
	h := New()
	ctx := &fakeContext{taskID: 1}
	if err := h.Prepare(map[string]any{}, ctx); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	h.Emit([]model.TaskID{2, 3})
	h.Emit([]model.TaskID{2})

	counts, ok := ctx.metric.GetValueAndReset().(map[model.TaskID]int64)
	if !ok {
		t.Fatalf("Unexpected metric value type %T", ctx.metric.GetValueAndReset())
	}
	if counts[2] != 2 || counts[3] != 1 {
		t.Errorf("Expected counts 2:2 3:1, got %v", counts)
	}

	// The poll must have reset the counters.
	again := ctx.metric.GetValueAndReset().(map[model.TaskID]int64)
	if len(again) != 0 {
		t.Errorf("Expected empty counts after reset, got %v", again)
	}
}
