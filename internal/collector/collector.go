// Package collector drives periodic snapshot collection for hosts that
// have no metric scheduler of their own: it swaps a task's counter slot
// on a fixed interval and hands non-empty snapshots to a publish
// function.
package collector

import (
	"log"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"Go2SendGraph/internal/model"
	"Go2SendGraph/internal/sendstats"
)

// PublishFunc ships one collected snapshot. A failure is logged and the
// snapshot dropped; the transport offers no delivery guarantee anyway.
type PublishFunc func(taskID model.TaskID, counts map[model.TaskID]int64) error

// Collector periodically collects and publishes one task's send counts.
type Collector struct {
	taskID   model.TaskID
	slot     *sendstats.Slot
	interval time.Duration
	publish  PublishFunc
	clk      clock.Clock

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a collector for one task's slot. Pass clock.New() outside
// of tests.
func New(taskID model.TaskID, slot *sendstats.Slot, interval time.Duration, publish PublishFunc, clk clock.Clock) *Collector {
	return &Collector{
		taskID:   taskID,
		slot:     slot,
		interval: interval,
		publish:  publish,
		clk:      clk,
		done:     make(chan struct{}),
	}
}

// Start launches the collection loop.
func (c *Collector) Start() {
	c.wg.Add(1)
	go c.run()
}

// Stop triggers a final collection and waits for the loop to exit.
func (c *Collector) Stop() {
	close(c.done)
	c.wg.Wait()
}

func (c *Collector) run() {
	defer c.wg.Done()
	ticker := c.clk.Ticker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.done:
			// Final snapshot so a shutdown loses at most in-flight sends.
			c.collect()
			return
		}
	}
}

// collect swaps out the active counter set and publishes it if there is
// anything in it.
func (c *Collector) collect() {
	counts := c.slot.CollectAndReset().Counts()
	if len(counts) == 0 {
		return
	}
	if err := c.publish(c.taskID, counts); err != nil {
		log.Printf("Error publishing snapshot for task %d: %v", c.taskID, err)
	}
}
