// sg-agent hosts a small simulated topology and reports its send graph
// over NATS. Every task gets a send metrics hook; a collector snapshots
// each task's counters on the configured interval and publishes them for
// the engine to aggregate.
package main

import (
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"

	"Go2SendGraph/internal/collector"
	"Go2SendGraph/internal/config"
	"Go2SendGraph/internal/hook"
	"Go2SendGraph/internal/model"
	"Go2SendGraph/internal/report"
)

// Simulated wiring: task 1 fans out to 2 and 3, which both feed 4.
var routing = map[model.TaskID][]model.TaskID{
	1: {2, 3},
	2: {4},
	3: {4},
}

func main() {
	log.Println("Starting sg-agent...")

	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	pub, err := report.NewPublisher(cfg.NATS)
	if err != nil {
		log.Fatalf("Failed to create publisher: %v", err)
	}
	defer pub.Close()

	interval := time.Duration(cfg.Collector.IntervalSecs) * time.Second

	stop := make(chan struct{})
	var wg sync.WaitGroup
	var collectors []*collector.Collector

	for taskID, outTasks := range routing {
		h := hook.New()
		c := collector.New(taskID, h.Slot(), interval, pub.Publish, clock.New())
		c.Start()
		collectors = append(collectors, c)

		wg.Add(1)
		go func(h *hook.SendMetrics, out []model.TaskID) {
			defer wg.Done()
			emit(h, out, stop)
		}(h, outTasks)

		log.Printf("Started task %d routing to %v", taskID, outTasks)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	log.Println("Shutdown signal received, stopping tasks...")
	close(stop)
	wg.Wait()
	for _, c := range collectors {
		c.Stop()
	}
	log.Println("Shutdown complete.")
}

// emit sends messages to all routed destinations at a jittered rate.
func emit(h *hook.SendMetrics, outTasks []model.TaskID, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-time.After(time.Duration(1+rand.Intn(20)) * time.Millisecond):
			h.Emit(outTasks)
		}
	}
}
