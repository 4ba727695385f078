// Package sendstats implements the per-task send counters: an
// auto-vivifying map from destination task id to message counter, and an
// atomically swappable holder that makes periodic collect-and-reset
// race-free against concurrent senders.
package sendstats

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"Go2SendGraph/internal/model"
)

// CounterSet maps destination task ids to message counters. A lookup for
// an id that is not yet present creates a zero-valued counter before
// returning, so callers never need an existence check. Counters only
// ever increment; values are reset by swapping the whole set out through
// a Slot, never in place.
type CounterSet struct {
	mu       sync.RWMutex
	counters map[model.TaskID]*atomic.Int64
}

// NewCounterSet creates an empty counter set.
func NewCounterSet() *CounterSet {
	return &CounterSet{counters: make(map[model.TaskID]*atomic.Int64)}
}

// counter returns the counter for id, vivifying a zero-valued one on
// first access. The fast path is a read lock on the index map; the
// counter itself is atomic, so increments never contend with each other.
func (s *CounterSet) counter(id model.TaskID) *atomic.Int64 {
	s.mu.RLock()
	c := s.counters[id]
	s.mu.RUnlock()
	if c != nil {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c = s.counters[id]; c == nil {
		c = new(atomic.Int64)
		s.counters[id] = c
	}
	return c
}

// Increment adds one to the counter for dst. Safe for any number of
// concurrent callers without external locking.
func (s *CounterSet) Increment(dst model.TaskID) {
	s.counter(dst).Add(1)
}

// Get returns the current count for dst, vivifying a zero entry if the
// id has not been seen before.
func (s *CounterSet) Get(dst model.TaskID) int64 {
	return s.counter(dst).Load()
}

// Len returns the number of destinations present in the set.
func (s *CounterSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.counters)
}

// Counts copies the current counter values into a plain map, which is
// what gets handed to the transport layer for serialization.
func (s *CounterSet) Counts() map[model.TaskID]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[model.TaskID]int64, len(s.counters))
	for id, c := range s.counters {
		counts[id] = c.Load()
	}
	return counts
}

// String renders the counters as "id:count" pairs sorted by id.
func (s *CounterSet) String() string {
	counts := s.Counts()
	ids := make([]model.TaskID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	for _, id := range ids {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%d", id, counts[id])
	}
	return sb.String()
}
