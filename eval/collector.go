package eval

import "sync"

// Collector accumulates per-image results as an upstream consumer (e.g. a
// streaming inference loop) produces them. It exists so that producers do
// not need to share a growing slice: Add may be called from multiple
// goroutines, and Snapshot hands ComputeMAP the complete, immutable set once
// the run is over.
type Collector struct {
	mu      sync.Mutex
	batches []ImageResult
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends one image's results to the run.
func (c *Collector) Add(res ImageResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches = append(c.batches, res)
}

// Len returns the number of images collected so far.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.batches)
}

// Snapshot returns a copy of everything collected so far, in insertion
// order. The copy is safe to hand to ComputeMAP while producers keep adding.
func (c *Collector) Snapshot() []ImageResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ImageResult, len(c.batches))
	copy(out, c.batches)
	return out
}
