package statistics

import (
	"sort"
	"sync"
	"time"

	"github.com/caio/go-tdigest"
)

// Collector keeps a latency digest per routed operation, in milliseconds.
type Collector struct {
	mu      sync.Mutex
	digests map[string]*tdigest.TDigest
	counts  map[string]uint64
}

func NewCollector() *Collector {
	return &Collector{
		digests: map[string]*tdigest.TDigest{},
		counts:  map[string]uint64{},
	}
}

func (c *Collector) Record(op string, d time.Duration) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	td, ok := c.digests[op]
	if !ok {
		td, _ = tdigest.New()
		c.digests[op] = td
	}
	_ = td.Add(float64(d.Microseconds()) / 1000)
	c.counts[op]++
}

// Since records the time elapsed from start. Handy with defer.
func (c *Collector) Since(op string, start time.Time) {
	c.Record(op, time.Since(start))
}

// Quantile returns the q-quantile latency of op in milliseconds, or zero if
// nothing was recorded.
func (c *Collector) Quantile(op string, q float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	td, ok := c.digests[op]
	if !ok {
		return 0
	}
	return td.Quantile(q)
}

func (c *Collector) Count(op string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[op]
}

func (c *Collector) Ops() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ops := make([]string, 0, len(c.digests))
	for op := range c.digests {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}
