package metrics

import (
	"sync/atomic"
	"time"
)

// Collector accumulates in-process request counters for the operational
// snapshot endpoint. All counters are monotonic since process start.
type Collector struct {
	started time.Time

	requests     atomic.Uint64
	clientErrors atomic.Uint64
	serverErrors atomic.Uint64
	rateLimited  atomic.Uint64
	durationMs   atomic.Uint64
}

func New() *Collector {
	return &Collector{started: time.Now()}
}

// Record tallies one completed request. Throttled requests are tracked
// separately from client errors so a burst of 429s does not read as broken
// callers.
func (c *Collector) Record(status int, duration time.Duration) {
	c.requests.Add(1)
	c.durationMs.Add(uint64(duration.Milliseconds()))

	switch {
	case status == 429:
		c.rateLimited.Add(1)
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := c.requests.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(c.durationMs.Load()) / float64(total)
	}
	return map[string]any{
		"requestsTotal":     total,
		"clientErrorsTotal": c.clientErrors.Load(),
		"serverErrorsTotal": c.serverErrors.Load(),
		"rateLimitedTotal":  c.rateLimited.Load(),
		"avgDurationMs":     avg,
		"uptimeSeconds":     int64(time.Since(c.started).Seconds()),
	}
}
