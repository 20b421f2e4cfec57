package renderer

import (
	"sync/atomic"
	"time"

	"github.com/df07/go-banded-pathtracer/pkg/core"
)

// DefaultProgressInterval is how often the observer polls the counter
const DefaultProgressInterval = time.Second

// ProgressObserver periodically prints the share of completed pixels
type ProgressObserver struct {
	counter  *atomic.Int64
	total    int64
	interval time.Duration
	logger   core.Logger
}

// NewProgressObserver creates an observer over counter
func NewProgressObserver(counter *atomic.Int64, total int64, interval time.Duration, logger core.Logger) *ProgressObserver {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	return &ProgressObserver{
		counter:  counter,
		total:    total,
		interval: interval,
		logger:   logger,
	}
}

// Run reports once immediately and then every interval until the counter
// reaches the total. A closed done channel ends the loop after one last report.
func (po *ProgressObserver) Run(done <-chan struct{}) {
	ticker := time.NewTicker(po.interval)
	defer ticker.Stop()

	for {
		completed := po.counter.Load()
		po.report(completed)
		if completed >= po.total {
			return
		}

		select {
		case <-ticker.C:
		case <-done:
			if final := po.counter.Load(); final != completed {
				po.report(final)
			}
			return
		}
	}
}

func (po *ProgressObserver) report(completed int64) {
	po.logger.Printf("\rProgress: %.2f%%", Percent(completed, po.total))
}

// Percent returns completed/total as a percentage; an empty total counts as done
func Percent(completed, total int64) float64 {
	if total <= 0 {
		return 100
	}
	return float64(completed) / float64(total) * 100
}
