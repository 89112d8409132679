package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/jobwise/internal/logger"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and waits for all of them to
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}

// Ticker calls task once per interval until its context is done. The first
// call happens one interval after Run starts.
type Ticker struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context)

	logger *logger.Logger
}

func NewTicker(name string, interval time.Duration, task func(ctx context.Context), logger *logger.Logger) *Ticker {
	return &Ticker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger,
	}
}

func (t *Ticker) Run(ctx context.Context) {
	if t.interval <= 0 {
		t.logger.Warn().Str("worker", t.name).Msg("worker disabled: non-positive interval")
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.logger.Debug().Str("worker", t.name).Dur("interval", t.interval).Msg("worker started")
	for {
		select {
		case <-ctx.Done():
			t.logger.Debug().Str("worker", t.name).Msg("worker stopped")
			return
		case <-ticker.C:
			t.task(ctx)
		}
	}
}
