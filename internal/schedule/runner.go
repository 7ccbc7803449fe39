package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// IntervalRunner runs a task at a fixed period, starting with an immediate
// first run. Overlap strategy: SKIP — if a tick fires while the previous run
// is still in flight the tick is dropped, so full cycles never run
// concurrently.
type IntervalRunner struct {
	task     Task
	interval time.Duration

	mu sync.Mutex
}

func NewIntervalRunner(task Task, interval time.Duration) *IntervalRunner {
	return &IntervalRunner{
		task:     task,
		interval: interval,
	}
}

// Start blocks until ctx is cancelled.
func (r *IntervalRunner) Start(ctx context.Context) {
	slog.Info("starting runner", "task", r.task.Name(), "interval", r.interval)

	go r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("runner stopped", "task", r.task.Name())
			return
		case <-ticker.C:
			go r.runOnce(ctx)
		}
	}
}

func (r *IntervalRunner) runOnce(ctx context.Context) {
	if !r.mu.TryLock() {
		slog.Warn("previous cycle still running, skipping tick", "task", r.task.Name())
		return
	}
	defer r.mu.Unlock()

	start := time.Now()
	if err := r.task.Run(ctx); err != nil {
		slog.Error("cycle failed", "task", r.task.Name(), "error", err)
		return
	}
	slog.Debug("cycle finished", "task", r.task.Name(), "elapsed", time.Since(start))
}
