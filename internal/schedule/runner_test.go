package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTask struct {
	runs       atomic.Int64
	inFlight   atomic.Int64
	maxSeen    atomic.Int64
	sleepFor   time.Duration
	lastRunErr error
}

func (t *countingTask) Run(ctx context.Context) error {
	cur := t.inFlight.Add(1)
	defer t.inFlight.Add(-1)
	for {
		max := t.maxSeen.Load()
		if cur <= max || t.maxSeen.CompareAndSwap(max, cur) {
			break
		}
	}
	t.runs.Add(1)
	if t.sleepFor > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(t.sleepFor):
		}
	}
	return t.lastRunErr
}

func (t *countingTask) Name() string {
	return "counting task"
}

func TestIntervalRunner_RunsImmediatelyAndOnTicks(t *testing.T) {
	task := &countingTask{}
	runner := NewIntervalRunner(task, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runner.Start(ctx)
		close(done)
	}()

	time.Sleep(110 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop on context cancel")
	}

	// Immediate first run plus roughly one per tick.
	runs := task.runs.Load()
	assert.GreaterOrEqual(t, runs, int64(3))
	assert.LessOrEqual(t, runs, int64(8))
}

func TestIntervalRunner_SkipsOverlappingTicks(t *testing.T) {
	task := &countingTask{sleepFor: 60 * time.Millisecond}
	runner := NewIntervalRunner(task, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runner.Start(ctx)
		close(done)
	}()

	time.Sleep(150 * time.Millisecond)
	cancel()
	<-done

	// Ticks fired while a cycle was in flight must be dropped, never run
	// concurrently with it.
	assert.Equal(t, int64(1), task.maxSeen.Load())
	assert.LessOrEqual(t, task.runs.Load(), int64(5))
}

func TestIntervalRunner_KeepsTickingAfterError(t *testing.T) {
	task := &countingTask{lastRunErr: context.DeadlineExceeded}
	runner := NewIntervalRunner(task, 15*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runner.Start(ctx)
		close(done)
	}()

	time.Sleep(80 * time.Millisecond)
	cancel()
	<-done

	require.GreaterOrEqual(t, task.runs.Load(), int64(2), "a failed cycle must not stop the runner")
}
