package schedule

import "context"

// Task is one runnable unit of periodic work. Run must be safe to call again
// after returning an error; a failed cycle is retried on the next tick.
type Task interface {
	Run(ctx context.Context) error
	Name() string
}
