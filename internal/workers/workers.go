package workers

import (
	"context"
	"fmt"
)

// StepError reports which worker of a pipeline failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Workers runs its workers sequentially in the order given.
type Workers struct {
	workers []Worker
}

// NewWorkers builds a pipeline of workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run executes every worker in order. It stops at the first failure, or
// before the next worker once ctx is done, and returns a *[StepError]
// naming the worker that did not complete.
func (w *Workers) Run(ctx context.Context) error {
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: worker.Name(), Err: err}
		}
		if err := worker.Run(ctx); err != nil {
			return &StepError{Step: worker.Name(), Err: err}
		}
	}
	return nil
}

// Names lists the worker names in execution order.
func (w *Workers) Names() []string {
	names := make([]string, 0, len(w.workers))
	for _, worker := range w.workers {
		names = append(names, worker.Name())
	}
	return names
}
