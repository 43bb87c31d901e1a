// Package workers provides abstractions for running an ordered series of
// named steps. It defines the Worker interface and a Workers aggregate that
// runs its workers one after another, stopping at the first failure.
package workers

import "context"

// Worker is one named step of a pipeline.
//
// Example implementation:
//
//	type normalizeStep struct{ item models.Item }
//
//	func (s *normalizeStep) Name() string { return "normalize" }
//
//	func (s *normalizeStep) Run(ctx context.Context) error {
//	    // one blocking unit of work
//	}
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}

// funcWorker adapts a function to [Worker].
type funcWorker struct {
	name string
	run  func(ctx context.Context) error
}

// Step wraps run as a [Worker] called name.
func Step(name string, run func(ctx context.Context) error) Worker {
	return &funcWorker{name: name, run: run}
}

func (f *funcWorker) Name() string {
	return f.name
}

func (f *funcWorker) Run(ctx context.Context) error {
	return f.run(ctx)
}
