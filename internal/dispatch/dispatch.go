// Package dispatch runs operations off the calling goroutine so an
// interactive surface is never blocked by a network round trip. Two policies
// exist: critical work is awaited and fails fast, background work is
// fire-and-continue with failures only logged.
package dispatch

import (
	"context"
	"log/slog"
	"sync"
)

// Future is the handle for an awaited operation.
type Future struct {
	done chan struct{}
	err  error
}

// Wait blocks until the operation finishes and returns its error.
func (f *Future) Wait() error {
	<-f.done

	return f.err
}

// Runner launches operations under the two failure-tolerance policies. The
// zero value is not usable; construct with New.
type Runner struct {
	logger *slog.Logger
	wg     sync.WaitGroup
}

// New is the constructor for Runner.
func New(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Critical runs fn on its own goroutine and returns a Future the caller must
// wait on. Any error aborts the operation the caller had planned.
func (r *Runner) Critical(ctx context.Context, op string, fn func(ctx context.Context) error) *Future {
	f := &Future{done: make(chan struct{})}

	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		defer close(f.done)

		if f.err = fn(ctx); f.err != nil {
			r.logger.Debug("Critical operation failed",
				slog.String("operation", op),
				slog.Any("error", f.err),
			)
		}
	}()

	return f
}

// Background runs fn on its own goroutine. A failure is logged and otherwise
// discarded; the caller proceeds regardless.
func (r *Runner) Background(ctx context.Context, op string, fn func(ctx context.Context) error) {
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		if err := fn(ctx); err != nil {
			r.logger.Warn("Background operation failed",
				slog.String("operation", op),
				slog.Any("error", err),
			)
		}
	}()
}

// Drain blocks until every launched operation has finished. Used on
// shutdown so background work is not cut off mid-flight.
func (r *Runner) Drain() {
	r.wg.Wait()
}
