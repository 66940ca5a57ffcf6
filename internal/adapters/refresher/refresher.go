// Package refresher re-fetches the contest collection on a fixed interval.
package refresher

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/concursos/pkg/logger"
)

const defaultInterval = 5 * time.Minute

// Target is reloaded on every tick.
type Target interface {
	Refresh(ctx context.Context)
}

// Refresher calls Target.Refresh on every tick until stopped.
type Refresher struct {
	target   Target
	interval time.Duration
	name     string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// New creates a refresher for target. It does nothing until Run is called.
func New(target Target, opts ...Option) *Refresher {
	r := &Refresher{
		target:   target,
		interval: defaultInterval,
		name:     "refresher",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Get().Named(r.name)
	}
	return r
}

// Run blocks, refreshing on every tick, until ctx is canceled or Shutdown
// is called. Run must be called at most once.
func (r *Refresher) Run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info(ctx, "refresher started", logger.String("interval", r.interval.String()))
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.shutdown:
			return
		case <-ticker.C:
			r.target.Refresh(ctx)
		}
	}
}

// Shutdown stops the loop and waits for it to exit or for ctx to expire.
func (r *Refresher) Shutdown(ctx context.Context) error {
	select {
	case <-r.shutdown:
	default:
		close(r.shutdown)
	}

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		r.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("%w: %w", ErrShutdownTimeout, ctx.Err())
	}
}
