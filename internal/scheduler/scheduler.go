// Package scheduler reruns a refresh cycle on a fixed interval until the
// context is cancelled.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

// Cycle is one refresh pass. Its error is logged and does not stop the loop.
type Cycle func(ctx context.Context) error

// Scheduler owns the refresh loop.
type Scheduler struct {
	cycle    Cycle
	interval time.Duration
	clock    clockwork.Clock
	logger   *slog.Logger
	after    func(n int, err error)
}

// Option customises a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c clockwork.Clock) Option {
	return func(s *Scheduler) { s.clock = c }
}

// AfterCycle registers a hook called with the cycle number (starting at 1)
// and its error once each cycle finishes.
func AfterCycle(fn func(n int, err error)) Option {
	return func(s *Scheduler) { s.after = fn }
}

// NewScheduler creates a scheduler that runs cycle every interval.
func NewScheduler(cycle Cycle, interval time.Duration, logger *slog.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		cycle:    cycle,
		interval: interval,
		clock:    clockwork.NewRealClock(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run runs one immediate cycle, then one per interval. It returns nil when
// ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting refresher", "interval", s.interval.String())

	n := 0
	for {
		n++
		s.runOnce(ctx, n)

		select {
		case <-ctx.Done():
			s.logger.Info("shutting down refresher", "cycles", n)
			return nil
		case <-s.clock.After(s.interval):
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, n int) {
	start := s.clock.Now()
	err := s.cycle(ctx)
	if err != nil && ctx.Err() == nil {
		s.logger.Error("refresh failed", "cycle", n, "error", err)
	} else {
		s.logger.Debug("refresh done", "cycle", n, "elapsed", s.clock.Since(start))
	}
	if s.after != nil {
		s.after(n, err)
	}
}
