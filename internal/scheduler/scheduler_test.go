package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_ImmediateThenEveryInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var calls atomic.Int32
	done := make(chan int, 10)

	s := NewScheduler(func(context.Context) error {
		calls.Add(1)
		return nil
	}, 30*time.Second, discardLogger(),
		WithClock(clock),
		AfterCycle(func(n int, _ error) { done <- n }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	assert.Equal(t, 1, <-done)

	for want := 2; want <= 3; want++ {
		require.NoError(t, clock.BlockUntilContext(ctx, 1))
		clock.Advance(30 * time.Second)
		assert.Equal(t, want, <-done)
	}
	assert.Equal(t, int32(3), calls.Load())

	cancel()
	require.NoError(t, <-errCh)
}

func TestRun_NoCycleBeforeInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	done := make(chan int, 10)

	s := NewScheduler(func(context.Context) error { return nil }, time.Minute, discardLogger(),
		WithClock(clock),
		AfterCycle(func(n int, _ error) { done <- n }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Run(ctx) }()

	<-done
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(59 * time.Second)

	select {
	case n := <-done:
		t.Fatalf("cycle %d ran before the interval elapsed", n)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRun_ErrorDoesNotStopLoop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	errs := make(chan error, 10)

	s := NewScheduler(func(context.Context) error {
		return errors.New("server down")
	}, time.Second, discardLogger(),
		WithClock(clock),
		AfterCycle(func(_ int, err error) { errs <- err }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Run(ctx) }()

	assert.EqualError(t, <-errs, "server down")
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Second)
	assert.EqualError(t, <-errs, "server down")
}

func TestRun_CancelledContextReturnsNil(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScheduler(func(context.Context) error { return nil }, time.Hour, discardLogger(),
		WithClock(clockwork.NewFakeClock()))
	assert.NoError(t, s.Run(ctx))
}
