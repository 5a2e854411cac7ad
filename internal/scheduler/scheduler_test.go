package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsUntilCancelled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	job := JobFunc(func(ctx context.Context) error {
		if runs.Add(1) >= 3 {
			cancel()
		}
		return errors.New("failures do not stop the loop")
	})

	s := NewScheduler(job, 5*time.Millisecond, time.Second, logger)
	err := s.Start(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, runs.Load(), int32(3))
}

func TestScheduler_AppliesRunTimeout(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	var deadline atomic.Bool

	job := JobFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		deadline.Store(ok)
		cancel()
		return nil
	})

	_ = NewScheduler(job, time.Hour, time.Minute, logger).Start(ctx)

	assert.True(t, deadline.Load())
}
