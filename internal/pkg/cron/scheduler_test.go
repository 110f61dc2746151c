package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsJobImmediately(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestScheduler_StopWaitsForJobs(t *testing.T) {
	s := NewScheduler()

	var runs int64
	s.AddJob("count", 10*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return nil
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	after := atomic.LoadInt64(&runs)
	assert.GreaterOrEqual(t, after, int64(1))

	// No further runs once stopped.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt64(&runs))
}

func TestScheduler_FailingJobKeepsRunning(t *testing.T) {
	s := NewScheduler()

	var runs int64
	s.AddJob("flaky", 10*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt64(&runs, 1)
		return errors.New("boom")
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	// An error does not unschedule the job.
	assert.Greater(t, atomic.LoadInt64(&runs), int64(1))
}
