package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zaplog "github.com/oggyb/ballou-sms/internal/logger/zap"
)

// fakeBatchProcessor counts ProcessBatch calls, signals when a batch starts,
// and blocks until released or its context ends.
type fakeBatchProcessor struct {
	callCount int32

	started chan struct{}
	block   chan struct{}
	err     error
}

func newFakeBatchProcessor() *fakeBatchProcessor {
	return &fakeBatchProcessor{
		started: make(chan struct{}, 1),
		block:   make(chan struct{}),
	}
}

func (f *fakeBatchProcessor) ProcessBatch(ctx context.Context) error {
	atomic.AddInt32(&f.callCount, 1)

	select {
	case f.started <- struct{}{}:
	default:
	}

	select {
	case <-f.block:
	case <-ctx.Done():
	}

	return f.err
}

func (f *fakeBatchProcessor) Calls() int32 {
	return atomic.LoadInt32(&f.callCount)
}

func newScheduler(t *testing.T, p BatchProcessor, interval, batchTimeout time.Duration) SchedulerService {
	t.Helper()

	s := NewSchedulerService(zaplog.NewNop(), p, interval, batchTimeout)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func waitStarted(t *testing.T, f *fakeBatchProcessor) {
	t.Helper()

	select {
	case <-f.started:
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("ProcessBatch was not called in time")
	}
}

func TestScheduler_StartsIdle(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := newScheduler(t, fake, 5*time.Millisecond, time.Second)

	time.Sleep(30 * time.Millisecond)

	assert.False(t, s.IsRunning())
	assert.Zero(t, fake.Calls())
}

func TestScheduler_StartTriggersBatch(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := newScheduler(t, fake, 10*time.Millisecond, 2*time.Second)

	require.NoError(t, s.Start())
	waitStarted(t, fake)

	assert.True(t, s.IsRunning(), "status must be answered while a batch runs")

	close(fake.block)
	require.NoError(t, s.Stop())
}

func TestScheduler_StopWaitsForBatchCompletion(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := newScheduler(t, fake, 5*time.Millisecond, 2*time.Second)

	require.NoError(t, s.Start())
	waitStarted(t, fake)

	done := make(chan error, 1)
	go func() {
		done <- s.Stop()
	}()

	select {
	case <-done:
		t.Fatalf("Stop() returned before batch finished")
	case <-time.After(50 * time.Millisecond):
	}

	close(fake.block)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("Stop() did not return after batch completion")
	}

	assert.False(t, s.IsRunning())
}

func TestScheduler_StopAfterBatchTimeout(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := newScheduler(t, fake, 5*time.Millisecond, 50*time.Millisecond)

	require.NoError(t, s.Start())
	waitStarted(t, fake)

	// The batch never gets released; the timeout ends it.
	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
}

func TestScheduler_StartStopStartFlow(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := newScheduler(t, fake, 10*time.Millisecond, 2*time.Second)

	require.NoError(t, s.Start())
	waitStarted(t, fake)

	close(fake.block)

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())

	before := fake.Calls()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, before, fake.Calls(), "no batches while stopped")

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())

	require.Eventually(t, func() bool { return fake.Calls() > before }, time.Second, 5*time.Millisecond)
}

func TestScheduler_BatchErrorKeepsRunning(t *testing.T) {
	fake := newFakeBatchProcessor()
	fake.err = errors.New("db down")
	close(fake.block)

	s := newScheduler(t, fake, 5*time.Millisecond, time.Second)
	require.NoError(t, s.Start())

	require.Eventually(t, func() bool { return fake.Calls() >= 3 }, time.Second, 5*time.Millisecond)
	assert.True(t, s.IsRunning())
}

func TestScheduler_Close(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := NewSchedulerService(zaplog.NewNop(), fake, 5*time.Millisecond, 10*time.Second)

	require.NoError(t, s.Start())
	waitStarted(t, fake)

	// Close cancels the blocked batch instead of waiting for the timeout.
	closed := make(chan struct{})
	go func() {
		_ = s.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatalf("Close() did not cancel the running batch")
	}

	assert.ErrorIs(t, s.Start(), ErrClosed)
	assert.ErrorIs(t, s.Stop(), ErrClosed)
	assert.False(t, s.IsRunning())
	assert.NoError(t, s.Close())
}

func TestScheduler_RaceStartStop(t *testing.T) {
	fake := newFakeBatchProcessor()
	s := newScheduler(t, fake, 5*time.Millisecond, 50*time.Millisecond)

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			_ = s.Start()
		}()

		go func() {
			defer wg.Done()
			_ = s.Stop()
		}()
	}

	wg.Wait()
}
