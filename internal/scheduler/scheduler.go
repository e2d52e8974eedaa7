package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oggyb/ballou-sms/internal/logger"
)

// BatchProcessor is the dependency that actually does the work.
// The scheduler will call ProcessBatch on a fixed interval.
type BatchProcessor interface {
	ProcessBatch(ctx context.Context) error
}

// SchedulerService exposes a small control surface for the scheduler.
// Start/Stop are synchronous controls, and IsRunning reports
// whether the scheduler is currently accepting ticks.
type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
	// Close cancels any running batch and terminates the control loop.
	// The scheduler cannot be used afterwards.
	Close() error
}

// DefaultInterval is used when no custom interval is provided.
const DefaultInterval = 2 * time.Minute

// DefaultBatchTimeout is how long we allow a single batch to run
// before cancelling it via context timeout. It outlasts the default
// per-message delivery timeout.
const DefaultBatchTimeout = 2 * time.Minute

// controlTimeout is how long we wait for the control loop to
// accept a command and acknowledge it.
const controlTimeout = 2 * time.Second

var (
	ErrClosed        = errors.New("scheduler closed")
	ErrNotResponding = errors.New("scheduler control loop not responding")
)

// controlOp represents the kind of command sent into the internal control loop.
type controlOp int

const (
	opStart controlOp = iota
	opStop
	opStatus
)

func (op controlOp) String() string {
	switch op {
	case opStart:
		return "Start"
	case opStop:
		return "Stop"
	default:
		return "Status"
	}
}

// controlMsg is sent over the ctrl channel to drive the scheduler's state.
// resp is buffered so the loop never blocks on a caller that gave up.
type controlMsg struct {
	op   controlOp
	resp chan bool
}

// schedulerService owns the internal state and runs the control loop.
// All mutable state lives in the loop goroutine, so we don't need locks.
type schedulerService struct {
	lg           logger.Lite
	processor    BatchProcessor
	interval     time.Duration
	batchTimeout time.Duration

	ctrl      chan controlMsg
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewSchedulerService creates a new scheduler with the given interval
// and batch timeout. If any of them is <= 0, defaults are used instead.
// The scheduler starts idle.
func NewSchedulerService(
	lg logger.Lite,
	processor BatchProcessor,
	interval time.Duration,
	batchTimeout time.Duration,
) SchedulerService {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if batchTimeout <= 0 {
		batchTimeout = DefaultBatchTimeout
	}

	s := &schedulerService{
		lg:           lg,
		processor:    processor,
		interval:     interval,
		batchTimeout: batchTimeout,
		ctrl:         make(chan controlMsg),
		quit:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	go s.loop()

	return s
}

// Start tells the scheduler to begin processing ticks.
func (s *schedulerService) Start() error {
	_, err := s.send(opStart, controlTimeout)
	return err
}

// Stop tells the scheduler to stop accepting new ticks. If a batch is
// running, Stop returns once it finishes or hits the batch timeout.
func (s *schedulerService) Stop() error {
	_, err := s.send(opStop, s.batchTimeout+controlTimeout)
	return err
}

// IsRunning reports whether the scheduler is in "running" mode. It does not
// mean that a batch is actively executing.
func (s *schedulerService) IsRunning() bool {
	running, err := s.send(opStatus, controlTimeout)
	return err == nil && running
}

func (s *schedulerService) Close() error {
	s.closeOnce.Do(func() {
		close(s.quit)
	})
	<-s.done
	return nil
}

func (s *schedulerService) send(op controlOp, wait time.Duration) (bool, error) {
	resp := make(chan bool, 1)

	select {
	case s.ctrl <- controlMsg{op: op, resp: resp}:
	case <-s.done:
		return false, ErrClosed
	case <-time.After(controlTimeout):
		return false, fmt.Errorf("[Scheduler] %s: %w", op, ErrNotResponding)
	}

	select {
	case v := <-resp:
		return v, nil
	case <-time.After(wait):
		return false, fmt.Errorf("[Scheduler] %s: acknowledgement timeout", op)
	}
}

// loop is the heart of the scheduler. It owns all mutable state and reacts
// to control messages, timer ticks and batch completion.
func (s *schedulerService) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// running: whether we should accept new ticks
	// inBatch: whether a batch is currently executing
	running := false
	inBatch := false

	batchDone := make(chan error, 1)
	cancelBatch := context.CancelFunc(func() {})

	// pendingStop is completed once the current batch finishes,
	// if Stop was called mid-batch.
	var pendingStop chan bool

	for {
		select {
		case <-s.quit:
			if inBatch {
				cancelBatch()
				<-batchDone
			}
			if pendingStop != nil {
				pendingStop <- true
			}
			s.lg.Infow("[Scheduler] Closed")
			return

		case msg := <-s.ctrl:
			switch msg.op {
			case opStart:
				if !running {
					s.lg.Infow("[Scheduler] Started", "interval", s.interval.String(), "batch_timeout", s.batchTimeout.String())
				}
				running = true
				msg.resp <- true

			case opStop:
				if !running && !inBatch {
					msg.resp <- true
					continue
				}

				s.lg.Infow("[Scheduler] Stop requested. Waiting for current batch (if any)...")
				running = false

				if inBatch {
					if pendingStop != nil {
						pendingStop <- true
					}
					pendingStop = msg.resp
				} else {
					msg.resp <- true
				}

			case opStatus:
				msg.resp <- running
			}

		case <-ticker.C:
			if !running || inBatch {
				continue
			}

			inBatch = true

			// Time-bound the batch so Stop doesn't hang forever
			// if ProcessBatch never returns.
			ctx, cancel := context.WithTimeout(context.Background(), s.batchTimeout)
			cancelBatch = cancel

			go func() {
				batchDone <- s.processor.ProcessBatch(ctx)
			}()

		case err := <-batchDone:
			cancelBatch()
			inBatch = false

			if err != nil {
				s.lg.Errorw("[Scheduler] Batch failed", err)
			}

			if pendingStop != nil {
				pendingStop <- true
				pendingStop = nil
				s.lg.Infow("[Scheduler] Stopped")
			}
		}
	}
}
