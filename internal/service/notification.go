package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/oggyb/ballou-sms/internal/cache"
	domain "github.com/oggyb/ballou-sms/internal/domain/notification"
	"github.com/oggyb/ballou-sms/internal/logger"
	"github.com/oggyb/ballou-sms/internal/notify"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// destinationKey is the gateway option carrying the recipient number.
const destinationKey = "D"

type NotificationService interface {
	// Send delivers one notification right away and records the outcome.
	// The Response is nil only when the provider answer was unreadable.
	Send(ctx context.Context, to, content string, options map[string]string) (*domain.Notification, *notify.Response, error)
	// Enqueue stores a pending notification for the scheduler to pick up.
	Enqueue(ctx context.Context, to, content string) (*domain.Notification, error)
	ProcessBatch(ctx context.Context) error
	List(ctx context.Context, status domain.Status, page, limit int) ([]*domain.Notification, int64, error)
	Stats(ctx context.Context) (Stats, error)
}

// Stats are the delivery counters kept in the cache.
type Stats struct {
	Sent     int64 `json:"sent"`
	Failed   int64 `json:"failed"`
	Rejected int64 `json:"rejected"`
}

type notificationService struct {
	lg      logger.Lite
	repo    domain.Repository
	gateway notify.Gateway
	cache   cache.Cache

	// Batch processing configuration, injected from config at startup.
	batchSize         int
	maxWorkers        int
	perMessageTimeout time.Duration
}

// NewNotificationService creates a notification service with the given
// dependencies and batch processing settings. cache may be nil, in which case
// no counters are kept.
func NewNotificationService(
	lg logger.Lite,
	repo domain.Repository,
	gateway notify.Gateway,
	cache cache.Cache,
	batchSize int,
	maxWorkers int,
	perMessageTimeout time.Duration,
) NotificationService {
	if batchSize <= 0 {
		batchSize = 100
	}
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if perMessageTimeout <= 0 {
		perMessageTimeout = 90 * time.Second
	}

	return &notificationService{
		lg:                lg,
		repo:              repo,
		gateway:           gateway,
		cache:             cache,
		batchSize:         batchSize,
		maxWorkers:        maxWorkers,
		perMessageTimeout: perMessageTimeout,
	}
}

func (s *notificationService) Send(ctx context.Context, to, content string, options map[string]string) (*domain.Notification, *notify.Response, error) {
	n, err := domain.NewNotification(to, content)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.Save(ctx, n); err != nil {
		return nil, nil, fmt.Errorf("save notification: %w", err)
	}

	resp, err := s.deliver(ctx, n, options)
	return n, resp, err
}

func (s *notificationService) Enqueue(ctx context.Context, to, content string) (*domain.Notification, error) {
	n, err := domain.NewNotification(to, content)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("save notification: %w", err)
	}

	s.lg.Infow("[Service] Notification queued", "id", n.ID.String())
	return n, nil
}

func (s *notificationService) List(ctx context.Context, status domain.Status, page, limit int) ([]*domain.Notification, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, status)
	}
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return s.repo.List(ctx, status, page, limit)
}

func (s *notificationService) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	if s.cache == nil {
		return st, nil
	}

	for key, dst := range map[string]*int64{
		cache.SentCounter:     &st.Sent,
		cache.FailedCounter:   &st.Failed,
		cache.RejectedCounter: &st.Rejected,
	} {
		v, err := s.cache.Get(ctx, key)
		if errors.Is(err, cache.ErrNotFound) {
			continue
		}
		if err != nil {
			return Stats{}, fmt.Errorf("read counter %s: %w", key, err)
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Stats{}, fmt.Errorf("parse counter %s: %w", key, err)
		}
		*dst = n
	}

	return st, nil
}

// ProcessBatch claims a batch of pending notifications from the repository
// and delivers them using a small worker pool. Notifications the batch context
// interrupts before the provider answered go back to PENDING.
func (s *notificationService) ProcessBatch(ctx context.Context) error {
	batchSize := s.batchSize
	maxWorkers := s.maxWorkers
	perMessageTimeout := s.perMessageTimeout

	pending, err := s.repo.ClaimPending(ctx, batchSize)
	if err != nil {
		return fmt.Errorf("failed to claim pending notifications: %w", err)
	}

	// Nothing to do; exit quickly so the scheduler can tick again.
	if len(pending) == 0 {
		return nil
	}

	s.lg.Infow("[Service] Processing batch", "count", len(pending), "batch_size", batchSize, "max_workers", maxWorkers)

	workerCount := len(pending)
	if workerCount > maxWorkers {
		workerCount = maxWorkers
	}

	var wg sync.WaitGroup

	// Each worker processes a stride of the batch: with 4 workers, worker 1
	// takes indices 0, 4, 8 and so on.
	for w := 0; w < workerCount; w++ {
		wg.Add(1)

		go func(workerID, start int) {
			defer wg.Done()

			for i := start; i < len(pending); i += workerCount {
				n := pending[i]

				if ctx.Err() != nil {
					s.release(ctx, n, workerID)
					continue
				}

				msgCtx, cancel := context.WithTimeout(ctx, perMessageTimeout)
				resp, err := s.gateway.Notify(msgCtx, n.Content, gatewayOptions(n, nil))
				cancel()

				if interrupted(ctx, resp, err) {
					s.release(ctx, n, workerID)
					continue
				}

				if _, err := s.record(ctx, n, resp, err); err != nil {
					s.lg.Errorw("[Worker] Failed to process notification", err, "worker", workerID, "id", n.ID.String())
				}
			}
		}(w+1, w)
	}

	wg.Wait()

	s.lg.Infow("[Service] Batch worker pool completed", "count", len(pending))
	return nil
}

// interrupted reports whether a delivery ended without a provider answer
// because the batch context was done.
func interrupted(batch context.Context, resp *notify.Response, err error) bool {
	if batch.Err() == nil || err != nil || resp == nil || resp.Success() {
		return false
	}
	status, _ := resp.RawHTTP()
	return status == 0
}

// release hands a claimed notification back to the queue without counting it.
func (s *notificationService) release(ctx context.Context, n *domain.Notification, workerID int) {
	n.Release()
	s.persist(ctx, n)
	s.lg.Warnw("[Worker] Batch interrupted, notification released", "worker", workerID, "id", n.ID.String())
}

// deliver sends n through the gateway, then persists and counts the outcome.
func (s *notificationService) deliver(ctx context.Context, n *domain.Notification, options map[string]string) (*notify.Response, error) {
	resp, err := s.gateway.Notify(ctx, n.Content, gatewayOptions(n, options))
	return s.record(ctx, n, resp, err)
}

// gatewayOptions copies the caller options and pins the destination to n.To.
func gatewayOptions(n *domain.Notification, options map[string]string) map[string]string {
	opts := make(map[string]string, len(options)+1)
	for k, v := range options {
		opts[k] = v
	}
	opts[destinationKey] = n.To
	return opts
}

// record applies a gateway outcome to n, persists it and bumps the matching counter.
func (s *notificationService) record(ctx context.Context, n *domain.Notification, resp *notify.Response, err error) (*notify.Response, error) {
	if err != nil {
		n.MarkFailed(err.Error(), "", 0)
		s.persist(ctx, n)
		s.count(ctx, cache.FailedCounter)
		return nil, fmt.Errorf("notify %s: %w", n.ID.String(), err)
	}

	status, body := resp.RawHTTP()

	switch {
	case resp.Success():
		n.MarkSent(resp.Message(), body, status)
		s.count(ctx, cache.SentCounter)
	case status == 0:
		n.MarkFailed(resp.Message(), body, status)
		s.count(ctx, cache.FailedCounter)
	default:
		n.MarkFailed(resp.Message(), body, status)
		s.count(ctx, cache.RejectedCounter)
	}

	s.persist(ctx, n)
	return resp, nil
}

// persist is best-effort: a notification whose update fails stays in its
// previous state in storage.
func (s *notificationService) persist(ctx context.Context, n *domain.Notification) {
	// The delivery context may already be spent.
	ctx = context.WithoutCancel(ctx)
	if err := s.repo.UpdateStatus(ctx, n); err != nil {
		s.lg.Errorw("[Service] Failed to persist status", err, "id", n.ID.String(), "status", string(n.Status))
	}
}

func (s *notificationService) count(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Incr(context.WithoutCancel(ctx), key); err != nil {
		s.lg.Warnw("[Service] Failed to increment counter", "key", key, "error", err.Error())
	}
}
