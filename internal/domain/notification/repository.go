package notification

import (
	"context"
	"time"
)

// ClaimTimeout is how long a PROCESSING notification stays claimed before it
// is considered abandoned (e.g. the worker process died mid-batch).
const ClaimTimeout = 10 * time.Minute

// Repository defines the persistence operations for notifications.
//
// It is implemented by infrastructure layers (e.g. GORM) while the service
// layer depends only on this interface.
type Repository interface {
	// Save persists a new notification.
	Save(ctx context.Context, n *Notification) error

	// ClaimPending atomically moves up to limit pending notifications to
	// StatusProcessing and returns them, so that concurrent workers never get
	// the same notification. Claims older than ClaimTimeout are handed out again.
	ClaimPending(ctx context.Context, limit int) ([]*Notification, error)

	// List returns one page of notifications, newest first, and the total
	// count. An empty status lists every notification.
	List(ctx context.Context, status Status, page, limit int) ([]*Notification, int64, error)

	// UpdateStatus updates the status and delivery metadata of a notification.
	UpdateStatus(ctx context.Context, n *Notification) error
}
