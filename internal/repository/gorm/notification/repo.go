package notificationgorm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/ballou-sms/internal/db"
	"github.com/oggyb/ballou-sms/internal/domain/notification"
)

// Repository is a GORM-backed implementation of notification.Repository.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a notification repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// ClaimPending selects up to limit claimable notifications with
// SELECT ... FOR UPDATE SKIP LOCKED and flips them to PROCESSING in the same
// transaction, so the row locks hold until the claim is committed.
func (r *Repository) ClaimPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	var models []NotificationModel
	now := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("status = ? OR (status = ? AND updated_at < ?)",
				notification.StatusPending,
				notification.StatusProcessing,
				now.Add(-notification.ClaimTimeout),
			).
			Order("created_at ASC").
			Limit(limit).
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Find(&models).Error
		if err != nil {
			return err
		}

		ids := markClaimed(models, now)
		if len(ids) == 0 {
			return nil
		}

		return tx.Model(&NotificationModel{}).
			Where("id IN ?", ids).
			Updates(map[string]interface{}{
				"status":     string(notification.StatusProcessing),
				"updated_at": now,
			}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("claim pending notifications: %w", err)
	}

	return toDomainMany(models), nil
}

// markClaimed mirrors the claim update on the loaded models and returns their ids.
func markClaimed(models []NotificationModel, now time.Time) []uuid.UUID {
	ids := make([]uuid.UUID, len(models))
	for i := range models {
		models[i].Status = string(notification.StatusProcessing)
		models[i].UpdatedAt = now
		ids[i] = models[i].ID
	}
	return ids
}

// List returns a page of notifications and the total count matching status.
func (r *Repository) List(ctx context.Context, status notification.Status, page, limit int) ([]*notification.Notification, int64, error) {
	var models []NotificationModel
	var total int64

	query := r.db.WithContext(ctx).Model(&NotificationModel{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, err
	}

	return toDomainMany(models), total, nil
}

// UpdateStatus persists the current status and delivery metadata.
func (r *Repository) UpdateStatus(ctx context.Context, n *notification.Notification) error {
	updates := map[string]interface{}{
		"status":           string(n.Status),
		"updated_at":       n.UpdatedAt,
		"provider_message": n.ProviderMessage,
		"raw_response":     n.RawResponse,
		"status_code":      n.StatusCode,
		"sent_at":          n.SentAt,
	}

	return r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("id = ?", n.ID).
		Updates(updates).Error
}

// Save inserts a new notification record into the database.
func (r *Repository) Save(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Create(fromDomain(n)).Error
}

// compile-time interface check
var _ notification.Repository = (*Repository)(nil)
