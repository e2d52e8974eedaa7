package notificationgorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationModel is the GORM persistence model for notifications.
// It maps directly to the "notifications" table in Postgres.
type NotificationModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	To              string     `gorm:"size:20;not null"`
	Content         string     `gorm:"size:918;not null"`
	Status          string     `gorm:"size:20;not null;index"`
	ProviderMessage string     `gorm:"size:500"`
	RawResponse     string     `gorm:"type:text"`
	StatusCode      int        `gorm:"not null;default:0"`
	SentAt          *time.Time `gorm:"index"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name used by GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
