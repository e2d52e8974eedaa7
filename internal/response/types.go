package response

import (
	"time"

	domain "github.com/oggyb/ballou-sms/internal/domain/notification"
	"github.com/oggyb/ballou-sms/internal/service"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type SchedulerControlPayload struct {
	Message string `json:"message"`
	Running bool   `json:"running"`
}

type SchedulerControlResponse struct {
	Success   bool                    `json:"success"`
	Data      SchedulerControlPayload `json:"data"`
	Timestamp string                  `json:"timestamp"`
}

// NotificationDTO is the public representation of a notification. It
// decouples the wire format from the domain entity and plays nicely with Swagger.
type NotificationDTO struct {
	ID              string     `json:"id"`
	To              string     `json:"to"`
	Content         string     `json:"content"`
	Status          string     `json:"status"`
	ProviderMessage string     `json:"providerMessage,omitempty"`
	StatusCode      int        `json:"statusCode,omitempty"`
	SentAt          *time.Time `json:"sentAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// SendPayload carries the stored notification and the normalized gateway answer.
type SendPayload struct {
	Notification NotificationDTO `json:"notification"`
	Delivered    bool            `json:"delivered"`
	Message      string          `json:"message"`
}

type SendResponse struct {
	Success   bool        `json:"success"`
	Data      SendPayload `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type QueueResponse struct {
	Success   bool            `json:"success"`
	Data      NotificationDTO `json:"data"`
	Timestamp string          `json:"timestamp"`
}

type NotificationsPayload struct {
	Items []NotificationDTO `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type NotificationsResponse struct {
	Success   bool                 `json:"success"`
	Data      NotificationsPayload `json:"data"`
	Timestamp string               `json:"timestamp"`
}

type StatsResponse struct {
	Success   bool          `json:"success"`
	Data      service.Stats `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

func FromDomainNotification(n *domain.Notification) NotificationDTO {
	return NotificationDTO{
		ID:              n.ID.String(),
		To:              n.To,
		Content:         n.Content,
		Status:          string(n.Status),
		ProviderMessage: n.ProviderMessage,
		StatusCode:      n.StatusCode,
		SentAt:          n.SentAt,
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
	}
}

// FromDomainNotifications converts domain notifications into DTOs
// for use in HTTP responses.
func FromDomainNotifications(items []*domain.Notification) []NotificationDTO {
	out := make([]NotificationDTO, len(items))
	for i, n := range items {
		out[i] = FromDomainNotification(n)
	}
	return out
}
