package notificationgorm

import (
	"github.com/oggyb/ballou-sms/internal/domain/notification"
)

func toDomain(m *NotificationModel) *notification.Notification {
	return &notification.Notification{
		ID:              m.ID,
		To:              m.To,
		Content:         m.Content,
		Status:          notification.Status(m.Status),
		ProviderMessage: m.ProviderMessage,
		RawResponse:     m.RawResponse,
		StatusCode:      m.StatusCode,
		SentAt:          m.SentAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toDomainMany(models []NotificationModel) []*notification.Notification {
	out := make([]*notification.Notification, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

func fromDomain(d *notification.Notification) *NotificationModel {
	return &NotificationModel{
		ID:              d.ID,
		To:              d.To,
		Content:         d.Content,
		Status:          string(d.Status),
		ProviderMessage: d.ProviderMessage,
		RawResponse:     d.RawResponse,
		StatusCode:      d.StatusCode,
		SentAt:          d.SentAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
