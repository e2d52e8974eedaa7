// Package notification holds the domain model and invariants for outgoing SMS
// notifications.
package notification

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// MaxContentLength is six concatenated SMS parts of 153 characters.
	MaxContentLength = 918
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusSent       Status = "SENT"
	StatusFailed     Status = "FAILED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusSent, StatusFailed:
		return true
	}
	return false
}

var (
	// ErrEmptyRecipient is returned when no recipient phone number is provided.
	ErrEmptyRecipient = errors.New("recipient phone number is required")
	// ErrEmptyContent is returned when the message body is empty.
	ErrEmptyContent = errors.New("message content is required")
	// ErrContentTooLong is returned when the message body exceeds MaxContentLength.
	ErrContentTooLong = errors.New("message content exceeds maximum length")
	// ErrUnknownStatus is returned for a status filter that is not a Status.
	ErrUnknownStatus = errors.New("unknown notification status")
)

// Notification is one SMS and the outcome of delivering it.
type Notification struct {
	ID              uuid.UUID
	To              string
	Content         string
	Status          Status
	ProviderMessage string
	RawResponse     string
	StatusCode      int
	SentAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewNotification constructs a pending Notification and enforces basic domain rules.
func NewNotification(to, content string) (*Notification, error) {
	to = strings.TrimSpace(to)
	content = strings.TrimSpace(content)

	if to == "" {
		return nil, ErrEmptyRecipient
	}
	if content == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return nil, ErrContentTooLong
	}

	now := time.Now()
	return &Notification{
		ID:        uuid.New(),
		To:        to,
		Content:   content,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarkSent records an accepted delivery.
func (n *Notification) MarkSent(providerMessage, raw string, statusCode int) {
	now := time.Now()
	n.SentAt = &now
	n.UpdatedAt = now
	n.Status = StatusSent
	n.ProviderMessage = providerMessage
	n.RawResponse = raw
	n.StatusCode = statusCode
}

// MarkFailed records a rejected or undeliverable notification.
func (n *Notification) MarkFailed(providerMessage, raw string, statusCode int) {
	n.UpdatedAt = time.Now()
	n.Status = StatusFailed
	n.ProviderMessage = providerMessage
	n.RawResponse = raw
	n.StatusCode = statusCode
}

// Release puts a claimed notification back in the queue.
func (n *Notification) Release() {
	n.UpdatedAt = time.Now()
	n.Status = StatusPending
}
