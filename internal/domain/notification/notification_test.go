package notification_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/ballou-sms/internal/domain/notification"
)

func TestNewNotification(t *testing.T) {
	tests := []struct {
		name    string
		to      string
		content string
		wantErr error
	}{
		{"valid", " 46701234567 ", " hello ", nil},
		{"empty recipient", "  ", "hello", notification.ErrEmptyRecipient},
		{"empty content", "46701234567", " ", notification.ErrEmptyContent},
		{"too long", "46701234567", strings.Repeat("a", notification.MaxContentLength+1), notification.ErrContentTooLong},
		{"max length", "46701234567", strings.Repeat("å", notification.MaxContentLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := notification.NewNotification(tt.to, tt.content)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, n)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, n.ID)
			assert.Equal(t, strings.TrimSpace(tt.to), n.To)
			assert.Equal(t, strings.TrimSpace(tt.content), n.Content)
			assert.Equal(t, notification.StatusPending, n.Status)
			assert.Nil(t, n.SentAt)
		})
	}
}

func TestNotification_Mark(t *testing.T) {
	n, err := notification.NewNotification("46701234567", "hi")
	require.NoError(t, err)

	n.MarkFailed("Bad number", "<xml/>", 200)
	assert.Equal(t, notification.StatusFailed, n.Status)
	assert.Equal(t, "Bad number", n.ProviderMessage)
	assert.Nil(t, n.SentAt)

	n.MarkSent("Message sent", "<ok/>", 200)
	assert.Equal(t, notification.StatusSent, n.Status)
	assert.Equal(t, "<ok/>", n.RawResponse)
	assert.Equal(t, 200, n.StatusCode)
	require.NotNil(t, n.SentAt)
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, notification.StatusSent.Valid())
	assert.False(t, notification.Status("SUCCESS").Valid())
	assert.False(t, notification.Status("").Valid())
}

func TestNotification_Release(t *testing.T) {
	n, err := notification.NewNotification("46701234567", "hi")
	require.NoError(t, err)
	n.Status = notification.StatusProcessing

	n.Release()
	assert.Equal(t, notification.StatusPending, n.Status)
	assert.True(t, notification.StatusProcessing.Valid())
}
