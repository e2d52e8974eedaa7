package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/ballou-sms/internal/notify"
)

func TestConfig_Get(t *testing.T) {
	cfg := notify.Config{"UN": "user", "O": ""}

	assert.Equal(t, "user", cfg.Get("UN", "x"))
	assert.Equal(t, "", cfg.Get("O", "x"), "present empty value wins over default")
	assert.Equal(t, "x", cfg.Get("PW", "x"))
}

func TestConfig_Require(t *testing.T) {
	tests := []struct {
		name    string
		cfg     notify.Config
		wantErr bool
	}{
		{"present", notify.Config{"token": "abc"}, false},
		{"missing", notify.Config{}, true},
		{"blank", notify.Config{"token": "  "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Require("token")
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, notify.ErrConfiguration)
			assert.Contains(t, err.Error(), "token")
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := notify.Config{"UN": "user"}
	cp := cfg.Clone()
	cp["UN"] = "other"

	assert.Equal(t, "user", cfg["UN"])
}

func TestResponse_Accessors(t *testing.T) {
	raw := map[string]string{"k": "v"}
	resp := notify.NewResponse(true, "Message sent", raw)

	assert.True(t, resp.Success())
	assert.Equal(t, "Message sent", resp.Message())
	assert.Equal(t, raw, resp.Raw())
}

type httpRaw struct{}

func (httpRaw) HTTPStatus() int { return 500 }
func (httpRaw) String() string  { return "Internal Server Error" }

func TestResponse_RawHTTP(t *testing.T) {
	status, body := notify.NewResponse(false, "x", httpRaw{}).RawHTTP()
	assert.Equal(t, 500, status)
	assert.Equal(t, "Internal Server Error", body)

	status, body = notify.NewResponse(false, "x", "plain").RawHTTP()
	assert.Zero(t, status)
	assert.Empty(t, body)
}
