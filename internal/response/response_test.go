package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/ballou-sms/internal/response"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	response.RespondError(rec, http.StatusBadGateway, "provider response is malformed")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var env response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusBadGateway, env.Error.Code)
	assert.Equal(t, "provider response is malformed", env.Error.Message)
	assert.NotEmpty(t, env.Timestamp)
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.RespondJSON(rec, http.StatusAccepted, response.WelcomePayload{Message: "hi"})

	var env response.WelcomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "hi", env.Data.Message)
}
