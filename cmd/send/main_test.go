package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func provider(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_MissingMessage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-to", "46701234567"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "-m is required")
	assert.Empty(t, stdout.String())
}

func TestRun_BadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run([]string{"-o", "novalue"}, &stdout, &stderr))
}

func TestRun_MissingToken(t *testing.T) {
	t.Setenv("BALLOU_TOKEN", "")
	var stdout, stderr bytes.Buffer

	code := run([]string{"-m", "hi"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "token")
}

func TestRun_Accepted(t *testing.T) {
	t.Setenv("BALLOU_TOKEN", "tok")
	srv := provider(t, `<ballou_smls_response><response><message status="1"/></response></ballou_smls_response>`)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-endpoint", srv.URL, "-to", "46701234567", "-m", "hi"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "success: true")
	assert.Contains(t, stdout.String(), "status:  200")
}

func TestRun_RejectedExitsNonZero(t *testing.T) {
	t.Setenv("BALLOU_TOKEN", "tok")
	srv := provider(t, `<ballou_smls_response><response><message status="0"><error>Bad number</error></message></response></ballou_smls_response>`)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-endpoint", srv.URL, "-m", "hi"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "success: false")
	assert.Contains(t, stdout.String(), "Bad number")
}
