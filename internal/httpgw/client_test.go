package httpgw_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/ballou-sms/internal/httpgw"
	zaplog "github.com/oggyb/ballou-sms/internal/logger/zap"
)

func TestClient_BuildURL(t *testing.T) {
	c := httpgw.New(zaplog.NewNop(), httpgw.Options{BaseURL: "https://sms.example.com/"})

	assert.Equal(t, "https://sms.example.com/http/get/SendSms.php", c.BuildURL("/http/get/SendSms.php"))
	assert.Equal(t, "https://sms.example.com/a", c.BuildURL("a"))
	assert.Equal(t, "https://sms.example.com", c.BuildURL(""))
}

func TestClient_Send(t *testing.T) {
	var (
		gotMethod string
		gotBody   string
		gotHeader http.Header
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Clone()
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	}))
	defer srv.Close()

	c := httpgw.New(zaplog.NewNop(), httpgw.Options{
		BaseURL: srv.URL,
		Headers: http.Header{"Accept": {"application/xml"}},
	})

	res, err := c.Send(context.Background(), httpgw.Request{
		Method:  httpgw.MethodGet,
		Path:    "/ping",
		Headers: http.Header{"Content-Type": {"text/plain"}},
		Body:    []byte("ping"),
	})
	require.NoError(t, err)

	assert.True(t, res.OK())
	assert.Equal(t, "pong", string(res.Body))
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "ping", gotBody)
	assert.Equal(t, "application/xml", gotHeader.Get("Accept"))
	assert.Equal(t, "text/plain", gotHeader.Get("Content-Type"))
}

func TestClient_Send_NonSuccessIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := httpgw.New(zaplog.NewNop(), httpgw.Options{BaseURL: srv.URL})

	res, err := c.Send(context.Background(), httpgw.Request{Method: httpgw.MethodGet})
	require.NoError(t, err)

	assert.False(t, res.OK())
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, string(res.Body), "Internal Server Error")
}

func TestClient_Send_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := httpgw.New(zaplog.NewNop(), httpgw.Options{BaseURL: url, LogFlags: httpgw.NoLogError})

	res, err := c.Send(context.Background(), httpgw.Request{Method: httpgw.MethodGet})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, httpgw.ErrTransport))
}

func TestClient_Send_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := httpgw.New(zaplog.NewNop(), httpgw.Options{
		BaseURL: srv.URL,
		Client:  httpgw.NewHTTPClient(50*time.Millisecond, time.Second),
	})

	_, err := c.Send(context.Background(), httpgw.Request{Method: httpgw.MethodGet})
	require.ErrorIs(t, err, httpgw.ErrTransport)
}

func TestClient_Send_BadMethod(t *testing.T) {
	c := httpgw.New(zaplog.NewNop(), httpgw.Options{BaseURL: "http://localhost"})

	_, err := c.Send(context.Background(), httpgw.Request{Method: "BREW"})
	require.ErrorIs(t, err, httpgw.ErrBadMethod)
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	c := httpgw.NewHTTPClient(0, 0)
	assert.Equal(t, httpgw.DefaultTimeout, c.Timeout)

	c = httpgw.NewHTTPClient(time.Second, time.Second)
	assert.Equal(t, time.Second, c.Timeout)
}
