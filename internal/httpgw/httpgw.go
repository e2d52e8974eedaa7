// Package httpgw is the small HTTP transport gateways are built on. It sends
// one request, hands back the raw answer whatever its status code, and only
// fails when no answer was received at all.
package httpgw

import (
	"errors"
	"net"
	"net/http"
	"time"
)

// Method is the HTTP verb of a provider call.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

func (m Method) valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	default:
		return false
	}
}

const (
	DefaultTimeout        = 80 * time.Second
	DefaultConnectTimeout = 30 * time.Second
)

// Log flags.
const (
	LogRequest  = 1
	LogResponse = 2
	NoLogError  = 4
)

var (
	// ErrTransport wraps every failure that prevented a response from arriving.
	ErrTransport = errors.New("http transport failure")

	ErrBadMethod = errors.New("unsupported http method")
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns a client with an overall request timeout and a
// separate limit on establishing the TCP connection. Zero values fall back to
// DefaultTimeout and DefaultConnectTimeout.
func NewHTTPClient(timeout, connectTimeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
