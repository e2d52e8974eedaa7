package notify

import "errors"

var (
	// ErrConfiguration is returned by factories when a required key is missing.
	ErrConfiguration = errors.New("gateway configuration is invalid")

	// ErrMalformedResponse is returned when a successful HTTP answer does not
	// carry the document the provider is expected to send.
	ErrMalformedResponse = errors.New("provider response is malformed")
)
