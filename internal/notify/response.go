package notify

// Response is the normalized outcome of a Notify call. It is created once per
// call and cannot be changed afterwards.
type Response struct {
	success bool
	message string
	raw     any
}

// NewResponse builds a Response. raw is whatever the gateway received from the
// provider and is kept for diagnostics only.
func NewResponse(success bool, message string, raw any) *Response {
	return &Response{
		success: success,
		message: message,
		raw:     raw,
	}
}

// Success reports whether the provider accepted the message.
func (r *Response) Success() bool { return r.success }

// Message is "Message sent" on success, or a human readable failure reason.
func (r *Response) Message() string { return r.message }

// Raw returns the provider answer the response was mapped from.
func (r *Response) Raw() any { return r.raw }

// HTTPResult is implemented by the raw payload of HTTP based gateways.
type HTTPResult interface {
	HTTPStatus() int
	String() string
}

// RawHTTP extracts status code and body from r when its raw payload is an
// HTTPResult.
func (r *Response) RawHTTP() (status int, body string) {
	if h, ok := r.raw.(HTTPResult); ok {
		return h.HTTPStatus(), h.String()
	}
	return 0, ""
}
