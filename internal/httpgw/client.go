package httpgw

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/oggyb/ballou-sms/internal/logger"
)

// Options configure a Client once; Request carries the per-call part.
type Options struct {
	Client    Doer
	BaseURL   string
	Headers   http.Header
	LogPrefix string
	LogFlags  int
}

type Request struct {
	Method  Method
	Path    string
	Headers http.Header
	Body    []byte
}

// Result is the raw provider answer.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

type Client struct {
	lg   logger.Lite
	opts Options
}

func New(lg logger.Lite, opts Options) *Client {
	if opts.Client == nil {
		opts.Client = NewHTTPClient(0, 0)
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	return &Client{
		lg:   lg,
		opts: opts,
	}
}

// BuildURL joins the base url and path with exactly one slash.
func (c *Client) BuildURL(path string) string {
	if path == "" {
		return c.opts.BaseURL
	}
	return c.opts.BaseURL + "/" + strings.TrimLeft(path, "/")
}

// Send issues the request. A non-2xx status is not an error: the caller gets
// the Result and decides. The returned error always wraps ErrTransport or
// ErrBadMethod.
func (c *Client) Send(ctx context.Context, req Request) (*Result, error) {
	if !req.Method.valid() {
		return nil, fmt.Errorf("%w: %q", ErrBadMethod, req.Method)
	}

	uri := c.BuildURL(req.Path)
	prefix := c.opts.LogPrefix
	logError := c.opts.LogFlags&NoLogError == 0

	if c.opts.LogFlags&LogRequest > 0 {
		c.lg.Infow(prefix+"request", "method", string(req.Method), "uri", uri, "body_bytes", len(req.Body))
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), uri, body)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrTransport, err)
	}

	for k, v := range c.opts.Headers {
		httpReq.Header[k] = v
	}
	for k, v := range req.Headers {
		httpReq.Header[k] = v
	}

	rep, err := c.opts.Client.Do(httpReq)
	if err != nil {
		if logError {
			c.lg.Errorw(prefix+"Fail to send http-request", err, "method", string(req.Method), "uri", uri)
		}
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer rep.Body.Close()

	repBody, err := io.ReadAll(rep.Body)
	if err != nil {
		if logError {
			c.lg.Errorw(prefix+"Fail to read body", err, "uri", uri, "status_code", rep.StatusCode)
		}
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	res := &Result{
		StatusCode: rep.StatusCode,
		Header:     rep.Header,
		Body:       repBody,
	}

	if !res.OK() && logError {
		c.lg.Warnw(prefix+"Bad status code", "status_code", rep.StatusCode, "uri", uri)
	}

	if c.opts.LogFlags&LogResponse > 0 {
		c.lg.Infow(prefix+"response", "uri", uri, "status_code", rep.StatusCode, "body", string(repBody))
	}

	return res, nil
}
