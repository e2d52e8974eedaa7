// Package ballou sends SMS through the Ballou HTTP API and maps its XML
// answers to notify.Response values.
package ballou

import (
	"context"
	"fmt"
	"net/http"

	"github.com/oggyb/ballou-sms/internal/httpgw"
	"github.com/oggyb/ballou-sms/internal/logger"
	"github.com/oggyb/ballou-sms/internal/notify"
)

const (
	// Endpoint is the production API root.
	Endpoint = "https://sms.ballou.se"

	// Version of the Ballou HTTP API the gateway speaks.
	Version = "1"

	sendPath = "/http/get/SendSms.php"

	MessageSent = "Message sent"
)

var (
	_ notify.Gateway    = (*Gateway)(nil)
	_ notify.HTTPResult = (*Raw)(nil)
)

// Raw is attached to every response. Reply is set only when a 200 answer was
// decoded.
type Raw struct {
	StatusCode int
	Body       []byte
	Reply      *Reply
}

func (r *Raw) HTTPStatus() int { return r.StatusCode }

func (r *Raw) String() string { return string(r.Body) }

// Gateway is safe for concurrent use. It keeps nothing between calls.
type Gateway struct {
	lg     logger.Lite
	client *httpgw.Client
	cfg    notify.Config
}

func NewGateway(lg logger.Lite, client *httpgw.Client, cfg notify.Config) *Gateway {
	return &Gateway{
		lg:     lg,
		client: client,
		cfg:    cfg.Clone(),
	}
}

// Notify sends message in a single GET request. options override the
// configured UN, PW, CR, RI, O, D and LONGSMS for this call only.
//
// Transport failures and provider rejections come back as an unsuccessful
// Response with a nil error. The error is set only when a 200 answer cannot
// be decoded.
func (g *Gateway) Notify(ctx context.Context, message string, options map[string]string) (*notify.Response, error) {
	params := buildParams(g.cfg, options, message)
	dest, _ := params.Get(KeyDest)

	res, err := g.client.Send(ctx, httpgw.Request{
		Method: httpgw.MethodGet,
		Path:   sendPath,
		Headers: http.Header{
			"Content-Type": {"application/x-www-form-urlencoded"},
			"Accept":       {"application/xml"},
		},
		Body: []byte(params.Encode()),
	})
	if err != nil {
		g.lg.Warnw("Ballou request failed", "to", maskNumber(dest), "error", err.Error())
		return notify.NewResponse(false, fmt.Sprintf("API request failed. (%v)", err), &Raw{}), nil
	}

	raw := &Raw{
		StatusCode: res.StatusCode,
		Body:       res.Body,
	}

	if res.StatusCode != http.StatusOK {
		g.lg.Warnw("Ballou answered with unexpected status", "to", maskNumber(dest), "status_code", res.StatusCode)
		return notify.NewResponse(false, responseError(res.Body), raw), nil
	}

	reply, err := decodeReply(res.Body)
	if err != nil {
		g.lg.Errorw("Ballou answer could not be decoded", err, "to", maskNumber(dest))
		return nil, err
	}
	raw.Reply = reply

	resp := mapResponse(reply, raw)
	g.lg.Infow("Ballou notify", "to", maskNumber(dest), "success", resp.Success(), "message_id", reply.ID)

	return resp, nil
}

func mapResponse(reply *Reply, raw *Raw) *notify.Response {
	if reply.Accepted() {
		return notify.NewResponse(true, MessageSent, raw)
	}
	return notify.NewResponse(false, reply.ErrorText(), raw)
}

func responseError(body []byte) string {
	return fmt.Sprintf("API Response not valid. (Raw response API %s)", body)
}

// maskNumber keeps the first four and last two digits of a phone number.
func maskNumber(n string) string {
	if len(n) <= 6 {
		return "****"
	}
	return n[:4] + "****" + n[len(n)-2:]
}
