package ballou

import (
	"github.com/oggyb/ballou-sms/internal/httpgw"
	"github.com/oggyb/ballou-sms/internal/logger"
	zaplog "github.com/oggyb/ballou-sms/internal/logger/zap"
	"github.com/oggyb/ballou-sms/internal/notify"
)

// KeyToken is the one configuration key every Ballou gateway needs.
const KeyToken = "token"

var _ notify.Factory = Factory{}

// Factory builds Ballou gateways. The zero value talks to Endpoint with the
// default 80s/30s timeouts and discards logs.
type Factory struct {
	Logger   logger.Lite
	Client   httpgw.Doer
	Endpoint string
}

// Make validates cfg and returns a ready gateway. It never touches the network.
func (f Factory) Make(cfg notify.Config) (notify.Gateway, error) {
	if err := cfg.Require(KeyToken); err != nil {
		return nil, err
	}

	lg := f.Logger
	if lg == nil {
		lg = zaplog.NewNop()
	}

	doer := f.Client
	if doer == nil {
		doer = httpgw.NewHTTPClient(httpgw.DefaultTimeout, httpgw.DefaultConnectTimeout)
	}

	endpoint := f.Endpoint
	if endpoint == "" {
		endpoint = Endpoint
	}

	client := httpgw.New(lg, httpgw.Options{
		Client:    doer,
		BaseURL:   endpoint,
		LogPrefix: "[Ballou] ",
		LogFlags:  httpgw.NoLogError,
	})

	return NewGateway(lg, client, cfg), nil
}

// Make is Factory{}.Make.
func Make(cfg notify.Config) (notify.Gateway, error) {
	return Factory{}.Make(cfg)
}
