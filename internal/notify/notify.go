// Package notify holds the provider-independent contracts shared by every
// notification gateway: the configuration bag, the normalized response and
// the gateway/factory interfaces.
package notify

import "context"

// Gateway sends a single notification through one provider.
//
// Transport failures and provider rejections are reported through the
// returned Response; an error is returned only when the provider answer
// cannot be interpreted at all.
type Gateway interface {
	Notify(ctx context.Context, message string, options map[string]string) (*Response, error)
}

// Factory builds a Gateway from a configuration bag.
type Factory interface {
	Make(cfg Config) (Gateway, error)
}
