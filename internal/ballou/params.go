package ballou

import (
	"net/url"
	"strings"

	"github.com/oggyb/ballou-sms/internal/notify"
)

// Keys read from the configuration bag or the call options, in wire order.
// The message itself always goes last under KeyMessage.
const (
	KeyUsername = "UN"
	KeyPassword = "PW"
	KeyCR       = "CR"
	KeyRI       = "RI"
	KeyOrigin   = "O"
	KeyDest     = "D"
	KeyLongSMS  = "LONGSMS"
	KeyMessage  = "M"
)

var optionKeys = []string{KeyUsername, KeyPassword, KeyCR, KeyRI, KeyOrigin, KeyDest, KeyLongSMS}

// Param is one key/value pair of a provider request.
type Param struct {
	Key   string
	Value string
}

// Params keeps the provider fields in the order they are sent.
type Params []Param

// Get returns the value of key and whether it is present.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Encode serializes the params as an x-www-form-urlencoded body without
// reordering the keys.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// buildParams merges the call options over the static configuration. A key
// present in options wins even when its value is empty.
func buildParams(cfg notify.Config, options map[string]string, message string) Params {
	params := make(Params, 0, len(optionKeys)+1)

	for _, k := range optionKeys {
		v, ok := options[k]
		if !ok {
			v = cfg.Get(k, "")
		}
		if k == KeyOrigin {
			v = encodeComponent(v)
		}
		params = append(params, Param{Key: k, Value: v})
	}

	return append(params, Param{Key: KeyMessage, Value: encodeComponent(message)})
}

// encodeComponent percent-encodes s with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
