package notify

import (
	"fmt"
	"strings"
)

// Config is the string-keyed configuration bag a gateway is built from.
// It is never mutated after construction.
type Config map[string]string

// Get returns the value stored under key, or def when the key is absent.
func (c Config) Get(key, def string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return def
}

// Require checks that every key is present and not blank.
func (c Config) Require(keys ...string) error {
	var missing []string
	for _, k := range keys {
		if strings.TrimSpace(c[k]) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrConfiguration, strings.Join(missing, ", "))
	}
	return nil
}

// Clone returns an independent copy of the bag.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
