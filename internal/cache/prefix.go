package cache

import "fmt"

type Prefix string

const (
	Notify Prefix = "notify"
)

// Delivery counters.
var (
	SentCounter     = Notify.Key("sent")
	FailedCounter   = Notify.Key("failed")
	RejectedCounter = Notify.Key("rejected")
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
