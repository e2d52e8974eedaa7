package request

// SchedulerRequest represents the JSON body for scheduler control.
type SchedulerRequest struct {
	// Action controls the scheduler. Allowed values:
	// - "start": start processing batches
	// - "stop":  stop processing batches
	Action string `json:"action"`
}

// SendRequest is the body of POST /notifications.
type SendRequest struct {
	To      string `json:"to" example:"46701234567"`
	Content string `json:"content" example:"Your code is 1234"`
	// Options override the configured Ballou fields (UN, PW, CR, RI, O, LONGSMS)
	// for this call only.
	Options map[string]string `json:"options,omitempty"`
}

// QueueRequest is the body of POST /notifications/queue.
type QueueRequest struct {
	To      string `json:"to" example:"46701234567"`
	Content string `json:"content" example:"Your code is 1234"`
}
