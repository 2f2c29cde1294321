package weblog

import "time"

// Event is the immutable completion record produced once per finished request or handshake
// attempt. Events are value types; once enqueued they are never mutated.
type Event struct {
	Timestamp    time.Time     `json:"timestamp"`
	RemoteAddr   string        `json:"remote_addr"`
	LocalAddr    string        `json:"local_addr"`
	Identity     string        `json:"identity"`
	Method       string        `json:"method"`
	URI          string        `json:"uri"`
	RequestSize  int64         `json:"request_size"`
	Status       int           `json:"status"`
	ResponseSize int           `json:"response_size"`
	Duration     time.Duration `json:"duration"`
	Protocol     string        `json:"protocol"`
	UserAgent    string        `json:"user_agent"`
	Referer      string        `json:"referer"`
}
