package net

import "time"

// ResponseContext is the immutable outcome of a single request: the status written into the
// runtime's completion slot, the payload computed for it and the elapsed duration at write time.
type ResponseContext struct {
	StatusCode int
	Payload    interface{}
	Elapsed    time.Duration
}
