package weblog

// Sink accepts completion records from the request path. Implementations must never block the
// caller; delivery is best effort.
type Sink interface {
	Enqueue(Event)
}

// NullSink discards every event. Used when no access log destination is configured.
type NullSink struct {
}

// Enqueue is a no-op.
func (sink *NullSink) Enqueue(Event) {
}
