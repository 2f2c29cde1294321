package defs

const (
	// DefaultPort is the port that the application will listen on unless otherwise specified.
	DefaultPort = "8080"

	// DefaultHostname is the default hostname that will be bound to.
	DefaultHostname = "0.0.0.0"

	// DefaultWorkerTimeoutMS is the amount of time (ms) the dispatcher waits for a worker reply.
	DefaultWorkerTimeoutMS = 5000

	// DefaultWebLogQueueSize is the capacity of the access log event queue.
	DefaultWebLogQueueSize = 256
)
