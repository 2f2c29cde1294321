package defs

const (
	// ErrNotFound returned when no route configuration matches the inbound request.
	ErrNotFound = "not-found"

	// ErrServerError returned when a route handler encountered an unexpected internal problem.
	ErrServerError = "server-error"

	// ErrBadRequestFormat returned when a declared parameter cannot be built from the raw request.
	ErrBadRequestFormat = "invalid-request-format"

	// ErrWorkerTimeout returned when a dispatched worker produced no reply within the bound.
	ErrWorkerTimeout = "worker-timeout"

	// ErrWorkerFault returned when a dispatched worker faulted while computing its reply.
	ErrWorkerFault = "worker-fault"

	// ErrWorkerReuse is the panic message raised when a second input is sent to a finished worker.
	ErrWorkerReuse = "worker-reuse"

	// ErrDoubleCompletion is the panic message raised when a request runtime is completed twice.
	ErrDoubleCompletion = "double-completion"

	// ErrUnauthorizedHandshake returned when route evaluation never authorized a websocket upgrade.
	ErrUnauthorizedHandshake = "unauthorized-handshake"

	// ErrInvalidWriter returned when the web log queue is constructed without a destination.
	ErrInvalidWriter = "invalid-writer"
)
