package net

import "net/http"

// Renderer defines the interface used by the `ServerRuntime` to serialize a completed request's
// response context + handler result onto the wire.
type Renderer interface {
	Render(http.ResponseWriter, ResponseContext, HandlerResult) error
}
