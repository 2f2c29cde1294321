package net

// HandshakeGate holds the authorization state of a single websocket upgrade attempt. The zero
// value is unauthorized, which makes rejection the default for routes that merely pattern-match
// an upgrade request without intending to support it. The ServerRuntime reads the gate exactly
// once, immediately after route evaluation returns; the gate is discarded with the request
// runtime, so calls made after that read have no observable effect.
type HandshakeGate struct {
	authorized   bool
	subprotocols []string
}

// Authorize marks the attempt as approved, optionally recording the negotiated subprotocol list.
// Calling it more than once is allowed; the last subprotocol list wins.
func (gate *HandshakeGate) Authorize(subprotocols ...string) {
	gate.authorized = true

	if len(subprotocols) >= 1 {
		gate.subprotocols = subprotocols
		return
	}

	gate.subprotocols = nil
}

// IsAuthorized returns the current state of the attempt.
func (gate *HandshakeGate) IsAuthorized() bool {
	return gate.authorized
}

// Subprotocols returns the list recorded by the authorizing route, or nil.
func (gate *HandshakeGate) Subprotocols() []string {
	return gate.subprotocols
}
