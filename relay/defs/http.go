package defs

const (
	// APIContentTypeHeader is the header key used to negotiate request body formats.
	APIContentTypeHeader = "Content-Type"

	// APIUserAgentHeader is the header key recorded into access log events.
	APIUserAgentHeader = "User-Agent"

	// APIRefererHeader is the header key recorded into access log events.
	APIRefererHeader = "Referer"

	// APISubprotocolHeader is the header key used by websocket clients to request subprotocols.
	APISubprotocolHeader = "Sec-Websocket-Protocol"
)
