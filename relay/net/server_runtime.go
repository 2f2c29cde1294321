package net

import "fmt"
import "net/http"
import "github.com/gorilla/websocket"

import "github.com/dadleyy/relay.api/relay/defs"
import "github.com/dadleyy/relay.api/relay/logging"
import "github.com/dadleyy/relay.api/relay/weblog"

// ServerRuntime defines the object that implements the http.Handler interface used during
// application startup to open the http server. It matches inbound requests against its
// multiplexer, builds the per-request runtime sent into the matching handler, performs gated
// websocket upgrades and emits one completion record per finished request.
type ServerRuntime struct {
	Multiplexer
	WebsocketUpgrader
	*logging.Logger

	Sink          weblog.Sink
	Registrations chan<- defs.Streamer
}

// ServeHTTP implementation of the http.Handler interface method
func (runtime *ServerRuntime) ServeHTTP(responseWriter http.ResponseWriter, request *http.Request) {
	found, params, handler := runtime.MatchRequest(request)

	runtime.Debugf("%s %s", request.Method, request.URL.EscapedPath())

	requestRuntime := NewRequestRuntime(params, runtime.Logger, request, runtime.Sink)
	requestRuntime.localAddr = localAddr(request)

	upgrade := websocket.IsWebSocketUpgrade(request)

	// Upgrade attempts get their gate before route evaluation begins.
	if upgrade {
		requestRuntime.Gate = &HandshakeGate{}
	}

	result := HandlerResult{Errors: []error{fmt.Errorf(defs.ErrNotFound)}}

	if found == true {
		result = handler(requestRuntime)
	}

	if upgrade {
		runtime.finishHandshake(responseWriter, requestRuntime, found)
		return
	}

	if len(result.Redirect) >= 1 {
		responseWriter.Header().Set("Location", result.Redirect)
		responseWriter.WriteHeader(http.StatusTemporaryRedirect)
		requestRuntime.emit(completeIfNeeded(requestRuntime, http.StatusTemporaryRedirect), 0)
		return
	}

	if result.NoRender {
		runtime.Debugf("not rendering %s", requestRuntime.ID.String())
		requestRuntime.emit(completeIfNeeded(requestRuntime, http.StatusOK), 0)
		return
	}

	status := http.StatusOK

	if found != true {
		status = http.StatusNotFound
	} else if len(result.Errors) >= 1 {
		status = http.StatusBadRequest
	}

	completed := completeIfNeeded(requestRuntime, status)

	var renderer Renderer
	counter := &countingWriter{ResponseWriter: responseWriter}

	switch request.Header.Get("accepts") {
	default:
		renderer = &JSONRenderer{"0.0.1"}
	}

	if e := renderer.Render(counter, completed, result); e != nil {
		runtime.Errorf("unable to render results: %s", e.Error())
	}

	requestRuntime.emit(completed, counter.written)
}

// finishHandshake reads the gate exactly once, immediately after route evaluation, and either
// performs the protocol switch or rejects the attempt. Rejection is the default and is expected
// control flow, never an internal fault.
func (runtime *ServerRuntime) finishHandshake(responseWriter http.ResponseWriter, requestRuntime *RequestRuntime, found bool) {
	gate := requestRuntime.Gate

	if found != true || gate.IsAuthorized() != true {
		runtime.Warnf("route evaluation left handshake unauthorized, rejecting %s", requestRuntime.ID.String())
		completed := completeIfNeeded(requestRuntime, http.StatusForbidden)
		responseWriter.WriteHeader(completed.StatusCode)
		fmt.Fprint(responseWriter, defs.ErrUnauthorizedHandshake)
		requestRuntime.emit(completed, len(defs.ErrUnauthorizedHandshake))
		return
	}

	header := http.Header{}

	if subprotocols := gate.Subprotocols(); len(subprotocols) >= 1 {
		header.Set(defs.APISubprotocolHeader, subprotocols[0])
	}

	connection, e := runtime.UpgradeWebsocket(responseWriter, requestRuntime.Request, header)

	if e != nil {
		runtime.Warnf("unable to upgrade websocket: %s", e.Error())
		requestRuntime.emit(completeIfNeeded(requestRuntime, http.StatusBadRequest), 0)
		return
	}

	completed := completeIfNeeded(requestRuntime, http.StatusSwitchingProtocols)

	runtime.publish(connection, requestRuntime)

	requestRuntime.emit(completed, 0)
}

// publish hands the upgraded connection to the registration stream. The send must never stall the
// request goroutine; when the stream is missing or saturated the connection is closed instead.
func (runtime *ServerRuntime) publish(connection defs.Streamer, requestRuntime *RequestRuntime) {
	if runtime.Registrations == nil {
		runtime.Warnf("no registration stream configured, closing %s", requestRuntime.ID.String())
		connection.Close()
		return
	}

	select {
	case runtime.Registrations <- connection:
	default:
		runtime.Warnf("registration stream saturated, closing %s", requestRuntime.ID.String())
		connection.Close()
	}
}

func completeIfNeeded(requestRuntime *RequestRuntime, status int) ResponseContext {
	if completed, ok := requestRuntime.Completed(); ok {
		return completed
	}

	return requestRuntime.Complete(status, nil)
}

func localAddr(request *http.Request) string {
	if addr, ok := request.Context().Value(http.LocalAddrContextKey).(interface{ String() string }); ok {
		return addr.String()
	}

	return ""
}

type countingWriter struct {
	http.ResponseWriter
	written int
}

func (writer *countingWriter) Write(data []byte) (int, error) {
	size, e := writer.ResponseWriter.Write(data)
	writer.written += size
	return size, e
}
