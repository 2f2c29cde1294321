package net

import "fmt"
import "time"
import "net/url"
import "net/http"
import "encoding/json"
import "github.com/satori/go.uuid"

import "github.com/dadleyy/relay.api/relay/defs"
import "github.com/dadleyy/relay.api/relay/logging"
import "github.com/dadleyy/relay.api/relay/weblog"

// RequestRuntime is the per-request package of shared system interfaces handed to route handlers.
// It owns the request's identity, timing, bound path parameters and the write-once completion
// slot; upgrade attempts additionally carry the handshake gate.
type RequestRuntime struct {
	url.Values
	*logging.Logger
	*http.Request

	ID   uuid.UUID
	Gate *HandshakeGate

	start     time.Time
	localAddr string
	sink      weblog.Sink
	completed *ResponseContext
}

// NewRequestRuntime builds the per-request package handed into route handlers.
func NewRequestRuntime(params url.Values, logger *logging.Logger, request *http.Request, sink weblog.Sink) *RequestRuntime {
	return &RequestRuntime{
		Values:  params,
		Logger:  logger,
		Request: request,

		ID:    uuid.NewV4(),
		start: time.Now(),
		sink:  sink,
	}
}

// ReadBody will attempt to fill the provided interface with values from the http request
func (runtime *RequestRuntime) ReadBody(target interface{}) error {
	decoder := json.NewDecoder(runtime.Request.Body)

	if e := decoder.Decode(target); e != nil {
		return e
	}

	return nil
}

// ContentType returns the content type header value from the request.
func (runtime *RequestRuntime) ContentType() string {
	return runtime.HeaderValue(defs.APIContentTypeHeader)
}

// GetQueryParam returns the value associated w/ the given key in the request's query string.
func (runtime *RequestRuntime) GetQueryParam(name string) string {
	return runtime.URL.Query().Get(name)
}

// HeaderValue returns the value associated w/ the given key in the request's header.
func (runtime *RequestRuntime) HeaderValue(name string) string {
	return runtime.Header.Get(name)
}

// ServerError returns a HandlerResult w/ the standardized server error response text
func (runtime *RequestRuntime) ServerError() HandlerResult {
	return HandlerResult{Errors: []error{fmt.Errorf(defs.ErrServerError)}}
}

// LogicError will wrap the provided string in the appropriate error prefix and return a HandlerResult
func (runtime *RequestRuntime) LogicError(message string) HandlerResult {
	return HandlerResult{Errors: []error{fmt.Errorf(message)}}
}

// AuthorizeUpgrade marks the current handshake attempt as approved, recording the optional
// subprotocol list. Returns false when the request carries no gate (it was not an upgrade
// attempt), in which case the call has no effect.
func (runtime *RequestRuntime) AuthorizeUpgrade(subprotocols ...string) bool {
	if runtime.Gate == nil {
		return false
	}

	runtime.Gate.Authorize(subprotocols...)
	return true
}

// Complete writes the request's single response. A second call indicates a double-replying worker
// or dispatcher bug and panics rather than silently clobbering the first write.
func (runtime *RequestRuntime) Complete(status int, payload interface{}) ResponseContext {
	if runtime.completed != nil {
		panic(fmt.Errorf(defs.ErrDoubleCompletion))
	}

	response := ResponseContext{StatusCode: status, Payload: payload, Elapsed: time.Since(runtime.start)}
	runtime.completed = &response

	return response
}

// Completed returns the response written into the slot, if any.
func (runtime *RequestRuntime) Completed() (ResponseContext, bool) {
	if runtime.completed == nil {
		return ResponseContext{}, false
	}

	return *runtime.completed, true
}

// Duration returns elapsed time since the request was created, stable once completion occurred.
func (runtime *RequestRuntime) Duration() time.Duration {
	if runtime.completed != nil {
		return runtime.completed.Elapsed
	}

	return time.Since(runtime.start)
}

// emit builds the completion record for this request and hands it to the sink.
func (runtime *RequestRuntime) emit(response ResponseContext, written int) {
	if runtime.sink == nil {
		return
	}

	identity, _, _ := runtime.BasicAuth()

	runtime.sink.Enqueue(weblog.Event{
		Timestamp:    runtime.start,
		RemoteAddr:   runtime.RemoteAddr,
		LocalAddr:    runtime.localAddr,
		Identity:     identity,
		Method:       runtime.Method,
		URI:          runtime.URL.RequestURI(),
		RequestSize:  runtime.ContentLength,
		Status:       response.StatusCode,
		ResponseSize: written,
		Duration:     response.Elapsed,
		Protocol:     runtime.Proto,
		UserAgent:    runtime.HeaderValue(defs.APIUserAgentHeader),
		Referer:      runtime.HeaderValue(defs.APIRefererHeader),
	})
}
