package net

import "io"
import "fmt"
import "log"
import "bytes"
import "net/url"
import "testing"
import "net/http"
import "net/http/httptest"
import "github.com/franela/goblin"

import "github.com/dadleyy/relay.api/relay/defs"
import "github.com/dadleyy/relay.api/relay/logging"
import "github.com/dadleyy/relay.api/relay/weblog"

type testSink struct {
	events []weblog.Event
}

func (sink *testSink) Enqueue(event weblog.Event) {
	sink.events = append(sink.events, event)
}

type testStreamer struct {
	closed bool
}

func (streamer *testStreamer) NextWriter(int) (io.WriteCloser, error) {
	return nil, fmt.Errorf("not implemented")
}

func (streamer *testStreamer) NextReader() (int, io.Reader, error) {
	return 0, nil, fmt.Errorf("not implemented")
}

func (streamer *testStreamer) Close() error {
	streamer.closed = true
	return nil
}

type testUpgrader struct {
	errors    []error
	streamers []defs.Streamer
	headers   []http.Header
}

func (upgrader *testUpgrader) UpgradeWebsocket(response http.ResponseWriter, request *http.Request, header http.Header) (defs.Streamer, error) {
	upgrader.headers = append(upgrader.headers, header)

	if len(upgrader.streamers) >= 1 {
		return upgrader.streamers[0], nil
	}

	e := fmt.Errorf("bad")

	if len(upgrader.errors) >= 1 {
		e = upgrader.errors[0]
	}

	return nil, e
}

func newTestLogger() *logging.Logger {
	out := log.New(bytes.NewBuffer([]byte{}), "testing", 0)
	return &logging.Logger{Logger: out}
}

type requestRuntimeScaffold struct {
	body    *bytes.Buffer
	values  url.Values
	sink    *testSink
	request *http.Request
	runtime *RequestRuntime
}

func (s *requestRuntimeScaffold) Reset() {
	s.body = bytes.NewBuffer([]byte{})
	s.values = make(url.Values)
	s.sink = &testSink{}
	s.request = httptest.NewRequest("GET", "/something", s.body)
	s.runtime = NewRequestRuntime(s.values, newTestLogger(), s.request, s.sink)
}

func Test_RequestRuntime(t *testing.T) {
	g := goblin.Goblin(t)

	s := &requestRuntimeScaffold{}

	g.Describe("RequestRuntime", func() {

		g.BeforeEach(s.Reset)

		g.Describe("#ServerError", func() {

			g.It("returns the error string in the appropriate error response", func() {
				r := s.runtime.ServerError()
				g.Assert(r.Errors[0].Error()).Equal(defs.ErrServerError)
			})
		})

		g.Describe("#LogicError", func() {

			g.It("returns the error string in the appropriate error response", func() {
				r := s.runtime.LogicError("bad request")
				g.Assert(r.Errors[0].Error()).Equal("bad request")
			})
		})

		g.Describe("#ReadBody", func() {
			g.It("returns an error if unable to parse the request body into the given interface", func() {
				s.body.Write([]byte("}{"))

				dest := struct {
					Name string `json:"name"`
				}{}

				g.Assert(s.runtime.ReadBody(&dest) != nil).Equal(true)
			})

			g.It("fills the given interface from a valid json body", func() {
				json := []byte(`{"name":"frank reynolds"}`)
				s.body.Write(json)
				s.body.Grow(len(json))
				dest := &struct {
					Name string `json:"name"`
				}{}

				g.Assert(s.runtime.ReadBody(dest)).Equal(nil)
				g.Assert(dest.Name).Equal("frank reynolds")
			})
		})

		g.Describe("#ContentType", func() {
			g.It("returns the content type from the request header", func() {
				s.request.Header.Set(defs.APIContentTypeHeader, "something")
				g.Assert(s.runtime.ContentType()).Equal("something")
			})
		})

		g.Describe("#GetQueryParam", func() {

			g.It("returns an empty string if unable to parse the query string", func() {
				g.Assert(s.runtime.GetQueryParam("something")).Equal("")
			})

			g.It("returns the string set on the http request", func() {
				s.request.URL, _ = url.Parse("http://example.com?something=hi")
				g.Assert(s.runtime.GetQueryParam("something")).Equal("hi")
			})

		})

		g.Describe("#HeaderValue", func() {

			g.It("returns an empty string if header is not set", func() {
				g.Assert(s.runtime.HeaderValue("something")).Equal("")
			})

			g.It("returns the string associated with the header", func() {
				s.request.Header.Set("something", "hello")
				g.Assert(s.runtime.HeaderValue("something")).Equal("hello")
			})

		})

		g.Describe("#AuthorizeUpgrade", func() {

			g.It("returns false when the request carries no handshake gate", func() {
				g.Assert(s.runtime.AuthorizeUpgrade("chat")).Equal(false)
			})

			g.It("authorizes the gate when one is present", func() {
				s.runtime.Gate = &HandshakeGate{}
				g.Assert(s.runtime.AuthorizeUpgrade("chat")).Equal(true)
				g.Assert(s.runtime.Gate.IsAuthorized()).Equal(true)
				g.Assert(s.runtime.Gate.Subprotocols()[0]).Equal("chat")
			})

		})

		g.Describe("#Complete", func() {

			g.It("stores the status, payload and a non-negative duration", func() {
				completed := s.runtime.Complete(200, 3.14)
				g.Assert(completed.StatusCode).Equal(200)
				g.Assert(completed.Payload.(float64)).Equal(3.14)
				g.Assert(completed.Elapsed >= 0).Equal(true)
			})

			g.It("is readable after completion via Completed", func() {
				s.runtime.Complete(404, nil)
				completed, ok := s.runtime.Completed()
				g.Assert(ok).Equal(true)
				g.Assert(completed.StatusCode).Equal(404)
			})

			g.It("reports nothing from Completed before any write", func() {
				_, ok := s.runtime.Completed()
				g.Assert(ok).Equal(false)
			})

			g.It("keeps the duration stable once completion has occurred", func() {
				s.runtime.Complete(200, nil)
				first := s.runtime.Duration()
				second := s.runtime.Duration()
				g.Assert(first == second).Equal(true)
			})

			g.It("panics on a second call", func() {
				s.runtime.Complete(200, nil)

				defer func() {
					g.Assert(recover() != nil).Equal(true)
				}()

				s.runtime.Complete(500, nil)
			})

		})

		g.Describe("#emit", func() {

			g.It("enqueues a record carrying the request's method, uri and status", func() {
				completed := s.runtime.Complete(202, nil)
				s.runtime.emit(completed, 12)

				g.Assert(len(s.sink.events)).Equal(1)
				event := s.sink.events[0]
				g.Assert(event.Method).Equal("GET")
				g.Assert(event.URI).Equal("/something")
				g.Assert(event.Status).Equal(202)
				g.Assert(event.ResponseSize).Equal(12)
				g.Assert(event.Duration >= 0).Equal(true)
			})

			g.It("does nothing when no sink was configured", func() {
				runtime := &RequestRuntime{Request: s.request}
				completed := runtime.Complete(200, nil)
				runtime.emit(completed, 0)
			})

		})

	})
}
