package routes

import "sync"
import "strings"

import "github.com/dadleyy/relay.api/relay/net"
import "github.com/dadleyy/relay.api/relay/defs"
import "github.com/dadleyy/relay.api/relay/logging"

// NewStreamsAPI constructs the streams api and the registration stream it drains.
func NewStreamsAPI() *Streams {
	logger := logging.New(defs.StreamsAPILogPrefix, logging.Red)
	return &Streams{logger, make(chan defs.Streamer, 10)}
}

// Streams route engine authorizes websocket handshakes on stream topics and owns the pool of
// connections the server runtime publishes after a successful upgrade.
type Streams struct {
	logging.LeveledLogger

	Registrations chan defs.Streamer
}

// Attach handles GET /streams/{topic} upgrade attempts. Authorization must happen here,
// synchronously; the server runtime reads the gate as soon as this returns.
func (streams *Streams) Attach(runtime *net.RequestRuntime) net.HandlerResult {
	topic := runtime.Get("topic")

	if len(topic) < 1 {
		return runtime.LogicError(defs.ErrNotFound)
	}

	requested := subprotocols(runtime.HeaderValue(defs.APISubprotocolHeader))

	if ok := runtime.AuthorizeUpgrade(requested...); ok != true {
		streams.Warnf("attach reached outside a handshake attempt, topic[%s]", topic)
		return runtime.LogicError(defs.ErrBadRequestFormat)
	}

	streams.Infof("authorized stream attach, topic[%s]", topic)
	return net.HandlerResult{NoRender: true}
}

// Start receives upgraded connections from the registration stream until the kill switch fires,
// closing whatever remains attached on the way out.
func (streams *Streams) Start(wg *sync.WaitGroup, stop defs.KillSwitch) {
	defer wg.Done()

	streams.Infof("stream registration processor starting")

	var pool []defs.Streamer
	running := true

	for running {
		select {
		case connection, ok := <-streams.Registrations:
			if ok != true {
				running = false
				break
			}

			if e := streams.welcome(connection); e != nil {
				streams.Warnf("unable to welcome stream, closing: %s", e.Error())
				connection.Close()
				break
			}

			pool = append(pool, connection)
			streams.Infof("stream attached, pool size[%d]", len(pool))
		case <-stop:
			streams.Warnf("received kill signal, breaking")
			running = false
			break
		}
	}

	for _, connection := range pool {
		connection.Close()
	}
}

// welcome sends the initial text frame confirming the attach before the connection enters the pool.
func (streams *Streams) welcome(connection defs.Streamer) error {
	writer, e := connection.NextWriter(defs.TextWriter)

	if e != nil {
		return e
	}

	defer writer.Close()

	_, e = writer.Write([]byte("attached"))
	return e
}

func subprotocols(header string) []string {
	if len(header) == 0 {
		return nil
	}

	parts := strings.Split(header, ",")
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}

	return out
}
