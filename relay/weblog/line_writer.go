package weblog

import "io"
import "fmt"
import "time"

// LineWriter formats events onto an io.Writer, one combined-log style line per record.
type LineWriter struct {
	io.Writer
}

// WriteEvent renders a single access log line.
func (writer *LineWriter) WriteEvent(event Event) error {
	identity := event.Identity

	if len(identity) == 0 {
		identity = "-"
	}

	_, e := fmt.Fprintf(
		writer,
		"%s %s [%s] \"%s %s %s\" %d %d %d %dms \"%s\" \"%s\"\n",
		event.RemoteAddr,
		identity,
		event.Timestamp.Format(time.RFC3339),
		event.Method,
		event.URI,
		event.Protocol,
		event.Status,
		event.RequestSize,
		event.ResponseSize,
		event.Duration.Milliseconds(),
		event.Referer,
		event.UserAgent,
	)

	return e
}
