package weblog

import "fmt"
import "sync"

import "github.com/dadleyy/relay.api/relay/defs"
import "github.com/dadleyy/relay.api/relay/logging"

// Writer is the downstream destination drained by the queue's consumer goroutine.
type Writer interface {
	WriteEvent(Event) error
}

// NewQueue returns a bounded event queue draining into the provided writer.
func NewQueue(writer Writer, size int) (*Queue, error) {
	if writer == nil {
		return nil, fmt.Errorf(defs.ErrInvalidWriter)
	}

	if size <= 0 {
		size = defs.DefaultWebLogQueueSize
	}

	logger := logging.New(defs.WebLogQueueLogPrefix, logging.Blue)
	return &Queue{logger, writer, make(chan Event, size)}, nil
}

// The Queue buffers completion records between the request path and the downstream writer. A full
// buffer drops new records rather than stalling the caller.
type Queue struct {
	*logging.Logger
	writer Writer
	events chan Event
}

// Enqueue is the Sink implementation; it never blocks.
func (queue *Queue) Enqueue(event Event) {
	select {
	case queue.events <- event:
	default:
		queue.Warnf("event buffer full, dropping record for %s %s", event.Method, event.URI)
	}
}

// Start continuously drains the event buffer into the writer until the kill switch fires.
func (queue *Queue) Start(wg *sync.WaitGroup, stop defs.KillSwitch) {
	defer wg.Done()

	queue.Infof("web log queue starting")

	running := true

	for running {
		select {
		case event, ok := <-queue.events:
			if ok != true {
				return
			}

			if e := queue.writer.WriteEvent(event); e != nil {
				queue.Warnf("unable to write access record: %s", e.Error())
			}
		case <-stop:
			queue.Warnf("received kill signal, breaking")
			running = false
			break
		}
	}

	// Flush whatever was buffered before the kill signal arrived.
	for more := true; more; {
		select {
		case event := <-queue.events:
			if e := queue.writer.WriteEvent(event); e != nil {
				queue.Warnf("unable to write access record: %s", e.Error())
			}
		default:
			more = false
		}
	}
}
