package worker

import "fmt"
import "time"

import "github.com/dadleyy/relay.api/relay/defs"
import "github.com/dadleyy/relay.api/relay/logging"

// NewDispatcher returns a dispatcher whose workers are bounded by the provided reply timeout.
func NewDispatcher(timeout time.Duration) *Dispatcher {
	logger := logging.New(defs.WorkerDispatcherLogPrefix, logging.Magenta)
	return &Dispatcher{logger, timeout}
}

// The Dispatcher owns the single-shot worker lifecycle: every call to Dispatch spawns one worker,
// delivers one input, awaits one reply and tears the worker down regardless of outcome.
type Dispatcher struct {
	*logging.Logger
	timeout time.Duration
}

// Dispatch blocks the calling goroutine until the worker built by the factory replies to the given
// input, or until the configured timeout elapses. Concurrent dispatches are fully independent.
func (dispatcher *Dispatcher) Dispatch(factory Factory, input interface{}) (interface{}, error) {
	instance := spawn(factory)
	defer instance.release()

	instance.send(input)

	timer := time.NewTimer(dispatcher.timeout)
	defer timer.Stop()

	select {
	case r := <-instance.reply:
		if r.fault != nil {
			dispatcher.Warnf("worker faulted while computing reply: %s", r.fault.Error())
			return nil, r.fault
		}

		return r.output, nil
	case <-timer.C:
		dispatcher.Warnf("worker produced no reply within %v, abandoning", dispatcher.timeout)
		return nil, fmt.Errorf(defs.ErrWorkerTimeout)
	}
}
