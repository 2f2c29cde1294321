package worker

import "fmt"

import "github.com/dadleyy/relay.api/relay/defs"

// Task computes exactly one reply from exactly one input. Domain-level error statuses belong in the
// reply value itself; a panic during the computation is treated as a worker fault by the dispatcher.
type Task func(input interface{}) interface{}

// Factory builds the single-use task for one dispatch. Factories are registered on routes and
// invoked once per matched request; the task may close over request-specific state.
type Factory func() Task

type result struct {
	output interface{}
	fault  error
}

// spawn starts the goroutine backing a single-use worker. The input and reply channels both have a
// capacity of one so neither the sender nor an abandoned worker can block the other side.
func spawn(factory Factory) *ephemeral {
	instance := &ephemeral{
		input: make(chan interface{}, 1),
		reply: make(chan result, 1),
		kill:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	go instance.run(factory)

	return instance
}

type ephemeral struct {
	input chan interface{}
	reply chan result
	kill  chan struct{}
	done  chan struct{}

	delivered bool
}

func (worker *ephemeral) run(factory Factory) {
	defer close(worker.done)

	task := factory()

	select {
	case input := <-worker.input:
		worker.reply <- compute(task, input)
	case <-worker.kill:
	}
}

// send delivers the worker's sole input message. Workers are never reused; a second send indicates
// a dispatcher bug and fails loudly.
func (worker *ephemeral) send(input interface{}) {
	if worker.delivered {
		panic(fmt.Errorf(defs.ErrWorkerReuse))
	}

	worker.delivered = true
	worker.input <- input
}

// release guarantees the backing goroutine exits even if no input was ever consumed.
func (worker *ephemeral) release() {
	close(worker.kill)
}

func compute(task Task, input interface{}) (out result) {
	defer func() {
		if recovered := recover(); recovered != nil {
			out = result{fault: fmt.Errorf("%s: %v", defs.ErrWorkerFault, recovered)}
		}
	}()

	return result{output: task(input)}
}
