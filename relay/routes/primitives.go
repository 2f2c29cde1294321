package routes

import "fmt"
import "net/http"

import "github.com/dadleyy/relay.api/relay/net"
import "github.com/dadleyy/relay.api/relay/defs"
import "github.com/dadleyy/relay.api/relay/worker"
import "github.com/dadleyy/relay.api/relay/logging"

var primitiveParams = []net.ParamSpec{
	{Name: "status", Source: net.ParamSourcePath, Kind: net.ParamInt},
	{Name: "data", Source: net.ParamSourceBody, Kind: net.ParamFloat},
}

// NewPrimitivesAPI constructs the primitives api around the shared worker dispatcher.
func NewPrimitivesAPI(dispatcher *worker.Dispatcher) *Primitives {
	logger := logging.New(defs.PrimitivesAPILogPrefix, logging.Green)
	return &Primitives{logger, dispatcher}
}

// Primitives route engine dispatches status-echo workers around a primitive float payload.
type Primitives struct {
	logging.LeveledLogger
	dispatcher *worker.Dispatcher
}

type primitiveRequest struct {
	Status int
	Data   float64
}

type primitiveResponse struct {
	Status int
	Data   float64
}

// Update handles PUT /primitive/{status}. The caller-supplied status is honored verbatim in the
// completion; the payload passes through only on the canonical success status.
func (primitives *Primitives) Update(runtime *net.RequestRuntime) net.HandlerResult {
	values, e := runtime.Bind(primitiveParams)

	if e != nil {
		primitives.Warnf("unable to bind primitive parameters: %s", e.Error())
		runtime.Complete(http.StatusBadRequest, nil)
		return runtime.LogicError(defs.ErrBadRequestFormat)
	}

	status := values["status"].(int)

	// The route pattern only guarantees digits; WriteHeader rejects codes outside 100-599.
	if status < 100 || status > 599 {
		primitives.Warnf("status parameter out of range: %d", status)
		runtime.Complete(http.StatusBadRequest, nil)
		return runtime.LogicError(defs.ErrBadRequestFormat)
	}

	input := primitiveRequest{Status: status, Data: values["data"].(float64)}

	output, e := primitives.dispatcher.Dispatch(echoPrimitive, input)

	if e != nil {
		primitives.Errorf("primitive dispatch failed: %s", e.Error())

		status := http.StatusInternalServerError

		if e.Error() == defs.ErrWorkerTimeout {
			status = http.StatusGatewayTimeout
		}

		runtime.Complete(status, nil)
		return runtime.LogicError(e.Error())
	}

	response, ok := output.(primitiveResponse)

	if ok != true {
		primitives.Errorf("worker replied with unexpected value: %v", output)
		runtime.Complete(http.StatusInternalServerError, nil)
		return runtime.ServerError()
	}

	runtime.Complete(response.Status, response.Data)
	return net.HandlerResult{Results: net.ResultList{response.Data}}
}

// echoPrimitive is the worker factory bound to the primitive route; each request gets a fresh
// single-use task.
func echoPrimitive() worker.Task {
	return func(input interface{}) interface{} {
		request, ok := input.(primitiveRequest)

		if ok != true {
			panic(fmt.Errorf("unexpected primitive input: %v", input))
		}

		if request.Status != http.StatusOK {
			return primitiveResponse{Status: request.Status}
		}

		return primitiveResponse{Status: request.Status, Data: request.Data}
	}
}
