package net

import "fmt"
import "strconv"

import "github.com/dadleyy/relay.api/relay/defs"

// ParamSource indicates where a declared parameter is built from.
type ParamSource int

const (
	// ParamSourcePath parameters come from named capture groups in the route pattern.
	ParamSourcePath ParamSource = iota

	// ParamSourceBody parameters come from the request's json body.
	ParamSourceBody
)

// ParamKind is the semantic type tag of a declared parameter.
type ParamKind int

const (
	// ParamString values pass through unparsed.
	ParamString ParamKind = iota

	// ParamInt values are parsed as base-10 integers.
	ParamInt

	// ParamFloat values are parsed as 64 bit floats.
	ParamFloat
)

// ParamSpec is a single declared parameter on a route registration.
type ParamSpec struct {
	Name   string
	Source ParamSource
	Kind   ParamKind
}

// Bind constructs the values declared by a route from the matched path parameters and the request
// body. Any parameter that cannot be built is a client error; the request never reaches a worker.
func (runtime *RequestRuntime) Bind(specs []ParamSpec) (map[string]interface{}, error) {
	values := make(map[string]interface{})

	var body map[string]interface{}

	for _, spec := range specs {
		switch spec.Source {
		case ParamSourceBody:
			if body == nil {
				if e := runtime.ReadBody(&body); e != nil {
					return nil, fmt.Errorf(defs.ErrBadRequestFormat)
				}
			}

			raw, ok := body[spec.Name]

			if ok != true {
				return nil, fmt.Errorf(defs.ErrBadRequestFormat)
			}

			value, e := coerceBody(raw, spec.Kind)

			if e != nil {
				return nil, e
			}

			values[spec.Name] = value
		default:
			value, e := coercePath(runtime.Get(spec.Name), spec.Kind)

			if e != nil {
				return nil, e
			}

			values[spec.Name] = value
		}
	}

	return values, nil
}

func coercePath(raw string, kind ParamKind) (interface{}, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf(defs.ErrBadRequestFormat)
	}

	switch kind {
	case ParamInt:
		value, e := strconv.Atoi(raw)

		if e != nil {
			return nil, fmt.Errorf(defs.ErrBadRequestFormat)
		}

		return value, nil
	case ParamFloat:
		value, e := strconv.ParseFloat(raw, 64)

		if e != nil {
			return nil, fmt.Errorf(defs.ErrBadRequestFormat)
		}

		return value, nil
	default:
		return raw, nil
	}
}

// json decoding produces float64 for every number; integral declarations narrow from there.
func coerceBody(raw interface{}, kind ParamKind) (interface{}, error) {
	switch kind {
	case ParamInt:
		value, ok := raw.(float64)

		if ok != true || value != float64(int(value)) {
			return nil, fmt.Errorf(defs.ErrBadRequestFormat)
		}

		return int(value), nil
	case ParamFloat:
		value, ok := raw.(float64)

		if ok != true {
			return nil, fmt.Errorf(defs.ErrBadRequestFormat)
		}

		return value, nil
	default:
		value, ok := raw.(string)

		if ok != true {
			return nil, fmt.Errorf(defs.ErrBadRequestFormat)
		}

		return value, nil
	}
}
