package net

// Metadata is the set of renderer-level annotations attached to a result.
type Metadata map[string]interface{}

// ResultList is the list of values rendered back to the client.
type ResultList []interface{}

// HandlerResult is returned by every route handler and consumed by the ServerRuntime's renderer.
type HandlerResult struct {
	Errors   []error
	Results  ResultList
	Metadata Metadata
	Redirect string
	NoRender bool
}
