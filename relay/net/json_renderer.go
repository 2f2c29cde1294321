package net

import "time"
import "net/http"
import "encoding/json"

// JSONRenderer serializes handler results as the api's json envelope.
type JSONRenderer struct {
	version string
}

type jsonResponse struct {
	Status  string     `json:"status"`
	Meta    Metadata   `json:"meta"`
	Errors  []string   `json:"errors"`
	Results ResultList `json:"results"`
}

// Render writes the completed status code and the json envelope. The status code is taken verbatim
// from the response context; handlers own it, the renderer never rewrites it.
func (renderer *JSONRenderer) Render(response http.ResponseWriter, completed ResponseContext, result HandlerResult) error {
	headers := response.Header()
	headers["Content-Type"] = []string{"application/json"}

	errors := make([]string, 0, len(result.Errors))
	meta := Metadata{"time": time.Now(), "version": renderer.version}

	for _, e := range result.Errors {
		errors = append(errors, e.Error())
	}

	for key, value := range result.Metadata {
		meta[key] = value
	}

	results := result.Results

	if results == nil && completed.Payload != nil {
		results = ResultList{completed.Payload}
	}

	out := jsonResponse{"SUCCESS", meta, errors, results}

	if len(errors) >= 1 {
		out.Status = "ERRORED"
	}

	response.WriteHeader(completed.StatusCode)
	return json.NewEncoder(response).Encode(out)
}
