package net

import "regexp"

// RouteConfig defines a simple structure composed of the http method and a regular expression path
// matcher. Named capture groups become the bound path parameters handed to the matched handler.
type RouteConfig struct {
	Method  string
	Pattern *regexp.Regexp
}
