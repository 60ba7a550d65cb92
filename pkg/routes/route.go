package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler. An empty Method
// registers the pattern for all methods, leaving method enforcement to the
// handler itself (used by endpoints that must answer 405 with a JSON body).
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
