// Package httpkit re-exports the platform http surface for modules and
// carries the shared API middleware stack
package httpkit

import (
	"net/http"

	phttp "sktmorph/internal/platform/net/http"
	"sktmorph/internal/platform/net/http/bind"
)

type (
	// Response is the return-style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router

	// Envelope is the JSON body of every response
	Envelope = phttp.Envelope
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response mapped from err
func Error(err error) Response { return phttp.Error(err) }

// Get mounts a body-less JSON handler
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// Post mounts a JSON handler that binds and validates T
func Post[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...bind.JSONOptions) {
	phttp.PostJSON(r, path, h, opts...)
}
