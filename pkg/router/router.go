// Package router combines an ordered list of capabilities into a single
// request dispatcher with a configurable fallback status.
package router

import (
	"net/http"
	"strings"

	"github.com/stubwire/stubwire/pkg/capability"
	"github.com/stubwire/stubwire/pkg/verb"
)

// DefaultFallbackStatus is returned when no capability claims a request.
// 418 makes an unrouted test request hard to mistake for a real 404 from a
// configured fixture; use WithFallback(404) when a plain not-found is wanted.
const DefaultFallbackStatus = http.StatusTeapot

// Router holds capabilities in registration order and dispatches each request
// to the first one that answers. It is stateless per request beyond the list
// and the fallback code.
type Router struct {
	caps     []capability.Capability
	fallback int
}

// New creates an empty router with the default fallback status.
func New() *Router {
	return &Router{fallback: DefaultFallbackStatus}
}

// Add appends one capability. Registration order is dispatch order; there is
// no removal operation.
func (r *Router) Add(c capability.Capability) *Router {
	if c != nil {
		r.caps = append(r.caps, c)
	}
	return r
}

// AddAll appends capabilities in the given order.
func (r *Router) AddAll(caps ...capability.Capability) *Router {
	for _, c := range caps {
		r.Add(c)
	}
	return r
}

// WithFallback sets the status returned when nothing matches.
func (r *Router) WithFallback(status int) *Router {
	r.fallback = status
	return r
}

// Len returns the number of registered capabilities.
func (r *Router) Len() int {
	return len(r.caps)
}

// Capabilities returns the registered capabilities in dispatch order.
func (r *Router) Capabilities() []capability.Capability {
	out := make([]capability.Capability, len(r.caps))
	copy(out, r.caps)
	return out
}

// FallbackStatus returns the configured fallback status code.
func (r *Router) FallbackStatus() int {
	return r.fallback
}

// Route dispatches one request. Capabilities whose base path is a string
// prefix of the request path are tried in registration order; the first
// non-nil response wins. Prefix matching is deliberately segment-unaware
// ("/api" matches "/apiv2"); fixtures relying on segment boundaries must
// encode them in the base path.
//
// A request whose method is outside the verb enumeration fails with
// *verb.UnsupportedError. If no capability answers, the fallback status is
// returned with an empty body. A panicking handler is not recovered here;
// a misbehaving response function is a test-author bug, not a routing
// concern.
func (r *Router) Route(req *capability.Request) (*capability.Response, error) {
	v, err := verb.Parse(req.Method)
	if err != nil {
		return nil, err
	}

	for _, c := range r.caps {
		if !strings.HasPrefix(req.Path, c.BasePath()) {
			continue
		}
		if !c.Verbs().Contains(v) {
			continue
		}
		if resp := capability.Dispatch(v, c, req); resp != nil {
			return resp, nil
		}
	}

	return &capability.Response{StatusCode: r.fallback}, nil
}
