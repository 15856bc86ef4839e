// Package capability defines the handler contract for fixture routing: a
// capability owns a base path and a verb set, and produces response
// descriptors for the requests it claims.
package capability

import (
	"net/http"

	"github.com/stubwire/stubwire/pkg/verb"
)

// Request describes one inbound test request. It is a plain descriptor, not
// a live network request.
type Request struct {
	Path    string
	Method  string
	Headers http.Header
	Body    []byte
}

// Header is a single response header. Headers are kept as an ordered list so
// fixtures replay them in the order they were configured.
type Header struct {
	Name  string
	Value string
}

// Response is the descriptor a capability produces. A nil *Response from a
// handler operation means "defer to the next capability".
type Response struct {
	StatusCode int
	Headers    []Header
	Body       []byte
}

// Header returns the first value of the named header, or "" if absent.
// Lookup is case-insensitive per HTTP header semantics.
func (r *Response) Header(name string) string {
	canonical := http.CanonicalHeaderKey(name)
	for _, h := range r.Headers {
		if http.CanonicalHeaderKey(h.Name) == canonical {
			return h.Value
		}
	}
	return ""
}

// HasHeader reports whether the named header is present, case-insensitively.
func (r *Response) HasHeader(name string) bool {
	canonical := http.CanonicalHeaderKey(name)
	for _, h := range r.Headers {
		if http.CanonicalHeaderKey(h.Name) == canonical {
			return true
		}
	}
	return false
}

// Capability is one unit of request-handling logic scoped to a base path and
// a verb set. Implementations are built once per test unit and are immutable
// afterwards, except where a type documents an explicit mutable slot.
//
// Each handler operation may return nil, meaning the capability does not
// answer this request and the router should try the next one.
type Capability interface {
	// BasePath is the path prefix this capability claims.
	BasePath() string

	// Verbs is the set of methods this capability answers.
	Verbs() verb.Set

	Get(req *Request) *Response
	Post(req *Request) *Response
	Put(req *Request) *Response
	Delete(req *Request) *Response
}

// Dispatch routes a request to the handler operation matching v. It is the
// verb's single behavior: one verb, one operation.
func Dispatch(v verb.Verb, c Capability, req *Request) *Response {
	switch v {
	case verb.GET:
		return c.Get(req)
	case verb.POST:
		return c.Post(req)
	case verb.PUT:
		return c.Put(req)
	case verb.DELETE:
		return c.Delete(req)
	default:
		return nil
	}
}
