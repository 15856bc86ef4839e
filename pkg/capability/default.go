package capability

import "net/http"

// DefaultCapability answers the generic path "/" with optimistic responses:
// 200 OK for reads, 201 Created for POST, 204 No Content for PUT and DELETE.
// The resolver falls back to it when no configuration source yields anything.
type DefaultCapability struct {
	Base
}

// Default returns the pre-built fallback capability.
func Default() *DefaultCapability {
	return &DefaultCapability{}
}

func (d *DefaultCapability) Get(*Request) *Response {
	return &Response{StatusCode: http.StatusOK}
}

func (d *DefaultCapability) Post(*Request) *Response {
	return &Response{StatusCode: http.StatusCreated}
}

func (d *DefaultCapability) Put(*Request) *Response {
	return &Response{StatusCode: http.StatusNoContent}
}

func (d *DefaultCapability) Delete(*Request) *Response {
	return &Response{StatusCode: http.StatusNoContent}
}

var _ Capability = (*DefaultCapability)(nil)
