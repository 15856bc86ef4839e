package capability

import "github.com/stubwire/stubwire/pkg/verb"

// Slot is an explicitly mutable per-verb response cell. A test unit owns its
// slot, adjusts one verb's response mid-test, and calls ResetToDefault before
// handing the unit back. The mutability lives here and nowhere else; no state
// is shared across units.
type Slot struct {
	path      string
	defaults  map[verb.Verb]*Response
	responses map[verb.Verb]*Response
}

// NewSlot creates a slot claiming path, seeded with the given default
// responses. Verbs without a default defer to the next capability.
func NewSlot(path string, defaults map[verb.Verb]*Response) *Slot {
	s := &Slot{
		path:      path,
		defaults:  make(map[verb.Verb]*Response, len(defaults)),
		responses: make(map[verb.Verb]*Response, len(defaults)),
	}
	for v, r := range defaults {
		s.defaults[v] = r
		s.responses[v] = r
	}
	return s
}

// Set replaces the response served for v until the next ResetToDefault.
func (s *Slot) Set(v verb.Verb, resp *Response) {
	s.responses[v] = resp
}

// ResetToDefault restores every verb to its seeded default response.
func (s *Slot) ResetToDefault() {
	for v := range s.responses {
		delete(s.responses, v)
	}
	for v, r := range s.defaults {
		s.responses[v] = r
	}
}

// BasePath returns the claimed path, defaulting to "/".
func (s *Slot) BasePath() string {
	if s.path == "" {
		return "/"
	}
	return s.path
}

// Verbs returns all four verbs; verbs without a response defer.
func (s *Slot) Verbs() verb.Set {
	return verb.AllSet()
}

func (s *Slot) Get(*Request) *Response    { return s.responses[verb.GET] }
func (s *Slot) Post(*Request) *Response   { return s.responses[verb.POST] }
func (s *Slot) Put(*Request) *Response    { return s.responses[verb.PUT] }
func (s *Slot) Delete(*Request) *Response { return s.responses[verb.DELETE] }

var _ Capability = (*Slot)(nil)
