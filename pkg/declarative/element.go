package declarative

import (
	"strings"

	"github.com/stubwire/stubwire/internal/kvjson"
	"github.com/stubwire/stubwire/pkg/capability"
	"github.com/stubwire/stubwire/pkg/verb"
)

// Content-Type values inferred per body kind.
const (
	contentTypeText = "text/plain"
	contentTypeJSON = "application/json"
)

// Element is the capability built from one declarative entry. It answers its
// single configured verb on its path; every other verb defers. The response
// is assembled once at construction and never changes.
type Element struct {
	path     string
	verb     verb.Verb
	response *capability.Response
}

// NewElement parses an entry into an immutable Element. It fails fast when
// more than one content kind is set, the status is missing, or the verb is
// outside the enumeration.
func NewElement(e Entry) (*Element, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	v := verb.GET
	if e.Verb != "" {
		v, _ = verb.Parse(e.Verb)
	}

	path := e.Path
	if path == "" {
		path = "/"
	}

	return &Element{
		path:     path,
		verb:     v,
		response: assembleResponse(e),
	}, nil
}

// assembleResponse builds the canned response: status from the entry,
// explicit headers in configured order, then Content-Type resolution. An
// explicit ContentType always wins; an inferred default is only appended
// when the explicit header list did not already set Content-Type.
func assembleResponse(e Entry) *capability.Response {
	resp := &capability.Response{StatusCode: e.Status}

	for _, raw := range e.Headers {
		name, value, found := strings.Cut(raw, "=")
		if !found {
			continue
		}
		resp.Headers = append(resp.Headers, capability.Header{Name: name, Value: value})
	}

	var body string
	inferred := ""
	switch {
	case e.Text != "":
		body = e.Text
		inferred = contentTypeText
	case e.JSONPairs != "":
		body = kvjson.Convert(e.JSONPairs)
		inferred = contentTypeJSON
	case e.Raw != "":
		body = e.Raw
	}
	if body != "" {
		resp.Body = []byte(body)
	}

	switch {
	case e.ContentType != "":
		setHeader(resp, "Content-Type", e.ContentType)
	case inferred != "" && !resp.HasHeader("Content-Type"):
		resp.Headers = append(resp.Headers, capability.Header{Name: "Content-Type", Value: inferred})
	}

	return resp
}

// setHeader replaces the first occurrence of name, or appends it.
func setHeader(resp *capability.Response, name, value string) {
	for i, h := range resp.Headers {
		if strings.EqualFold(h.Name, name) {
			resp.Headers[i].Value = value
			return
		}
	}
	resp.Headers = append(resp.Headers, capability.Header{Name: name, Value: value})
}

// BasePath returns the configured path.
func (el *Element) BasePath() string {
	return el.path
}

// Verbs returns a singleton set containing only the configured verb.
func (el *Element) Verbs() verb.Set {
	return verb.Of(el.verb)
}

func (el *Element) Get(*capability.Request) *capability.Response {
	return el.respond(verb.GET)
}

func (el *Element) Post(*capability.Request) *capability.Response {
	return el.respond(verb.POST)
}

func (el *Element) Put(*capability.Request) *capability.Response {
	return el.respond(verb.PUT)
}

func (el *Element) Delete(*capability.Request) *capability.Response {
	return el.respond(verb.DELETE)
}

func (el *Element) respond(v verb.Verb) *capability.Response {
	if v != el.verb {
		return nil
	}
	// Copy so callers mutating the descriptor cannot corrupt the element.
	out := &capability.Response{StatusCode: el.response.StatusCode, Body: el.response.Body}
	out.Headers = append(out.Headers, el.response.Headers...)
	return out
}

var _ capability.Capability = (*Element)(nil)
