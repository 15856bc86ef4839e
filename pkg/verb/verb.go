// Package verb defines the closed HTTP method enumeration used by fixture
// routing. Only GET, POST, PUT and DELETE are routable; anything else is an
// unsupported verb.
package verb

import (
	"fmt"
	"strings"
)

// Verb is one of the four routable HTTP methods.
type Verb string

const (
	GET    Verb = "GET"
	POST   Verb = "POST"
	PUT    Verb = "PUT"
	DELETE Verb = "DELETE"
)

// All returns every routable verb in canonical order.
func All() []Verb {
	return []Verb{GET, POST, PUT, DELETE}
}

// UnsupportedError indicates a request method outside the closed enumeration.
type UnsupportedError struct {
	Method string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported verb %q: must be one of GET, POST, PUT, DELETE", e.Method)
}

// Parse maps a method string to a Verb, case-insensitively.
func Parse(method string) (Verb, error) {
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case "GET":
		return GET, nil
	case "POST":
		return POST, nil
	case "PUT":
		return PUT, nil
	case "DELETE":
		return DELETE, nil
	default:
		return "", &UnsupportedError{Method: method}
	}
}

// Set is a value set of verbs. The zero value is empty.
type Set struct {
	verbs map[Verb]struct{}
}

// AllSet returns a set containing all four verbs.
func AllSet() Set {
	return Of(All()...)
}

// Of builds a set from the given verbs.
func Of(verbs ...Verb) Set {
	s := Set{verbs: make(map[Verb]struct{}, len(verbs))}
	for _, v := range verbs {
		s.verbs[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is a member of the set.
func (s Set) Contains(v Verb) bool {
	_, ok := s.verbs[v]
	return ok
}

// Len returns the number of verbs in the set.
func (s Set) Len() int {
	return len(s.verbs)
}

// Slice returns the members in canonical order.
func (s Set) Slice() []Verb {
	var out []Verb
	for _, v := range All() {
		if s.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// String renders the set for logs and error messages, e.g. "GET,POST".
func (s Set) String() string {
	parts := make([]string, 0, len(s.verbs))
	for _, v := range s.Slice() {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, ",")
}
