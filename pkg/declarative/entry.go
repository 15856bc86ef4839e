// Package declarative builds single-endpoint capabilities from structured
// configuration entries: one entry, one path, one verb, one canned response.
package declarative

import (
	"fmt"

	"github.com/stubwire/stubwire/pkg/verb"
)

// ValidationError represents a construction-time failure with field context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid declarative entry: %s: %s", e.Field, e.Message)
}

// Entry is one declarative endpoint description. Exactly one of Text,
// JSONPairs and Raw may be set.
type Entry struct {
	// Path is the base path the endpoint claims (default "/").
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Verb is the single method the endpoint answers (default GET).
	Verb string `json:"verb,omitempty" yaml:"verb,omitempty"`

	// Status is the response status code. Required, must be >= 100.
	Status int `json:"status" yaml:"status"`

	// Text is a plain-text body; infers Content-Type text/plain.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// JSONPairs is a comma-separated key=value list converted to a JSON
	// object body; infers Content-Type application/json.
	JSONPairs string `json:"jsonPairs,omitempty" yaml:"jsonPairs,omitempty"`

	// Raw is a verbatim body with no inferred Content-Type.
	Raw string `json:"raw,omitempty" yaml:"raw,omitempty"`

	// Headers are explicit "name=value" response headers, replayed in order.
	// Entries without "=" are dropped.
	Headers []string `json:"headers,omitempty" yaml:"headers,omitempty"`

	// ContentType overrides any inferred Content-Type when non-empty.
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
}

// contentKinds counts how many body kinds the entry sets.
func (e Entry) contentKinds() int {
	n := 0
	if e.Text != "" {
		n++
	}
	if e.JSONPairs != "" {
		n++
	}
	if e.Raw != "" {
		n++
	}
	return n
}

// Validate checks the entry's construction-time invariants.
func (e Entry) Validate() error {
	if e.Status < 100 {
		return &ValidationError{Field: "status", Message: "status is required and must be >= 100"}
	}
	if e.contentKinds() > 1 {
		return &ValidationError{Field: "content", Message: "text, jsonPairs and raw are mutually exclusive"}
	}
	if e.Verb != "" {
		if _, err := verb.Parse(e.Verb); err != nil {
			return &ValidationError{Field: "verb", Message: err.Error()}
		}
	}
	return nil
}
