package resolver

import (
	"fmt"
	"strings"

	"github.com/stubwire/stubwire/pkg/verb"
)

// Conflict is one (verb, basePath) key claimed by more than one capability.
type Conflict struct {
	Verb      verb.Verb
	Path      string
	Claimants int
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s %s claimed by %d capabilities", c.Verb, c.Path, c.Claimants)
}

// ConfigurationError is a fatal configuration problem: conflicting
// (verb, path) claims among resolved capabilities, or an invalid declarative
// entry. It aborts resolution for the unit.
type ConfigurationError struct {
	Message   string
	Conflicts []Conflict
	cause     error
}

func (e *ConfigurationError) Error() string {
	if len(e.Conflicts) > 0 {
		parts := make([]string, len(e.Conflicts))
		for i, c := range e.Conflicts {
			parts[i] = c.String()
		}
		return fmt.Sprintf("configuration error: conflicting capability claims: %s", strings.Join(parts, "; "))
	}
	if e.cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.cause
}

// ProviderLookupError indicates a named provider or method could not be
// resolved to a usable callable: not registered, not invocable, nil result,
// or wrong return type.
type ProviderLookupError struct {
	Provider string
	Method   string
	Reason   string
}

func (e *ProviderLookupError) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("provider lookup failed for %q: %s", e.Provider, e.Reason)
	}
	return fmt.Sprintf("provider lookup failed for %s.%s: %s", e.Provider, e.Method, e.Reason)
}

// ProviderInvocationError indicates a located provider panicked while being
// invoked. The original failure is preserved as the cause.
type ProviderInvocationError struct {
	Provider string
	Method   string
	Cause    error
}

func (e *ProviderInvocationError) Error() string {
	return fmt.Sprintf("provider %s.%s panicked during invocation: %v", e.Provider, e.Method, e.Cause)
}

func (e *ProviderInvocationError) Unwrap() error {
	return e.Cause
}
