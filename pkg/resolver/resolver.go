// Package resolver turns a test unit's configuration sources into a routable
// capability set under a strict precedence and conflict policy.
package resolver

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/stubwire/stubwire/internal/id"
	"github.com/stubwire/stubwire/pkg/capability"
	"github.com/stubwire/stubwire/pkg/declarative"
	"github.com/stubwire/stubwire/pkg/logging"
	"github.com/stubwire/stubwire/pkg/router"
	"github.com/stubwire/stubwire/pkg/verb"
)

// inPlaceMethod is the well-known method name probed on the unit subject.
const inPlaceMethod = "FixtureCapability"

// Resolver collects capabilities from a unit's configuration sources in
// strict priority order and emits a router. Resolution is synchronous and
// per-unit; nothing is cached across units.
type Resolver struct {
	registry *Registry
	log      *slog.Logger
	fallback int
}

// New creates a resolver backed by the given registry. A nil registry is
// replaced with an empty one.
func New(registry *Registry) *Resolver {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Resolver{
		registry: registry,
		log:      logging.Nop(),
		fallback: router.DefaultFallbackStatus,
	}
}

// SetLogger sets the logger.
func (r *Resolver) SetLogger(log *slog.Logger) {
	if log != nil {
		r.log = log
	}
}

// SetFallbackStatus sets the status emitted routers return when no
// capability claims a request.
func (r *Resolver) SetFallbackStatus(status int) {
	r.fallback = status
}

// Resolve builds the unit's router. Modern sources (direct reference,
// provider lookup, in-place provider, declarative entries) accumulate in
// order; a provider returning a full router bypasses everything else. The
// legacy accessor is consulted only when modern sources yield nothing, and
// the default capability backstops an entirely unconfigured unit.
//
// The accumulated set is validated before combination: two capabilities
// claiming the same (verb, basePath) key is a fatal *ConfigurationError.
func (r *Resolver) Resolve(unit *Unit) (*router.Router, error) {
	if unit == nil {
		unit = &Unit{}
	}
	if unit.ID == "" {
		unit.ID = id.UUID()
	}
	log := r.log.With("unit", unit.Name, "unitId", unit.ID)

	fallback := r.fallback
	if unit.FallbackStatus != 0 {
		fallback = unit.FallbackStatus
	}

	var caps []capability.Capability

	// Source 1: direct capability reference. Construction failures are
	// logged and skipped; an unresolvable reference likely was not meant
	// for this resolver.
	if unit.CapabilityRef != "" {
		if c := r.directCapability(unit.CapabilityRef, log); c != nil {
			caps = append(caps, c)
		}
	}

	// Source 2: provider lookup. A router result short-circuits resolution
	// entirely; it is the highest-precedence outcome.
	if unit.ProviderRef != "" && unit.ProviderMethod != "" {
		result, err := r.invokeProvider(unit.ProviderRef, unit.ProviderMethod)
		if err != nil {
			return nil, err
		}
		switch v := result.(type) {
		case *router.Router:
			log.Debug("provider returned a complete router, bypassing resolution",
				"provider", unit.ProviderRef, "method", unit.ProviderMethod)
			return v, nil
		case capability.Capability:
			caps = append(caps, v)
		default:
			return nil, &ProviderLookupError{
				Provider: unit.ProviderRef,
				Method:   unit.ProviderMethod,
				Reason:   fmt.Sprintf("returned %T, want a capability or a router", result),
			}
		}
	}

	// Source 3: in-place provider method on the unit itself. Explicit
	// author intent; every failure escalates.
	if provider, ok := unit.Subject.(CapabilityProvider); ok {
		c, err := r.invokeInPlace(unit, provider)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}

	// Source 4: declarative entries, innermost scope first.
	for _, entry := range unit.ScopedEntries() {
		element, err := declarative.NewElement(entry)
		if err != nil {
			return nil, &ConfigurationError{
				Message: fmt.Sprintf("declarative entry for %s %s", entry.Verb, entry.Path),
				cause:   err,
			}
		}
		caps = append(caps, element)
	}

	if len(caps) > 0 {
		if err := validateClaims(caps); err != nil {
			return nil, err
		}
		log.Debug("resolved capability set", "capabilities", len(caps), "fallback", fallback)
		return router.New().WithFallback(fallback).AddAll(caps...), nil
	}

	// Source 5: legacy single-dispatcher accessor, used as-is.
	if legacy, ok := unit.Subject.(LegacyRouterSource); ok {
		if lr := legacy.LegacyRouter(); lr != nil && lr.Len() > 0 {
			log.Debug("using legacy router", "capabilities", lr.Len())
			return lr, nil
		}
	}

	// Source 6: nothing configured; answer optimistically.
	log.Debug("no configuration source yielded a capability, using default")
	return router.New().WithFallback(fallback).Add(capability.Default()), nil
}

func (r *Resolver) directCapability(ref string, log *slog.Logger) capability.Capability {
	ctor, ok := r.registry.capability(ref)
	if !ok {
		log.Debug("capability reference not registered, skipping", "ref", ref)
		return nil
	}
	c, err := safeConstruct(ctor)
	if err != nil {
		log.Warn("capability construction failed, skipping", "ref", ref, "error", err)
		return nil
	}
	return c
}

// safeConstruct shields resolution from panicking constructors so a direct
// reference degrades to "no capability from this source".
func safeConstruct(ctor CapabilityConstructor) (c capability.Capability, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("constructor panicked: %v", rec)
		}
	}()
	return ctor()
}

func (r *Resolver) invokeProvider(provider, method string) (any, error) {
	fn, lookupErr := r.registry.resolveCallable(provider, method)
	if lookupErr != nil {
		return nil, lookupErr
	}
	result, invokeErr := callGuarded(provider, method, fn)
	if invokeErr != nil {
		return nil, invokeErr
	}
	if result == nil {
		return nil, &ProviderLookupError{Provider: provider, Method: method, Reason: "returned nil"}
	}
	return result, nil
}

func (r *Resolver) invokeInPlace(unit *Unit, provider CapabilityProvider) (capability.Capability, error) {
	name := unit.Name
	if name == "" {
		name = fmt.Sprintf("%T", unit.Subject)
	}
	result, err := callGuarded(name, inPlaceMethod, func() any {
		if c := provider.FixtureCapability(); c != nil {
			return c
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := result.(capability.Capability)
	if !ok || c == nil {
		return nil, &ProviderLookupError{Provider: name, Method: inPlaceMethod, Reason: "returned no capability"}
	}
	return c, nil
}

// callGuarded invokes fn, converting a panic into a typed invocation error
// with the original failure preserved as cause.
func callGuarded(provider, method string, fn func() any) (result any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			cause, ok := rec.(error)
			if !ok {
				cause = fmt.Errorf("%v", rec)
			}
			result = nil
			err = &ProviderInvocationError{Provider: provider, Method: method, Cause: cause}
		}
	}()
	return fn(), nil
}

// validateClaims groups the accumulated capabilities by (verb, basePath) and
// fails when any key has more than one claimant. Conflicts are reported in
// full; the resolver never silently picks a winner.
func validateClaims(caps []capability.Capability) error {
	type claimKey struct {
		verb verb.Verb
		path string
	}
	claims := make(map[claimKey]int)
	for _, c := range caps {
		for _, v := range c.Verbs().Slice() {
			claims[claimKey{verb: v, path: c.BasePath()}]++
		}
	}

	var conflicts []Conflict
	for key, count := range claims {
		if count > 1 {
			conflicts = append(conflicts, Conflict{Verb: key.verb, Path: key.path, Claimants: count})
		}
	}
	if len(conflicts) == 0 {
		return nil
	}
	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Path != conflicts[j].Path {
			return conflicts[i].Path < conflicts[j].Path
		}
		return conflicts[i].Verb < conflicts[j].Verb
	})
	return &ConfigurationError{Conflicts: conflicts}
}
