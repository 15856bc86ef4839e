package resolver

import (
	"fmt"
	"reflect"

	"github.com/stubwire/stubwire/pkg/capability"
)

// CapabilityConstructor builds a capability with no arguments. A failing
// constructor is logged and skipped, not escalated; direct references are
// best-effort.
type CapabilityConstructor func() (capability.Capability, error)

// providerEntry holds everything registered under one provider name.
type providerEntry struct {
	construct func() any          // zero-arg constructor for instance methods
	statics   map[string]func() any // package-level callables, resolved first
}

// Registry is the explicit registration map behind symbolic configuration
// references. Configuration names types and methods as strings; the registry
// late-binds those names to Go values at resolution time.
//
// A Registry is populated once during test setup and read afterwards; it does
// no locking of its own.
type Registry struct {
	capabilities map[string]CapabilityConstructor
	providers    map[string]*providerEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		capabilities: make(map[string]CapabilityConstructor),
		providers:    make(map[string]*providerEntry),
	}
}

// RegisterCapability binds a symbolic capability name to its zero-argument
// constructor, for direct type references in configuration.
func (r *Registry) RegisterCapability(name string, ctor CapabilityConstructor) {
	r.capabilities[name] = ctor
}

// RegisterProvider binds a symbolic provider name to its zero-argument
// constructor. Methods named by configuration are looked up on the
// constructed instance by reflection.
func (r *Registry) RegisterProvider(name string, construct func() any) {
	r.provider(name).construct = construct
}

// RegisterProviderFunc binds a standalone callable under provider.method.
// Standalone callables are preferred over instance methods when both exist.
func (r *Registry) RegisterProviderFunc(provider, method string, fn func() any) {
	r.provider(provider).statics[method] = fn
}

func (r *Registry) provider(name string) *providerEntry {
	e, ok := r.providers[name]
	if !ok {
		e = &providerEntry{statics: make(map[string]func() any)}
		r.providers[name] = e
	}
	return e
}

// capability returns the constructor registered under name, if any.
func (r *Registry) capability(name string) (CapabilityConstructor, bool) {
	ctor, ok := r.capabilities[name]
	return ctor, ok
}

// resolveCallable resolves provider.method to a zero-argument callable.
// Standalone registrations win; otherwise the provider is instantiated and
// the method located by name on the instance. The method must take no
// arguments and return exactly one value.
func (r *Registry) resolveCallable(provider, method string) (func() any, *ProviderLookupError) {
	entry, ok := r.providers[provider]
	if !ok {
		return nil, &ProviderLookupError{Provider: provider, Method: method, Reason: "provider not registered"}
	}

	if fn, ok := entry.statics[method]; ok {
		return fn, nil
	}

	if entry.construct == nil {
		return nil, &ProviderLookupError{Provider: provider, Method: method, Reason: "no standalone callable and no constructor registered"}
	}

	instance := entry.construct()
	if instance == nil {
		return nil, &ProviderLookupError{Provider: provider, Method: method, Reason: "provider constructor returned nil"}
	}

	m := reflect.ValueOf(instance).MethodByName(method)
	if !m.IsValid() {
		return nil, &ProviderLookupError{
			Provider: provider,
			Method:   method,
			Reason:   fmt.Sprintf("no method %q on %T", method, instance),
		}
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return nil, &ProviderLookupError{
			Provider: provider,
			Method:   method,
			Reason:   fmt.Sprintf("method %q must take no arguments and return one value, has %d in / %d out", method, mt.NumIn(), mt.NumOut()),
		}
	}

	return func() any {
		return m.Call(nil)[0].Interface()
	}, nil
}
