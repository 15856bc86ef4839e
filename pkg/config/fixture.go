// Package config loads fixture files describing a test unit's routing
// configuration from YAML or JSON.
package config

import (
	"fmt"

	"github.com/stubwire/stubwire/pkg/declarative"
	"github.com/stubwire/stubwire/pkg/resolver"
)

// ProviderRef names a registered provider and the symbolic method to invoke.
type ProviderRef struct {
	Name   string `json:"name" yaml:"name"`
	Method string `json:"method" yaml:"method"`
}

// Fixture is the file representation of a unit scope. Fixtures nest: a
// suite-level fixture may carry operation-level child fixtures that see the
// suite's endpoints in addition to their own.
type Fixture struct {
	// Name identifies the scope.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// FallbackStatus overrides the router fallback (418 when unset).
	FallbackStatus int `json:"fallbackStatus,omitempty" yaml:"fallbackStatus,omitempty"`

	// Capability names a registered capability constructor.
	Capability string `json:"capability,omitempty" yaml:"capability,omitempty"`

	// Provider names a registered provider and method.
	Provider *ProviderRef `json:"provider,omitempty" yaml:"provider,omitempty"`

	// Endpoints are the declarative entries attached to this scope.
	Endpoints []declarative.Entry `json:"endpoints,omitempty" yaml:"endpoints,omitempty"`

	// Units are nested child scopes.
	Units []Fixture `json:"units,omitempty" yaml:"units,omitempty"`
}

// Validate checks every declarative entry in the fixture tree.
func (f *Fixture) Validate() error {
	for i, e := range f.Endpoints {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("endpoint %d of %q: %w", i, f.Name, err)
		}
	}
	for i := range f.Units {
		if err := f.Units[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Unit converts the fixture root into a resolver unit.
func (f *Fixture) Unit() *resolver.Unit {
	return f.unit(nil)
}

// UnitNamed finds the named scope anywhere in the fixture tree and returns
// it as a unit whose parent chain mirrors the fixture nesting.
func (f *Fixture) UnitNamed(name string) (*resolver.Unit, error) {
	if u := f.findUnit(nil, name); u != nil {
		return u, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnitNotFound, name)
}

func (f *Fixture) unit(parent *resolver.Unit) *resolver.Unit {
	u := &resolver.Unit{
		Name:           f.Name,
		Parent:         parent,
		Entries:        f.Endpoints,
		CapabilityRef:  f.Capability,
		FallbackStatus: f.FallbackStatus,
	}
	if f.Provider != nil {
		u.ProviderRef = f.Provider.Name
		u.ProviderMethod = f.Provider.Method
	}
	return u
}

func (f *Fixture) findUnit(parent *resolver.Unit, name string) *resolver.Unit {
	self := f.unit(parent)
	if f.Name == name {
		return self
	}
	for i := range f.Units {
		if u := f.Units[i].findUnit(self, name); u != nil {
			return u
		}
	}
	return nil
}
