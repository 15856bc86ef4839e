package resolver

import (
	"github.com/stubwire/stubwire/pkg/capability"
	"github.com/stubwire/stubwire/pkg/declarative"
	"github.com/stubwire/stubwire/pkg/router"
)

// Unit describes one test unit's routing configuration. Units nest: an
// operation-level unit points at its enclosing suite-level unit through
// Parent, and sees the parent's declarative entries in addition to its own.
// Sibling units never see each other's entries.
type Unit struct {
	// Name identifies the unit in logs and error messages.
	Name string

	// ID is assigned during resolution when empty.
	ID string

	// Parent is the enclosing scope, or nil at the outermost level.
	Parent *Unit

	// Entries are the declarative endpoint descriptions attached directly
	// to this unit.
	Entries []declarative.Entry

	// CapabilityRef names a registered capability constructor (direct type
	// reference). Failures here are skipped, not escalated.
	CapabilityRef string

	// ProviderRef and ProviderMethod name a registered provider and the
	// symbolic method to invoke on it. Failures here escalate.
	ProviderRef    string
	ProviderMethod string

	// Subject is the test unit object itself, probed at resolution time for
	// the in-place provider method and the legacy router accessor.
	Subject any

	// FallbackStatus overrides the resolver's fallback when non-zero.
	FallbackStatus int
}

// ScopedEntries returns the unit's own entries followed by each enclosing
// scope's, innermost first.
func (u *Unit) ScopedEntries() []declarative.Entry {
	var out []declarative.Entry
	for scope := u; scope != nil; scope = scope.Parent {
		out = append(out, scope.Entries...)
	}
	return out
}

// CapabilityProvider is the in-place provider probe: a test unit exposing
// FixtureCapability declares explicit author intent, so any problem with it
// escalates instead of being skipped.
type CapabilityProvider interface {
	FixtureCapability() capability.Capability
}

// LegacyRouterSource is the legacy single-dispatcher probe. It is consulted
// only when every modern source yields nothing; a non-empty router from it is
// used as-is, without combination or conflict validation.
type LegacyRouterSource interface {
	LegacyRouter() *router.Router
}
