package capability

import "github.com/stubwire/stubwire/pkg/verb"

// Base is an embeddable default implementation of Capability. It claims "/",
// supports all four verbs, and defers every request. Embed it and override
// only what the fixture needs.
type Base struct {
	// Path overrides the claimed base path when non-empty.
	Path string
}

// BasePath returns the configured path, defaulting to "/".
func (b Base) BasePath() string {
	if b.Path == "" {
		return "/"
	}
	return b.Path
}

// Verbs returns all four verbs by default.
func (Base) Verbs() verb.Set {
	return verb.AllSet()
}

func (Base) Get(*Request) *Response    { return nil }
func (Base) Post(*Request) *Response   { return nil }
func (Base) Put(*Request) *Response    { return nil }
func (Base) Delete(*Request) *Response { return nil }
