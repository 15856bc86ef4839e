package cli

import (
	"fmt"

	"github.com/stubwire/stubwire/pkg/config"
	"github.com/stubwire/stubwire/pkg/resolver"
	"github.com/stubwire/stubwire/pkg/router"
)

// resolveFixture loads the fixture file and resolves the selected unit into
// a router. Provider and capability references in the file need a populated
// registry; from the CLI the registry is empty, so direct references are
// skipped and provider references fail the same way they would in a test
// with nothing registered.
func resolveFixture() (*router.Router, error) {
	if fixturePath == "" {
		return nil, fmt.Errorf("no fixture file: use --fixture or STUBWIRE_FIXTURE")
	}

	f, err := config.LoadFromFile(fixturePath)
	if err != nil {
		return nil, err
	}

	unit := f.Unit()
	if unitName != "" {
		unit, err = f.UnitNamed(unitName)
		if err != nil {
			return nil, err
		}
	}

	res := resolver.New(nil)
	res.SetLogger(newLogger())
	return res.Resolve(unit)
}
