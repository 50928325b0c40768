// Package modules defines the site module registry.
package modules

import (
	"github.com/mjkconsultancy/site/internal/services/site/module"
	"github.com/mjkconsultancy/site/internal/services/site/modules/contact"
	"github.com/mjkconsultancy/site/internal/services/site/modules/home"
)

// Default returns the modules served by the site, in mount order.
func Default(deps module.Dependencies, contactCfg contact.Config) []module.Module {
	return []module.Module{
		home.New(deps),
		contact.New(deps, contactCfg),
	}
}
