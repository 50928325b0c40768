// Package config reads the site's MJK_SITE_* environment variables into
// typed structs and reports fatal startup errors for cmd/site.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from MJK_SITE_* variables, applying envDefault tags
// for anything unset.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
