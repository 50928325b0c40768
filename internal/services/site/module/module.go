// Package module defines the feature contract used by site composition.
package module

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mjkconsultancy/site/internal/content"
)

// Dependencies carries the shared inputs every module may use.
type Dependencies struct {
	Content *content.Registry
	Logger  *zap.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by site composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Closer is implemented by modules that hold per-view resources.
type Closer interface {
	Close()
}
