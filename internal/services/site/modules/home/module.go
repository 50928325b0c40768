// Package home serves the landing page and the health check.
package home

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mjkconsultancy/site/internal/services/site/module"
	"github.com/mjkconsultancy/site/internal/services/site/platform/httpx"
	"github.com/mjkconsultancy/site/internal/services/site/platform/pagerender"
	"github.com/mjkconsultancy/site/internal/services/site/platform/weberror"
	"github.com/mjkconsultancy/site/internal/services/site/routepath"
	"github.com/mjkconsultancy/site/internal/services/site/templates"
)

// Module provides the home routes.
type Module struct {
	deps module.Dependencies
}

// New returns a home module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the home route handlers.
func (m Module) Mount() (module.Mount, error) {
	if m.deps.Content == nil {
		return module.Mount{}, errors.New("home: content registry is required")
	}
	router := chi.NewRouter()
	router.Get(routepath.Root, m.handleRoot)
	router.Get(routepath.Health, m.handleHealth)
	router.MethodNotAllowed(httpx.MethodNotAllowed(http.MethodGet))
	return module.Mount{Prefix: routepath.Root, Handler: router}, nil
}

func (m Module) handleRoot(w http.ResponseWriter, r *http.Request) {
	registry := m.deps.Content
	err := pagerender.WritePage(w, r, m.deps, pagerender.Page{
		Title: registry.Company().Tagline,
		Fragment: templates.HomePage(templates.HomeView{
			Hero:          registry.Hero(),
			About:         registry.About(),
			ServicesIntro: registry.ServicesIntro(),
			Services:      registry.Services(),
			CallToAction:  registry.CallToAction(),
		}),
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, m.deps)
	}
}

func (Module) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteText(w, http.StatusOK, "ok")
}
