// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/mjkconsultancy/site/internal/content"
	"github.com/mjkconsultancy/site/internal/nav"
	"github.com/mjkconsultancy/site/internal/services/site/module"
	"github.com/mjkconsultancy/site/internal/services/site/platform/httpx"
	"github.com/mjkconsultancy/site/internal/services/site/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
	// ActivePath overrides the request path for navigation highlighting.
	ActivePath string
}

// NavState derives navigation state for a request: the active route is the
// request path and the no-script "menu=open" query opens the mobile menu.
func NavState(r *http.Request, items []content.NavItem) nav.State {
	if r == nil || r.URL == nil {
		return nav.New(items).State()
	}
	return navStateAt(r.URL.Path, r, items)
}

func navStateAt(path string, r *http.Request, items []content.NavItem) nav.State {
	controller := nav.New(items)
	controller.Navigate(path)
	if r != nil && r.URL != nil && r.URL.Query().Get("menu") == "open" {
		controller.ToggleMenu()
	}
	return controller.State()
}

// LayoutView builds the site frame for a request.
func LayoutView(r *http.Request, registry *content.Registry, title string) templates.LayoutView {
	return templates.LayoutView{
		Title:   templates.PageTitle(title, registry.Company()),
		Company: registry.Company(),
		Nav:     NavState(r, registry.NavItems()),
		Contact: registry.Contact(),
		Social:  registry.Social(),
		Footer:  registry.Footer(),
	}
}

// WritePage writes the fragment alone for HTMX requests and inside the full
// layout otherwise.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	if deps.Content == nil {
		return errors.New("content registry is required")
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	ctx := httpx.RequestContext(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if httpx.IsHTMXRequest(r) {
		w.WriteHeader(statusCode)
		return fragment.Render(ctx, w)
	}
	w.WriteHeader(statusCode)
	layout := LayoutView(r, deps.Content, page.Title)
	if page.ActivePath != "" {
		layout.Nav = navStateAt(page.ActivePath, r, deps.Content.NavItems())
	}
	return templates.Layout(layout, fragment).Render(ctx, w)
}
