// Package nav tracks navigation state for the site frame: the active route,
// mobile menu visibility, and whether the page has scrolled far enough to
// switch the header into its compact style.
package nav

import (
	"slices"

	"github.com/mjkconsultancy/site/internal/content"
)

// ScrollThreshold is the vertical offset, in pixels, past which the header
// is considered scrolled.
const ScrollThreshold = 50

// State is an immutable snapshot handed to renderers.
type State struct {
	ActiveRoute string
	MenuOpen    bool
	ScrollY     int
	Scrolled    bool
	Items       []content.NavItem
}

// IsActive reports whether item matches the active route exactly.
func (s State) IsActive(item content.NavItem) bool {
	return item.Path == s.ActiveRoute
}

// Controller owns navigation state for one page view.
type Controller struct {
	items       []content.NavItem
	activeRoute string
	menuOpen    bool
	scrollY     int
}

// New returns a controller positioned at the root route with the menu closed
// and the viewport at the top.
func New(items []content.NavItem) *Controller {
	return &Controller{
		items:       slices.Clone(items),
		activeRoute: content.RootPath,
	}
}

// Navigate moves to path. Every navigation closes the mobile menu and resets
// scroll to the top, including navigation to the current route.
func (c *Controller) Navigate(path string) {
	c.activeRoute = path
	c.menuOpen = false
	c.scrollY = 0
}

// ToggleMenu flips mobile menu visibility.
func (c *Controller) ToggleMenu() {
	c.menuOpen = !c.menuOpen
}

// CloseMenu hides the mobile menu.
func (c *Controller) CloseMenu() {
	c.menuOpen = false
}

// Scroll records the current vertical scroll offset.
func (c *Controller) Scroll(y int) {
	if y < 0 {
		y = 0
	}
	c.scrollY = y
}

// ActiveRoute returns the current route.
func (c *Controller) ActiveRoute() string {
	return c.activeRoute
}

// IsActive reports whether item matches the active route exactly.
func (c *Controller) IsActive(item content.NavItem) bool {
	return item.Path == c.activeRoute
}

// State snapshots the controller.
func (c *Controller) State() State {
	return State{
		ActiveRoute: c.activeRoute,
		MenuOpen:    c.menuOpen,
		ScrollY:     c.scrollY,
		Scrolled:    c.scrollY > ScrollThreshold,
		Items:       slices.Clone(c.items),
	}
}
