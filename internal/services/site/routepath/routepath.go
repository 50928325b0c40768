// Package routepath holds the URL paths served by the site.
package routepath

import "net/url"

const (
	Root           = "/"
	Health         = "/up"
	Contact        = "/contact"
	StaticPrefix   = "/static/"
	ServicesAnchor = "/#services"
)

// Contact sub-routes, relative to the contact mount.
const (
	ContactViewSubmitPattern = "/{viewID}/submit"
	ContactViewFieldsPattern = "/{viewID}/fields"
	ContactViewFormPattern   = "/{viewID}/form"
	ContactViewClosePattern  = "/{viewID}/close"
)

// MenuOpenQuery is appended to a page path to render it with the mobile
// menu open when scripts are unavailable.
const MenuOpenQuery = "menu=open"

// ContactSubmit returns the submit endpoint of a contact view.
func ContactSubmit(viewID string) string {
	return contactView(viewID) + "/submit"
}

// ContactFields returns the field edit endpoint of a contact view.
func ContactFields(viewID string) string {
	return contactView(viewID) + "/fields"
}

// ContactForm returns the form fragment endpoint of a contact view.
func ContactForm(viewID string) string {
	return contactView(viewID) + "/form"
}

// ContactClose returns the teardown endpoint of a contact view.
func ContactClose(viewID string) string {
	return contactView(viewID) + "/close"
}

// Static returns the URL of an embedded asset.
func Static(name string) string {
	return StaticPrefix + name
}

// WithMenuOpen returns path with the mobile menu query set.
func WithMenuOpen(path string) string {
	return path + "?" + MenuOpenQuery
}

func contactView(viewID string) string {
	return Contact + "/" + url.PathEscape(viewID)
}
