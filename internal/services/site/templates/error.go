package templates

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mjkconsultancy/site/internal/services/site/routepath"
)

// ErrorPageTitle returns the browser title of an error page.
func ErrorPageTitle(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "Page Not Found"
	}
	return "Something Went Wrong"
}

func errorMessage(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "The page you are looking for does not exist."
	}
	return "We could not complete your request. Please try again shortly."
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ErrorPage renders the body of a 404 or 5xx page.
func ErrorPage(statusCode int) templ.Component {
	return component(func(m *markup) {
		status := normalizeErrorStatus(statusCode)
		m.open("section", a("class", "page page-error"), a("data-status", strconv.Itoa(status)))
		m.open("div", a("class", "container error-state"))
		m.elem("p", strconv.Itoa(status), a("class", "error-code"))
		m.elem("h1", ErrorPageTitle(status), a("class", "section-heading"))
		m.elem("p", errorMessage(status), a("class", "section-lead"))
		m.component(Button(ButtonProps{Label: "Back to Home", Href: routepath.Root}))
		m.close("div")
		m.close("section")
	})
}
