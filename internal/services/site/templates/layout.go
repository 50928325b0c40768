package templates

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/mjkconsultancy/site/internal/content"
	"github.com/mjkconsultancy/site/internal/nav"
	"github.com/mjkconsultancy/site/internal/platform/icons"
	"github.com/mjkconsultancy/site/internal/services/site/routepath"
)

const (
	consultationLabel = "Free Consultation"
	htmxScriptURL     = "https://unpkg.com/htmx.org@2.0.4"
)

// LayoutView carries everything the site frame renders around a page.
type LayoutView struct {
	Title   string
	Company content.Company
	Nav     nav.State
	Contact content.ContactDetails
	Social  content.SocialLinks
	Footer  content.Footer
}

// PageTitle joins a page title with the company name.
func PageTitle(page string, company content.Company) string {
	brand := classes(company.Name, company.Descriptor)
	if page == "" {
		return brand
	}
	return page + " | " + brand
}

// Layout renders the full document with body inside the main element.
func Layout(view LayoutView, body templ.Component) templ.Component {
	return component(func(m *markup) {
		m.raw("<!DOCTYPE html>")
		m.open("html", a("lang", "en"))
		m.open("head")
		m.raw(`<meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.elem("title", view.Title)
		m.open("link", a("rel", "stylesheet"), hrefAttr(routepath.Static("site.css")))
		m.open("script", a("src", htmxScriptURL), flag("defer"))
		m.close("script")
		m.open("script", a("src", routepath.Static("site.js")), flag("defer"))
		m.close("script")
		m.close("head")
		m.open("body", a("class", "site"))
		m.raw(icons.Sprite())
		m.open("div", a("class", "frame"))
		writeHeader(m, view)
		m.open("main", a("id", "main"), a("class", "frame-main"))
		m.component(body)
		m.close("main")
		writeFooter(m, view)
		m.close("div")
		m.close("body")
		m.close("html")
	})
}

func writeHeader(m *markup, view LayoutView) {
	state := view.Nav
	m.open("header", attrs(
		[]attr{
			a("class", classes("site-header", headerScrollClass(state.Scrolled))),
			a("data-nav-header", ""),
			a("data-scroll-threshold", strconv.Itoa(nav.ScrollThreshold)),
		},
	)...)
	m.open("div", a("class", "site-header-inner"))
	writeLogo(m, view.Company)

	m.open("nav", a("class", "nav-desktop"), a("aria-label", "Primary"))
	writeNavLinks(m, state, "nav-link")
	m.component(Button(ButtonProps{Label: consultationLabel, Href: routepath.Contact, Class: "nav-cta"}))
	m.close("nav")

	toggleHref := routepath.WithMenuOpen(state.ActiveRoute)
	toggleIcon := icons.Menu
	if state.MenuOpen {
		toggleHref = state.ActiveRoute
		toggleIcon = icons.Close
	}
	m.open("a",
		hrefAttr(toggleHref),
		a("class", "nav-toggle"),
		a("aria-label", "Toggle menu"),
		a("aria-expanded", strconv.FormatBool(state.MenuOpen)),
		a("aria-controls", "mobile-menu"),
		a("data-nav-toggle", ""),
	)
	m.icon(toggleIcon, "nav-toggle-icon")
	m.close("a")
	m.close("div")

	m.open("div", attrs(
		[]attr{
			a("id", "mobile-menu"),
			a("class", classes("nav-mobile", menuClass(state.MenuOpen))),
			a("data-nav-menu", ""),
		},
		when(!state.MenuOpen, a("aria-hidden", "true")),
	)...)
	m.open("nav", a("class", "nav-mobile-links"), a("aria-label", "Mobile"))
	writeNavLinks(m, state, "nav-link nav-link-large")
	m.component(Button(ButtonProps{Label: consultationLabel, Href: routepath.Contact, Class: "nav-mobile-cta"}))
	m.close("nav")
	m.close("div")
	m.close("header")
}

func writeLogo(m *markup, company content.Company) {
	m.open("a", hrefAttr(routepath.Root), a("class", "logo"))
	m.elem("span", company.Monogram, a("class", "logo-mark"), a("aria-hidden", "true"))
	m.open("span", a("class", "logo-name"))
	m.text(company.Name)
	if company.Descriptor != "" {
		m.raw(" ")
		m.elem("span", company.Descriptor, a("class", "logo-descriptor"))
	}
	m.close("span")
	m.close("a")
}

func writeNavLinks(m *markup, state nav.State, class string) {
	for _, item := range state.Items {
		active := state.IsActive(item)
		m.elem("a", item.Label, attrs(
			[]attr{
				hrefAttr(item.Path),
				a("class", classes(class, activeClass(active))),
			},
			when(active, a("aria-current", "page")),
		)...)
	}
}

func writeFooter(m *markup, view LayoutView) {
	m.open("footer", a("class", "site-footer"))
	m.open("div", a("class", "footer-grid"))

	m.open("div", a("class", "footer-brand"))
	m.open("div", a("class", "footer-logo"))
	m.elem("span", view.Company.Monogram, a("class", "logo-mark logo-mark-small"), a("aria-hidden", "true"))
	m.elem("span", view.Company.Name, a("class", "logo-name"))
	m.close("div")
	m.elem("p", view.Company.Blurb, a("class", "footer-blurb"))
	m.close("div")

	m.open("div")
	m.elem("h3", view.Footer.LinksHeading, a("class", "footer-heading"))
	m.open("ul", a("class", "footer-list"))
	for _, item := range view.Nav.Items {
		m.open("li")
		m.elem("a", item.Label, hrefAttr(item.Path), a("class", "footer-link"))
		m.close("li")
	}
	m.close("ul")
	m.close("div")

	m.open("div")
	m.elem("h3", view.Footer.ContactHeading, a("class", "footer-heading"))
	m.open("ul", a("class", "footer-list"))
	m.open("li", a("class", "footer-contact"))
	m.icon(icons.Mail, "icon-accent")
	m.elem("a", view.Contact.Email, hrefAttr(content.MailtoHref(view.Contact.Email)), a("class", "footer-link"))
	m.close("li")
	for _, phone := range view.Contact.Phones {
		m.open("li", a("class", "footer-contact"))
		m.icon(icons.Phone, "icon-accent")
		m.elem("a", phone, hrefAttr(content.TelHref(phone)), a("class", "footer-link"))
		m.close("li")
	}
	m.close("ul")
	m.close("div")

	m.open("div")
	m.elem("h3", view.Footer.SocialHeading, a("class", "footer-heading"))
	m.open("div", a("class", "footer-social"))
	writeSocialLink(m, view.Social.LinkedIn, "LinkedIn", icons.LinkedIn)
	writeSocialLink(m, view.Social.Instagram, "Instagram", icons.Instagram)
	m.close("div")
	m.close("div")

	m.close("div")

	m.open("div", a("class", "footer-bottom"))
	m.elem("p", "© "+strconv.Itoa(view.Company.CopyrightYear)+" "+view.Company.LegalName+". All rights reserved.", a("class", "footer-copyright"))
	m.open("div", a("class", "footer-legal"))
	for _, label := range view.Footer.Legal {
		m.elem("span", label, a("class", "footer-legal-item"))
	}
	m.close("div")
	m.close("div")
	m.close("footer")
}

func writeSocialLink(m *markup, href, label string, icon icons.ID) {
	if href == "" {
		return
	}
	m.open("a", hrefAttr(href), a("target", "_blank"), a("rel", "noopener noreferrer"), a("class", "social-link"))
	m.elem("span", label, a("class", "sr-only"))
	m.icon(icon, "")
	m.close("a")
}

func headerScrollClass(scrolled bool) string {
	if scrolled {
		return "is-scrolled"
	}
	return ""
}

func menuClass(open bool) string {
	if open {
		return "is-open"
	}
	return ""
}

func activeClass(active bool) string {
	if active {
		return "is-active"
	}
	return ""
}
