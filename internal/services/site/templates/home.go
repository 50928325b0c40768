package templates

import (
	"github.com/a-h/templ"

	"github.com/mjkconsultancy/site/internal/content"
	"github.com/mjkconsultancy/site/internal/platform/icons"
	"github.com/mjkconsultancy/site/internal/services/site/routepath"
)

// ServicesSectionID is the anchor of the services grid.
const ServicesSectionID = "services"

// HomeView is the copy of the home page.
type HomeView struct {
	Hero          content.Hero
	About         content.About
	ServicesIntro content.SectionIntro
	Services      []content.ServiceItem
	CallToAction  content.CallToAction
}

// HomePage renders the home sections in order.
func HomePage(view HomeView) templ.Component {
	return component(func(m *markup) {
		m.open("div", a("class", "page page-home"))
		m.component(Hero(view.Hero))
		m.component(About(view.About))
		m.component(Services(view.ServicesIntro, view.Services))
		m.component(CallToAction(view.CallToAction))
		m.close("div")
	})
}

// Hero renders the full-height banner.
func Hero(hero content.Hero) templ.Component {
	return component(func(m *markup) {
		m.open("section", a("class", "hero"))
		m.open("div", a("class", "hero-backdrop"))
		m.open("img", a("src", hero.ImageURL), a("alt", hero.ImageAlt), a("class", "hero-image"))
		m.raw(`<div class="hero-shade"></div>`)
		m.close("div")
		m.open("div", a("class", "hero-content"))
		m.open("h1", a("class", "hero-heading"))
		m.text(hero.Heading)
		m.raw("<br>")
		m.elem("span", hero.Highlight, a("class", "text-gradient"))
		m.close("h1")
		m.elem("p", hero.Lead, a("class", "hero-lead"))
		m.open("div", a("class", "hero-actions"))
		m.component(Button(ButtonProps{Label: hero.PrimaryAction, Href: routepath.Contact, Class: "btn-wide"}))
		m.component(Button(ButtonProps{Label: hero.SecondaryAction, Variant: ButtonOutline, Href: "#" + ServicesSectionID, Class: "btn-wide"}))
		m.close("div")
		m.close("div")
		m.close("section")
	})
}

// About renders the about section with its markdown body.
func About(about content.About) templ.Component {
	return component(func(m *markup) {
		m.open("section", a("class", "about"))
		m.open("div", a("class", "container about-grid"))
		m.open("div", a("class", "about-media"))
		m.raw(`<div class="about-frame" aria-hidden="true"></div>`)
		m.open("img", a("src", about.ImageURL), a("alt", about.ImageAlt), a("class", "about-image"))
		m.close("div")
		m.open("div", a("class", "about-copy"))
		writeSectionHeading(m, about.Eyebrow, about.Heading, "")
		m.raw(`<div class="rule" aria-hidden="true"></div>`)
		m.open("div", a("class", "about-body"))
		m.raw(string(about.BodyHTML()))
		m.close("div")
		m.open("ul", a("class", "about-highlights"))
		for _, highlight := range about.Highlights {
			m.open("li", a("class", "about-highlight"))
			m.icon(icons.CheckCircle, "icon-accent")
			m.elem("span", highlight)
			m.close("li")
		}
		m.close("ul")
		m.close("div")
		m.close("div")
		m.close("section")
	})
}

// Services renders the service grid. Icons outside the table use the
// fallback glyph.
func Services(intro content.SectionIntro, services []content.ServiceItem) templ.Component {
	return component(func(m *markup) {
		m.open("section", a("id", ServicesSectionID), a("class", "services"))
		m.open("div", a("class", "container"))
		m.open("div", a("class", "section-intro"))
		writeSectionHeading(m, intro.Eyebrow, intro.Heading, intro.Lead)
		m.close("div")
		m.open("div", a("class", "services-grid"))
		for _, service := range services {
			m.open("article", a("class", "service-card"), a("data-icon", string(icons.Resolve(service.IconName))))
			m.open("div", a("class", "service-icon"))
			m.icon(icons.Resolve(service.IconName), "")
			m.close("div")
			m.elem("h4", service.Title, a("class", "service-title"))
			if service.Description != "" {
				m.elem("p", service.Description, a("class", "service-description"))
			}
			m.open("ul", a("class", "service-points"))
			for _, point := range service.Points {
				m.open("li", a("class", "service-point"))
				m.raw(`<span class="dot" aria-hidden="true"></span>`)
				m.elem("span", point)
				m.close("li")
			}
			m.close("ul")
			m.close("article")
		}
		m.close("div")
		m.close("div")
		m.close("section")
	})
}

// CallToAction renders the closing banner.
func CallToAction(cta content.CallToAction) templ.Component {
	return component(func(m *markup) {
		m.open("section", a("class", "cta"))
		m.open("div", a("class", "cta-content"))
		m.elem("h2", cta.Heading, a("class", "cta-heading"))
		m.elem("p", cta.Lead, a("class", "cta-lead"))
		m.component(Button(ButtonProps{Label: cta.Action, Href: routepath.Contact, Class: "btn-dark"}))
		m.close("div")
		m.close("section")
	})
}

func writeSectionHeading(m *markup, eyebrow, heading, lead string) {
	m.elem("h2", eyebrow, a("class", "eyebrow"))
	m.elem("h3", heading, a("class", "section-heading"))
	if lead != "" {
		m.elem("p", lead, a("class", "section-lead"))
	}
}
