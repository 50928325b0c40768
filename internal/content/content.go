// Package content is the read-only registry of site copy, navigation,
// services and contact details.
//
// The registry is decoded once from YAML (embedded by default) and never
// changes afterwards. Accessors hand out copies so renderers cannot mutate
// shared state.
package content

import (
	"html/template"
	"slices"
)

// RootPath and ContactPath are the only two page routes.
const (
	RootPath    = "/"
	ContactPath = "/contact"
)

// NavItem is one navigation entry.
type NavItem struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// ServiceItem describes one offered service.
type ServiceItem struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Points      []string `yaml:"points"`
	// IconName is a symbolic key resolved against the icon table.
	IconName string `yaml:"icon"`
}

// Company holds brand identity.
type Company struct {
	Name          string `yaml:"name"`
	Descriptor    string `yaml:"descriptor"`
	Monogram      string `yaml:"monogram"`
	Tagline       string `yaml:"tagline"`
	Blurb         string `yaml:"blurb"`
	LegalName     string `yaml:"legal_name"`
	CopyrightYear int    `yaml:"copyright_year"`
}

// ContactDetails holds the published ways to reach the firm.
type ContactDetails struct {
	Email       string   `yaml:"email"`
	Phones      []string `yaml:"phones"`
	Office      string   `yaml:"office"`
	Hours       []string `yaml:"hours"`
	WhatsAppURL string   `yaml:"whatsapp_url"`
}

// SocialLinks holds external profile URLs.
type SocialLinks struct {
	LinkedIn  string `yaml:"linkedin"`
	Instagram string `yaml:"instagram"`
	TikTok    string `yaml:"tiktok"`
}

// Hero is the home page banner copy.
type Hero struct {
	Heading         string `yaml:"heading"`
	Highlight       string `yaml:"highlight"`
	Lead            string `yaml:"lead"`
	ImageURL        string `yaml:"image_url"`
	ImageAlt        string `yaml:"image_alt"`
	PrimaryAction   string `yaml:"primary_action"`
	SecondaryAction string `yaml:"secondary_action"`
}

// About is the home page about section.
type About struct {
	Eyebrow    string   `yaml:"eyebrow"`
	Heading    string   `yaml:"heading"`
	ImageURL   string   `yaml:"image_url"`
	ImageAlt   string   `yaml:"image_alt"`
	Body       string   `yaml:"body"`
	Highlights []string `yaml:"highlights"`

	bodyHTML template.HTML
}

// BodyHTML returns the markdown body rendered to HTML.
func (a About) BodyHTML() template.HTML {
	return a.bodyHTML
}

// SectionIntro is a heading block above a section.
type SectionIntro struct {
	Eyebrow string `yaml:"eyebrow"`
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
}

// CallToAction is the closing home page banner.
type CallToAction struct {
	Heading string `yaml:"heading"`
	Lead    string `yaml:"lead"`
	Action  string `yaml:"action"`
}

// ContactPage is the copy of the contact view.
type ContactPage struct {
	Heading         string `yaml:"heading"`
	Lead            string `yaml:"lead"`
	InfoHeading     string `yaml:"info_heading"`
	FormHeading     string `yaml:"form_heading"`
	WhatsAppHeading string `yaml:"whatsapp_heading"`
	WhatsAppLead    string `yaml:"whatsapp_lead"`
	WhatsAppAction  string `yaml:"whatsapp_action"`
	SuccessHeading  string `yaml:"success_heading"`
	SuccessLead     string `yaml:"success_lead"`
}

// Footer is the site footer copy.
type Footer struct {
	LinksHeading   string   `yaml:"links_heading"`
	ContactHeading string   `yaml:"contact_heading"`
	SocialHeading  string   `yaml:"social_heading"`
	Legal          []string `yaml:"legal"`
}

type document struct {
	Company       Company        `yaml:"company"`
	Navigation    []NavItem      `yaml:"navigation"`
	Contact       ContactDetails `yaml:"contact"`
	Social        SocialLinks    `yaml:"social"`
	Hero          Hero           `yaml:"hero"`
	About         About          `yaml:"about"`
	ServicesIntro SectionIntro   `yaml:"services_intro"`
	Services      []ServiceItem  `yaml:"services"`
	CallToAction  CallToAction   `yaml:"call_to_action"`
	ContactPage   ContactPage    `yaml:"contact_page"`
	Footer        Footer         `yaml:"footer"`
}

// Registry is the immutable content set served by the site.
type Registry struct {
	doc document
}

// Company returns brand identity.
func (r *Registry) Company() Company {
	return r.doc.Company
}

// NavItems returns the navigation entries in display order.
func (r *Registry) NavItems() []NavItem {
	return slices.Clone(r.doc.Navigation)
}

// Services returns the offered services in display order.
func (r *Registry) Services() []ServiceItem {
	services := make([]ServiceItem, len(r.doc.Services))
	for i, service := range r.doc.Services {
		service.Points = slices.Clone(service.Points)
		services[i] = service
	}
	return services
}

// Contact returns the published contact details.
func (r *Registry) Contact() ContactDetails {
	contact := r.doc.Contact
	contact.Phones = slices.Clone(contact.Phones)
	contact.Hours = slices.Clone(contact.Hours)
	return contact
}

// Social returns external profile links.
func (r *Registry) Social() SocialLinks {
	return r.doc.Social
}

// Hero returns the home banner copy.
func (r *Registry) Hero() Hero {
	return r.doc.Hero
}

// About returns the about section with its rendered body.
func (r *Registry) About() About {
	about := r.doc.About
	about.Highlights = slices.Clone(about.Highlights)
	return about
}

// ServicesIntro returns the heading block of the services grid.
func (r *Registry) ServicesIntro() SectionIntro {
	return r.doc.ServicesIntro
}

// CallToAction returns the closing banner copy.
func (r *Registry) CallToAction() CallToAction {
	return r.doc.CallToAction
}

// ContactPage returns the contact view copy.
func (r *Registry) ContactPage() ContactPage {
	return r.doc.ContactPage
}

// Footer returns the footer copy.
func (r *Registry) Footer() Footer {
	footer := r.doc.Footer
	footer.Legal = slices.Clone(footer.Legal)
	return footer
}
