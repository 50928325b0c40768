package templates

import (
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/mjkconsultancy/site/internal/contactform"
	"github.com/mjkconsultancy/site/internal/content"
	"github.com/mjkconsultancy/site/internal/platform/icons"
	"github.com/mjkconsultancy/site/internal/services/site/routepath"
)

// ContactFormPanelID is the swap target of every form response.
const ContactFormPanelID = "contact-form-panel"

// FormView is the render input of the contact form fragment.
type FormView struct {
	ViewID     string
	Form       contactform.View
	Copy       content.ContactPage
	ResetDelay time.Duration
}

// ContactView is the render input of the contact page.
type ContactView struct {
	Copy    content.ContactPage
	Contact content.ContactDetails
	Form    FormView
}

type formInput struct {
	field       contactform.Field
	label       string
	inputType   string
	placeholder string
}

var formInputs = []formInput{
	{field: contactform.FieldName, label: "Full Name", inputType: "text", placeholder: "John Doe"},
	{field: contactform.FieldEmail, label: "Email Address", inputType: "email", placeholder: "john@example.com"},
	{field: contactform.FieldPhone, label: "Phone Number", inputType: "tel", placeholder: "+971 50 000 0000"},
	{field: contactform.FieldMessage, label: "Message", inputType: "textarea", placeholder: "Tell us about your accounting needs..."},
}

// ContactPage renders the contact page with the info cards, the WhatsApp
// call to action and the form panel.
func ContactPage(view ContactView) templ.Component {
	return component(func(m *markup) {
		m.open("div", a("class", "page page-contact"))
		m.open("div", a("class", "container"))
		m.open("div", a("class", "contact-intro"))
		m.elem("h1", view.Copy.Heading, a("class", "page-heading"))
		m.elem("p", view.Copy.Lead, a("class", "section-lead"))
		m.close("div")

		m.open("div", a("class", "contact-grid"))
		m.open("div", a("class", "contact-info"))
		m.elem("h3", view.Copy.InfoHeading, a("class", "card-heading"))
		m.open("div", a("class", "info-cards"))
		writeInfoCard(m, icons.Phone, "Phone", view.Contact.Phones)
		writeInfoCard(m, icons.Mail, "Email", []string{view.Contact.Email})
		writeInfoCard(m, icons.MapPin, "Office", []string{view.Contact.Office})
		writeInfoCard(m, icons.Clock, "Business Hours", view.Contact.Hours)
		m.close("div")
		writeWhatsApp(m, view.Copy, view.Contact.WhatsAppURL)
		m.close("div")

		m.open("div", a("class", "contact-form-card"))
		m.elem("h3", view.Copy.FormHeading, a("class", "card-heading"))
		m.component(ContactForm(view.Form))
		m.close("div")
		m.close("div")

		m.close("div")
		m.close("div")
	})
}

func writeInfoCard(m *markup, icon icons.ID, heading string, lines []string) {
	m.open("div", a("class", "info-card"))
	m.open("div", a("class", "info-card-icon"))
	m.icon(icon, "icon-accent")
	m.close("div")
	m.open("div")
	m.elem("h4", heading, a("class", "info-card-heading"))
	for _, line := range lines {
		m.elem("p", line, a("class", "info-card-line"))
	}
	m.close("div")
	m.close("div")
}

func writeWhatsApp(m *markup, pageCopy content.ContactPage, href string) {
	m.open("div", a("class", "whatsapp"))
	m.open("div", a("class", "whatsapp-title"))
	m.open("div", a("class", "whatsapp-icon"))
	m.icon(icons.MessageSquare, "")
	m.close("div")
	m.elem("h3", pageCopy.WhatsAppHeading)
	m.close("div")
	m.elem("p", pageCopy.WhatsAppLead, a("class", "whatsapp-lead"))
	m.elem("a", pageCopy.WhatsAppAction, hrefAttr(href), a("target", "_blank"), a("rel", "noopener noreferrer"), a("class", "whatsapp-action"))
	m.close("div")
}

// ContactForm renders the form panel for the current submission status.
//
// The success panel re-fetches the form once the reset delay has elapsed so
// the view returns to an empty idle form without a page reload.
func ContactForm(view FormView) templ.Component {
	return component(func(m *markup) {
		status := view.Form.Status
		m.open("div",
			a("id", ContactFormPanelID),
			a("class", "contact-form-panel"),
			a("data-status", status.String()),
			a("data-contact-view", view.ViewID),
			a("data-close-url", routepath.ContactClose(view.ViewID)),
		)
		if status == contactform.StatusSuccess {
			writeSuccess(m, view)
		} else {
			writeForm(m, view)
		}
		m.close("div")
	})
}

func writeSuccess(m *markup, view FormView) {
	delay := view.ResetDelay
	if delay <= 0 {
		delay = contactform.DefaultResetDelay
	}
	m.open("div",
		a("class", "form-success"),
		a("role", "status"),
		a("hx-get", routepath.ContactForm(view.ViewID)),
		a("hx-trigger", "load delay:"+strconv.FormatInt(delay.Milliseconds(), 10)+"ms"),
		a("hx-target", "#"+ContactFormPanelID),
		a("hx-swap", "outerHTML"),
	)
	m.open("div", a("class", "form-success-icon"))
	m.icon(icons.Send, "")
	m.close("div")
	m.elem("h4", view.Copy.SuccessHeading, a("class", "form-success-heading"))
	m.elem("p", view.Copy.SuccessLead, a("class", "form-success-lead"))
	m.close("div")
}

func writeForm(m *markup, view FormView) {
	form := view.Form
	m.open("form",
		a("class", "contact-form"),
		a("method", "post"),
		a("action", routepath.ContactSubmit(view.ViewID)),
		a("hx-post", routepath.ContactSubmit(view.ViewID)),
		a("hx-target", "#"+ContactFormPanelID),
		a("hx-swap", "outerHTML"),
		a("hx-disabled-elt", "find button[type=submit]"),
	)
	for _, input := range formInputs {
		writeFormField(m, view, input)
	}
	if form.ErrorVisible {
		m.elem("p", form.ErrorMessage, a("class", "form-error"), a("role", "alert"))
	}
	m.component(Button(ButtonProps{
		Label:    form.SubmitLabel,
		Type:     "submit",
		Class:    "btn-block",
		Disabled: form.SubmitDisabled,
		Attrs:    [][2]string{{"data-loading-label", "Sending..."}},
	}))
	m.close("form")
}

func writeFormField(m *markup, view FormView, input formInput) {
	name := string(input.field)
	value := view.Form.Fields.Value(input.field)
	m.open("div", a("class", "form-field"))
	m.elem("label", input.label, a("for", name), a("class", "form-label"))
	common := []attr{
		a("id", name),
		a("name", name),
		flag("required"),
		a("placeholder", input.placeholder),
		a("hx-post", routepath.ContactFields(view.ViewID)),
		a("hx-trigger", "input changed delay:300ms"),
		a("hx-swap", "none"),
		a("hx-vals", `{"field":"`+name+`"}`),
		a("hx-params", "field,"+name),
	}
	if input.inputType == "textarea" {
		m.open("textarea", attrs(common, []attr{a("rows", "4"), a("class", "form-input form-textarea")})...)
		m.text(value)
		m.close("textarea")
	} else {
		m.open("input", attrs([]attr{a("type", input.inputType)}, common, []attr{a("value", value), a("class", "form-input")})...)
	}
	m.close("div")
}
