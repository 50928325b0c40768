package templates

import "github.com/a-h/templ"

// ButtonVariant selects the visual style of a Button.
type ButtonVariant string

const (
	ButtonPrimary ButtonVariant = "primary"
	ButtonOutline ButtonVariant = "outline"
	ButtonText    ButtonVariant = "text"
)

var buttonVariantClasses = map[ButtonVariant]string{
	ButtonPrimary: "btn-primary",
	ButtonOutline: "btn-outline",
	ButtonText:    "btn-text",
}

// ButtonProps configures a Button. When Href is set the button renders as a
// link.
type ButtonProps struct {
	Label    string
	Variant  ButtonVariant
	Class    string
	Type     string
	Href     string
	Disabled bool
	// Attrs passes extra attributes through unchanged, in order.
	Attrs [][2]string
}

// ButtonClass returns the class list for a variant. Unknown and zero
// variants use the primary style.
func ButtonClass(variant ButtonVariant, extra string) string {
	variantClass, ok := buttonVariantClasses[variant]
	if !ok {
		variantClass = buttonVariantClasses[ButtonPrimary]
	}
	return classes("btn", variantClass, extra)
}

// Button renders a styled button or link.
func Button(props ButtonProps) templ.Component {
	return component(func(m *markup) {
		list := []attr{a("class", ButtonClass(props.Variant, props.Class))}
		tag := "button"
		if props.Href != "" {
			tag = "a"
			list = append(list, hrefAttr(props.Href))
		} else {
			buttonType := props.Type
			if buttonType == "" {
				buttonType = "button"
			}
			list = append(list, a("type", buttonType))
			list = append(list, when(props.Disabled, flag("disabled"))...)
		}
		for _, pair := range props.Attrs {
			list = append(list, a(pair[0], pair[1]))
		}
		m.elem(tag, props.Label, list...)
	})
}
