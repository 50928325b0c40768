package content

import (
	"strings"
	"unicode"
)

// TelHref builds a tel: link, stripping every whitespace rune from phone.
func TelHref(phone string) string {
	return "tel:" + strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}

// MailtoHref builds a mailto: link from an address, verbatim.
func MailtoHref(email string) string {
	return "mailto:" + email
}
