package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mjkconsultancy/site/internal/platform/icons"
)

// attr is one HTML attribute. A boolean attribute renders without a value.
type attr struct {
	name    string
	value   string
	boolean bool
}

func a(name, value string) attr {
	return attr{name: name, value: value}
}

// hrefAttr passes u through templ.URL, so a configured link with an unsafe
// scheme renders as templ's failed-sanitisation placeholder.
func hrefAttr(u string) attr {
	return a("href", string(templ.URL(u)))
}

func flag(name string) attr {
	return attr{name: name, boolean: true}
}

// when returns attrs only if cond holds.
func when(cond bool, attrs ...attr) []attr {
	if !cond {
		return nil
	}
	return attrs
}

func attrs(groups ...[]attr) []attr {
	var out []attr
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

// markup writes HTML to w and keeps the first write error.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkup(ctx context.Context, w io.Writer) *markup {
	return &markup{ctx: ctx, w: w}
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) open(tag string, list ...attr) {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for _, at := range list {
		b.WriteString(" ")
		b.WriteString(at.name)
		if at.boolean {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(at.value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	m.raw(b.String())
}

func (m *markup) close(tag string) {
	m.raw("</" + tag + ">")
}

// elem writes a complete element with escaped text content.
func (m *markup) elem(tag, text string, list ...attr) {
	m.open(tag, list...)
	m.text(text)
	m.close(tag)
}

func (m *markup) component(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func (m *markup) icon(id icons.ID, class string) {
	m.raw(`<svg class="` + templ.EscapeString(strings.TrimSpace("icon "+class)) + `" aria-hidden="true" focusable="false"><use href="#` + templ.EscapeString(icons.SymbolID(id)) + `"></use></svg>`)
}

// component adapts a markup writer function to templ.
func component(fn func(m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		fn(m)
		return m.err
	})
}

func classes(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}
