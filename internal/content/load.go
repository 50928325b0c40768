package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultDocument []byte

// Overrides replaces individual registry values after decoding. Empty fields
// leave the decoded value untouched.
type Overrides struct {
	WhatsAppURL string
	TikTokURL   string
}

// Default decodes the embedded content.
func Default() (*Registry, error) {
	return Parse(defaultDocument)
}

// Load decodes the YAML file at path, or the embedded content when path is
// empty.
func Load(path string) (*Registry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	registry, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return registry, nil
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Registry, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	body, err := renderMarkdown(doc.About.Body)
	if err != nil {
		return nil, fmt.Errorf("render about body: %w", err)
	}
	doc.About.bodyHTML = body

	registry := &Registry{doc: doc}
	if err := registry.Validate(); err != nil {
		return nil, err
	}
	return registry, nil
}

// WithOverrides returns a copy of r with the non-empty overrides applied.
func (r *Registry) WithOverrides(o Overrides) *Registry {
	clone := &Registry{doc: r.doc}
	if url := strings.TrimSpace(o.WhatsAppURL); url != "" {
		clone.doc.Contact.WhatsAppURL = url
	}
	if url := strings.TrimSpace(o.TikTokURL); url != "" {
		clone.doc.Social.TikTok = url
	}
	return clone
}

// Validate checks the invariants every page relies on.
func (r *Registry) Validate() error {
	var errs []error
	if strings.TrimSpace(r.doc.Company.Name) == "" {
		errs = append(errs, errors.New("company name is required"))
	}
	if len(r.doc.Navigation) == 0 {
		errs = append(errs, errors.New("at least one navigation item is required"))
	}
	seenPaths := make(map[string]bool, len(r.doc.Navigation))
	for i, item := range r.doc.Navigation {
		if strings.TrimSpace(item.Label) == "" || strings.TrimSpace(item.Path) == "" {
			errs = append(errs, fmt.Errorf("navigation[%d]: label and path are required", i))
		}
		seenPaths[item.Path] = true
	}
	for _, path := range []string{RootPath, ContactPath} {
		if !seenPaths[path] {
			errs = append(errs, fmt.Errorf("navigation must include %q", path))
		}
	}
	if strings.TrimSpace(r.doc.Contact.Email) == "" {
		errs = append(errs, errors.New("contact email is required"))
	}
	for i, service := range r.doc.Services {
		if strings.TrimSpace(service.Title) == "" {
			errs = append(errs, fmt.Errorf("services[%d]: title is required", i))
		}
		if len(service.Points) == 0 {
			errs = append(errs, fmt.Errorf("services[%d]: at least one point is required", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %w", errors.Join(errs...))
	}
	return nil
}

// renderMarkdown converts trusted content markdown to HTML. goldmark drops
// raw HTML blocks unless the unsafe renderer option is set.
func renderMarkdown(source string) (template.HTML, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
