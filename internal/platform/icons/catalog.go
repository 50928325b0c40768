package icons

import (
	"strings"
)

// ID identifies one drawable icon.
type ID string

// Service icons referenced by content keys.
const (
	BookOpen    ID = "BookOpen"
	Calculator  ID = "Calculator"
	FileText    ID = "FileText"
	TrendingUp  ID = "TrendingUp"
	Search      ID = "Search"
	PieChart    ID = "PieChart"
	Monitor     ID = "Monitor"
	Users       ID = "Users"
	ShieldCheck ID = "ShieldCheck"
)

// Interface icons used by the site frame and pages.
const (
	ArrowRight    ID = "ArrowRight"
	CheckCircle   ID = "CheckCircle2"
	Menu          ID = "Menu"
	Close         ID = "X"
	Phone         ID = "Phone"
	Mail          ID = "Mail"
	MapPin        ID = "MapPin"
	Clock         ID = "Clock"
	Send          ID = "Send"
	MessageSquare ID = "MessageSquare"
)

// Brand glyphs.
const (
	LinkedIn  ID = "LinkedIn"
	Instagram ID = "Instagram"
)

// Fallback is drawn for any key missing from the catalog.
const Fallback = ArrowRight

// Variant selects how an icon is painted.
type Variant int

const (
	// VariantStroke draws an outline glyph with the current text color.
	VariantStroke Variant = iota
	// VariantFilled draws a solid glyph with the current text color.
	VariantFilled
)

// Definition describes a catalog entry.
type Definition struct {
	ID          ID
	Name        string
	Lucide      string
	Variant     Variant
	Description string
}

var catalog = []Definition{
	{ID: BookOpen, Name: "Book open", Lucide: "book-open", Description: "Bookkeeping and accounting."},
	{ID: Calculator, Name: "Calculator", Lucide: "calculator", Description: "Tax services."},
	{ID: FileText, Name: "File text", Lucide: "file-text", Description: "VAT registration and filing."},
	{ID: TrendingUp, Name: "Trending up", Lucide: "trending-up", Description: "Advisory services."},
	{ID: Search, Name: "Search", Lucide: "search", Description: "Feasibility studies."},
	{ID: PieChart, Name: "Pie chart", Lucide: "chart-pie", Description: "Financial consulting."},
	{ID: Monitor, Name: "Monitor", Lucide: "monitor", Description: "Technology and software solutions."},
	{ID: Users, Name: "Users", Lucide: "users", Description: "Management consulting."},
	{ID: ShieldCheck, Name: "Shield check", Lucide: "shield-check", Description: "Audit and assurance."},
	{ID: ArrowRight, Name: "Arrow right", Lucide: "arrow-right", Description: "Default icon for unknown keys."},
	{ID: CheckCircle, Name: "Check circle", Lucide: "circle-check", Description: "About section highlights."},
	{ID: Menu, Name: "Menu", Lucide: "menu", Description: "Open the mobile menu."},
	{ID: Close, Name: "Close", Lucide: "x", Description: "Close the mobile menu."},
	{ID: Phone, Name: "Phone", Lucide: "phone", Description: "Phone numbers."},
	{ID: Mail, Name: "Mail", Lucide: "mail", Description: "Email address."},
	{ID: MapPin, Name: "Map pin", Lucide: "map-pin", Description: "Office address."},
	{ID: Clock, Name: "Clock", Lucide: "clock", Description: "Business hours."},
	{ID: Send, Name: "Send", Lucide: "send", Description: "Sent contact request."},
	{ID: MessageSquare, Name: "Message square", Lucide: "message-square", Description: "WhatsApp chat."},
	{ID: LinkedIn, Name: "LinkedIn", Lucide: "linkedin", Variant: VariantFilled, Description: "LinkedIn profile."},
	{ID: Instagram, Name: "Instagram", Lucide: "instagram", Variant: VariantFilled, Description: "Instagram profile."},
}

var byID = func() map[ID]Definition {
	index := make(map[ID]Definition, len(catalog))
	for _, def := range catalog {
		index[def.ID] = def
	}
	return index
}()

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	def, ok := byID[id]
	return def, ok
}

// Resolve maps a symbolic content key to a catalog icon, falling back to
// Fallback when the key is unknown.
func Resolve(key string) ID {
	id := ID(strings.TrimSpace(key))
	if _, ok := byID[id]; ok {
		return id
	}
	return Fallback
}

// DefinitionOrDefault returns the definition for id or the fallback entry.
func DefinitionOrDefault(id ID) Definition {
	if def, ok := Lookup(id); ok {
		return def
	}
	return byID[Fallback]
}
