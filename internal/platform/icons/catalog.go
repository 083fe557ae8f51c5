package icons

import "strings"

// ID identifies one icon in the catalog.
type ID string

const (
	Dashboard   ID = "dashboard"
	Documents   ID = "documents"
	AIAssistant ID = "ai-assistant"
	Generic     ID = "generic"
)

// Definition describes a core icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
	// Path is the outline SVG path data drawn in a 24x24 viewbox.
	Path string
}

var catalog = []Definition{
	{
		ID:          Dashboard,
		Name:        "Dashboard",
		Description: "Dashboard home.",
		Path:        "M3 12l2-2m0 0l7-7 7 7M5 10v10a1 1 0 001 1h3m10-11l2 2m-2-2v10a1 1 0 01-1 1h-3",
	},
	{
		ID:          Documents,
		Name:        "Documents",
		Description: "Clearance documents.",
		Path:        "M9 12h6m-6 4h6m2 5H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414",
	},
	{
		ID:          AIAssistant,
		Name:        "AI Assistant",
		Description: "Conversational assistant.",
		Path:        "M8 10h.01M12 10h.01M16 10h.01M9 16H5a2 2 0 01-2-2V6a2 2 0 012-2h14a2 2 0 012 2v8",
	},
	{
		ID:          Generic,
		Name:        "Generic",
		Description: "Default icon for uncategorized entries.",
		Path:        "M12 8v4l3 3m6-3a9 9 0 11-18 0 9 9 0 0118 0z",
	},
}

// Catalog returns the icon definitions.
func Catalog() []Definition {
	return append([]Definition(nil), catalog...)
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	want := ID(strings.TrimSpace(string(id)))
	for _, def := range catalog {
		if def.ID == want {
			return def, true
		}
	}
	return Definition{}, false
}

// PathOrDefault returns the glyph path for id, falling back to the generic icon.
func PathOrDefault(id ID) string {
	if def, ok := Lookup(id); ok {
		return def.Path
	}
	def, _ := Lookup(Generic)
	return def.Path
}
