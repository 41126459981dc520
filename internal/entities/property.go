package entities

import "strings"

// Property is a status-effect record referenced by name from attacks and spells
type Property struct {
	ID          string   `json:"id"`
	Type        string   `json:"type,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tooltip     []string `json:"tooltip,omitempty"`
}

// NewProperty reads a property record. The tooltip may be authored as a
// list of lines or a single string.
func NewProperty(rec *Record) *Property {
	p := &Property{
		ID:          rec.Text("id"),
		Type:        rec.String("type"),
		Name:        rec.String("name"),
		Description: rec.String("description"),
	}

	raw, _ := rec.Get("tooltip")
	switch val := raw.(type) {
	case []any:
		p.Tooltip = rec.Strings("tooltip")
	case string:
		if val != "" {
			p.Tooltip = []string{val}
		}
	}

	return p
}

// Blurb returns the text shown under a tooltip for this property: the
// tooltip lines joined by spaces, else the description.
func (p *Property) Blurb() (string, bool) {
	if len(p.Tooltip) > 0 {
		return strings.Join(p.Tooltip, " "), true
	}
	if p.Description != "" {
		return p.Description, true
	}
	return "", false
}
