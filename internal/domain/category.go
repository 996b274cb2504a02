package domain

import (
	"strings"
)

// DefaultCategoryColor is used for new categories without a color and for
// categories promoted from the legacy string-array layout.
const DefaultCategoryColor = "#f97316"

// Category is a named, colored label matched against Resource.Tags by name
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// PaletteColor is one of the preset category colors
type PaletteColor struct {
	Name  string
	Value string
}

// Palette lists the preset category colors, default first
var Palette = []PaletteColor{
	{Name: "orange", Value: "#f97316"},
	{Name: "red", Value: "#ef4444"},
	{Name: "green", Value: "#22c55e"},
	{Name: "blue", Value: "#3b82f6"},
	{Name: "purple", Value: "#a855f7"},
	{Name: "pink", Value: "#ec4899"},
	{Name: "cyan", Value: "#06b6d4"},
	{Name: "yellow", Value: "#eab308"},
}

// ResolveColor maps a palette name to its hex value. Any other non-empty
// value is returned unchanged; empty input yields DefaultCategoryColor.
func ResolveColor(color string) string {
	color = strings.TrimSpace(color)
	if color == "" {
		return DefaultCategoryColor
	}
	for _, p := range Palette {
		if strings.EqualFold(p.Name, color) {
			return p.Value
		}
	}
	return color
}

// CategoryNames returns the set of names of the given categories
func CategoryNames(categories []Category) map[string]bool {
	names := make(map[string]bool, len(categories))
	for _, c := range categories {
		names[c.Name] = true
	}
	return names
}

// FindCategoryByName returns the first category whose name matches case-insensitively
func FindCategoryByName(categories []Category, name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryOf returns the first category referenced by the resource's tags
func CategoryOf(r *Resource, categories []Category) (Category, bool) {
	for _, c := range categories {
		if r.HasTag(c.Name) {
			return c, true
		}
	}
	return Category{}, false
}
