// Package theme defines the styling applied uniformly across a dashboard.
//
// A [Theme] carries two things:
//
//   - LayoutHead: a markup fragment prefixed to every generated document
//     (doctype, head, stylesheet). It is template text, so it may not use
//     the slot names declared by layout skeletons.
//   - ChartProperties: styling keys copied onto every chart that supports
//     theming (see chart.Themeable).
//
// Themes are immutable values. Built-in themes are available through
// [Lookup]; custom themes are loaded from TOML files with [LoadFile].
//
//	th, err := theme.Lookup("dark")
//	doc := variant.Generate("Sales", charts, th)
package theme

import (
	"maps"
	"slices"
)

// Well-known chart property keys. Charts may ignore keys they do not use.
const (
	PropBackground  = "background"
	PropColor       = "color"
	PropBorderColor = "border_color"
	PropFontFamily  = "font_family"
	PropAccent      = "accent"
)

// Properties are the chart-styling values a theme applies to each chart.
type Properties map[string]any

// Clone returns a shallow copy so a chart can keep its own properties.
func (p Properties) Clone() Properties {
	if p == nil {
		return Properties{}
	}
	return maps.Clone(p)
}

// String returns the value for key if it is a string, or "".
func (p Properties) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Keys returns the property names in sorted order.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Theme is the styling configuration for one dashboard.
type Theme struct {
	Name            string     `toml:"name" json:"name"`
	LayoutHead      string     `toml:"layout_head" json:"layout_head"`
	ChartProperties Properties `toml:"chart_properties" json:"chart_properties"`
}

// WithName returns a copy of t renamed to name.
func (t Theme) WithName(name string) Theme {
	t.Name = name
	t.ChartProperties = t.ChartProperties.Clone()
	return t
}
