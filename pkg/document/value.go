package document

import (
	"html/template"
	"strings"
)

// Value is anything that can be bound to a slot.
type Value interface {
	HTML() template.HTML
}

// Fragment is a rendered HTML snippet.
type Fragment template.HTML

// Empty is the explicit placeholder for slots with nothing to show.
const Empty Fragment = ""

// HTML returns the fragment as trusted template HTML.
func (f Fragment) HTML() template.HTML { return template.HTML(f) }

// IsEmpty reports whether v renders to nothing.
func IsEmpty(v Value) bool {
	return v == nil || v.HTML() == ""
}

// Column is an ordered vertical stack of values, used for the widget sidebar.
type Column struct {
	items []Value
}

// NewColumn creates an empty column.
func NewColumn() *Column {
	return &Column{}
}

// Append adds v at the bottom of the column.
func (c *Column) Append(v Value) {
	c.items = append(c.items, v)
}

// Len returns the number of items in the column.
func (c *Column) Len() int { return len(c.items) }

// Items returns the column contents in append order.
func (c *Column) Items() []Value {
	return append([]Value(nil), c.items...)
}

// HTML renders the items in order, each in its own wrapper.
func (c *Column) HTML() template.HTML {
	var b strings.Builder
	b.WriteString(`<div class="column">`)
	for _, v := range c.items {
		b.WriteString(`<div class="column-item">`)
		b.WriteString(string(v.HTML()))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}
