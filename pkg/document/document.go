package document

import (
	"bytes"
	"html/template"
	"io"
	"slices"

	"github.com/google/uuid"

	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
)

// Document is a template with named slots awaiting values.
// It is built fresh for each dashboard and is not safe for concurrent use.
type Document struct {
	id       uuid.UUID
	text     string
	declared []string
	bound    map[string]Value
}

// New creates a document from template text and the slot names it declares.
func New(text string, slots []string) *Document {
	return &Document{
		id:       uuid.New(),
		text:     text,
		declared: slices.Clone(slots),
		bound:    make(map[string]Value, len(slots)),
	}
}

// ID returns the document's unique identifier.
func (d *Document) ID() uuid.UUID { return d.id }

// Text returns the raw template text.
func (d *Document) Text() string { return d.text }

// Slots returns the declared slot names in declaration order.
func (d *Document) Slots() []string { return slices.Clone(d.declared) }

// Bind sets the value of a slot, replacing any earlier binding.
// A nil value binds the slot to [Empty].
func (d *Document) Bind(name string, v Value) {
	if v == nil {
		v = Empty
	}
	d.bound[name] = v
}

// Value returns the value bound to name.
func (d *Document) Value(name string) (Value, bool) {
	v, ok := d.bound[name]
	return v, ok
}

// Unbound returns the declared slots that have no value yet.
func (d *Document) Unbound() []string {
	var missing []string
	for _, name := range d.declared {
		if _, ok := d.bound[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Complete reports whether every declared slot is bound.
func (d *Document) Complete() bool {
	return len(d.Unbound()) == 0
}

// Render executes the template with the bound slot values.
// It fails with ErrCodeUnboundSlot if any declared slot is still unbound.
func (d *Document) Render(w io.Writer) error {
	if missing := d.Unbound(); len(missing) > 0 {
		return dgerrors.New(dgerrors.ErrCodeUnboundSlot, "unbound slots: %v", missing)
	}

	tmpl, err := template.New(d.id.String()).Option("missingkey=error").Parse(d.text)
	if err != nil {
		return dgerrors.Wrap(dgerrors.ErrCodeRender, err, "parse document template")
	}

	data := make(map[string]template.HTML, len(d.bound))
	for name, v := range d.bound {
		data[name] = v.HTML()
	}
	if err := tmpl.Execute(w, data); err != nil {
		return dgerrors.Wrap(dgerrors.ErrCodeRender, err, "execute document template")
	}
	return nil
}

// Bytes renders the document into memory.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
