package panel

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/matzehuels/dashgrid/pkg/chart"
	"github.com/matzehuels/dashgrid/pkg/document"
	"github.com/matzehuels/dashgrid/pkg/theme"
)

// frame is the part every panel shares: identity, title and geometry.
type frame struct {
	id    string
	typ   string
	title string
	frame chart.Frame
}

func newFrame(id, typ, title string) frame {
	return frame{id: id, typ: typ, title: title, frame: chart.Frame{SizingMode: chart.Fixed}}
}

func (f *frame) Type() string        { return f.typ }
func (f *frame) Frame() *chart.Frame { return &f.frame }

// ID returns the chart id the panel was built with.
func (f *frame) ID() string { return f.id }

// Title returns the panel title, possibly empty.
func (f *frame) Title() string { return f.title }

// render wraps body in the panel container.
func (f *frame) render(body template.HTML, props theme.Properties) document.Fragment {
	return execute("panel", panelData{
		ID:     f.id,
		Kind:   kindClass(f.typ),
		Sizing: string(f.frame.SizingMode),
		Style:  style(f.frame, props),
		Title:  f.title,
		Body:   body,
	})
}

// themed is a frame that keeps the theme properties it was given.
type themed struct {
	frame
	props theme.Properties
}

func newThemed(id, typ, title string) themed {
	return themed{frame: newFrame(id, typ, title)}
}

// ApplyTheme stores props for later rendering.
func (t *themed) ApplyTheme(props theme.Properties) { t.props = props }

// Properties returns the theme properties last applied.
func (t *themed) Properties() theme.Properties { return t.props }

func (t *themed) render(body template.HTML) document.Fragment {
	return t.frame.render(body, t.props)
}

var cssProps = []struct{ key, css string }{
	{theme.PropBackground, "background"},
	{theme.PropColor, "color"},
	{theme.PropBorderColor, "border-color"},
	{theme.PropFontFamily, "font-family"},
}

// style builds the inline style for a panel. Zero dimensions are left to the
// grid cell.
func style(f chart.Frame, props theme.Properties) template.CSS {
	var b strings.Builder
	if f.Width > 0 {
		b.WriteString("width:" + strconv.Itoa(f.Width) + "px;")
	}
	if f.Height > 0 {
		b.WriteString("height:" + strconv.Itoa(f.Height) + "px;")
	}
	for _, p := range cssProps {
		if v := cssValue(props.String(p.key)); v != "" {
			b.WriteString(p.css + ":" + v + ";")
		}
	}
	return template.CSS(b.String())
}

// cssValue drops values that could escape a declaration.
func cssValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.ContainsAny(v, ";{}<>\"\\") {
		return ""
	}
	return v
}

func kindClass(typ string) string {
	return strings.TrimPrefix(typ, "widget_")
}
