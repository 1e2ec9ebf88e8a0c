package panel

import (
	"bytes"
	"context"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/matzehuels/dashgrid/pkg/chart"
	"github.com/matzehuels/dashgrid/pkg/document"
	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
)

// HTML is a panel showing trusted markup.
type HTML struct {
	themed
	body template.HTML
}

func newHTML(_ context.Context, id string, opts Options) (chart.Chart, error) {
	return &HTML{themed: newThemed(id, TypeHTML, opts.Title), body: template.HTML(opts.Content)}, nil
}

// View implements chart.Chart.
func (h *HTML) View() document.Fragment { return h.render(h.body) }

// Markdown is a panel showing Markdown converted to HTML.
type Markdown struct {
	themed
	body template.HTML
}

var markdown = goldmark.New()

func newMarkdown(_ context.Context, id string, opts Options) (chart.Chart, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(opts.Content), &buf); err != nil {
		return nil, dgerrors.Wrap(dgerrors.ErrCodeInvalidChart, err, "chart %s: convert markdown", id)
	}
	return &Markdown{themed: newThemed(id, TypeMarkdown, opts.Title), body: template.HTML(buf.String())}, nil
}

// View implements chart.Chart.
func (m *Markdown) View() document.Fragment { return m.render(m.body) }

// Image is a panel showing a single image. It does not take theme styling.
type Image struct {
	frame
	src string
	alt string
}

func newImage(_ context.Context, id string, opts Options) (chart.Chart, error) {
	if err := validateSource(opts.Src); err != nil {
		return nil, dgerrors.Wrap(dgerrors.ErrCodeInvalidChart, err, "chart %s: bad image source", id)
	}
	alt := opts.Alt
	if alt == "" {
		alt = opts.Title
	}
	return &Image{frame: newFrame(id, TypeImage, opts.Title), src: opts.Src, alt: alt}, nil
}

func validateSource(src string) error {
	if strings.Contains(src, "://") {
		return dgerrors.ValidateURL(src)
	}
	return dgerrors.ValidatePath(src)
}

// View implements chart.Chart.
func (i *Image) View() document.Fragment {
	body := execute("image", struct{ Src, Alt string }{i.src, i.alt})
	return i.frame.render(body.HTML(), nil)
}
