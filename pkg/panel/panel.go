// Package panel provides the concrete chart kinds a dashboard file can name.
//
// Every panel implements chart.Chart. All kinds except image also implement
// chart.Themeable and style themselves from the theme properties they are
// given.
//
// # Kinds
//
//   - html: trusted markup, inserted as-is
//   - markdown: Markdown converted with goldmark (raw HTML is dropped)
//   - image: an http(s) or relative image source; not themeable
//   - graph: a Graphviz DOT graph rendered to inline SVG
//   - widget_dropdown, widget_multi_select, widget_range_slider: sidebar
//     filter controls
//   - datasize_indicator: a row count shown in the sidebar
//
// Panels are built from free-form options decoded with [Decode]:
//
//	opts, err := panel.Decode(map[string]any{"content": "# Sales"})
//	c, err := panel.New(ctx, "intro", panel.TypeMarkdown, opts)
package panel

import (
	"context"
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"

	"github.com/matzehuels/dashgrid/pkg/chart"
	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
)

// Chart type tags.
const (
	TypeHTML        = "html"
	TypeMarkdown    = "markdown"
	TypeImage       = "image"
	TypeGraph       = "graph"
	TypeDropdown    = "widget_dropdown"
	TypeMultiSelect = "widget_multi_select"
	TypeRangeSlider = "widget_range_slider"
	TypeDatasize    = chart.DatasizeIndicator
)

// Options are the per-chart settings of a dashboard file. Each kind reads
// the fields it needs and ignores the rest.
type Options struct {
	Title    string   `mapstructure:"title"`
	Content  string   `mapstructure:"content"`
	Src      string   `mapstructure:"src"`
	Alt      string   `mapstructure:"alt"`
	Choices  []string `mapstructure:"choices"`
	Selected []string `mapstructure:"selected"`
	Min      float64  `mapstructure:"min"`
	Max      float64  `mapstructure:"max"`
	Step     float64  `mapstructure:"step"`
	Value    *float64 `mapstructure:"value"`
	Rows     int64    `mapstructure:"rows"`
}

// Decode converts free-form options into Options. Unknown keys are rejected.
func Decode(raw map[string]any) (Options, error) {
	var opts Options
	if len(raw) == 0 {
		return opts, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Options{}, dgerrors.Wrap(dgerrors.ErrCodeInternal, err, "create options decoder")
	}
	if err := dec.Decode(raw); err != nil {
		return Options{}, dgerrors.Wrap(dgerrors.ErrCodeInvalidChart, err, "decode chart options")
	}
	return opts, nil
}

// Constructor builds one kind of panel.
type Constructor func(ctx context.Context, id string, opts Options) (chart.Chart, error)

var constructors = map[string]Constructor{
	TypeHTML:        newHTML,
	TypeMarkdown:    newMarkdown,
	TypeImage:       newImage,
	TypeGraph:       newGraph,
	TypeDropdown:    newDropdown,
	TypeMultiSelect: newMultiSelect,
	TypeRangeSlider: newRangeSlider,
	TypeDatasize:    newDatasize,
}

// New builds the panel of the given type.
func New(ctx context.Context, id, chartType string, opts Options) (chart.Chart, error) {
	if err := dgerrors.ValidateChartID(id); err != nil {
		return nil, err
	}
	build, ok := constructors[chartType]
	if !ok {
		return nil, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: unknown type %q", id, chartType)
	}
	return build(ctx, id, opts)
}

// Types returns the supported type tags in sorted order.
func Types() []string {
	return slices.Sorted(maps.Keys(constructors))
}

// Supported reports whether chartType names a panel kind.
func Supported(chartType string) bool {
	_, ok := constructors[chartType]
	return ok
}
