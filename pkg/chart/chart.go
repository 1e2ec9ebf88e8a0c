// Package chart defines the chart entries a dashboard is assembled from.
//
// A [Chart] is owned by the caller. Layout assembly only writes its
// presentation fields (the [Frame]) and asks it for a view; it never creates
// or destroys charts. Because the Frame is mutated in place, a chart must
// not be shared between dashboards assembled concurrently.
//
// Charts are classified once into a [Kind]: widgets (filter controls and
// indicators) go to the sidebar, everything else is a plot placed in the
// numbered grid slots.
package chart

import (
	"strings"

	"github.com/matzehuels/dashgrid/pkg/document"
	"github.com/matzehuels/dashgrid/pkg/theme"
)

// SizingMode tells the renderer how a chart fills the space it is given.
type SizingMode string

const (
	// Fixed keeps the chart at exactly Width×Height.
	Fixed SizingMode = "fixed"
	// ScaleBoth scales the chart to fill the available space on both axes.
	ScaleBoth SizingMode = "scale_both"
)

// Frame is the renderable part of a chart entry whose geometry the layout
// controls.
type Frame struct {
	SizingMode SizingMode
	Width      int
	Height     int
}

// Chart is a visual element that can be placed on a dashboard.
type Chart interface {
	// Type returns the chart type tag used for classification.
	Type() string
	// Frame returns the mutable presentation frame.
	Frame() *Frame
	// View renders the chart at its current frame geometry.
	View() document.Fragment
}

// Themeable is implemented by charts that accept theme styling.
type Themeable interface {
	ApplyTheme(props theme.Properties)
}

// Kind classifies a chart as widget or plot.
type Kind int

const (
	Plot Kind = iota
	Widget
)

func (k Kind) String() string {
	if k == Widget {
		return "widget"
	}
	return "plot"
}

// DatasizeIndicator is the one widget type whose tag lacks "widget".
const DatasizeIndicator = "datasize_indicator"

// ClassifyType returns the kind for a chart type tag.
func ClassifyType(chartType string) Kind {
	if strings.Contains(chartType, "widget") || chartType == DatasizeIndicator {
		return Widget
	}
	return Plot
}

// Classify returns the kind of c.
func Classify(c Chart) Kind {
	return ClassifyType(c.Type())
}

// IsWidget reports whether c belongs in the widget sidebar.
func IsWidget(c Chart) bool {
	return Classify(c) == Widget
}
