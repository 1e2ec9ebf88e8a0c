// Package pipeline runs a dashboard definition through to rendered HTML.
//
// The CLI and the preview server share this logic so both resolve layouts
// and themes the same way and share the same cache.
//
// # Stages
//
//  1. Build: construct a fresh chart set from the dashboard definition
//  2. Assemble: place the charts into the chosen layout variant
//  3. Render: execute the populated template into HTML
//
// The whole result is cached by the canonical dashboard definition plus the
// resolved layout, theme and title, so unchanged dashboards skip all three
// stages.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	d, err := config.Load("fleet.toml")
//	result, err := runner.Execute(ctx, d, pipeline.Options{Theme: "dark"})
//	os.WriteFile("fleet.html", result.HTML, 0o644)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dashgrid/pkg/document"
	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/layout"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options override what the dashboard definition says. Zero values keep the
// definition's choice.
type Options struct {
	// Layout overrides the layout variant when non-nil.
	Layout *int `json:"layout,omitempty"`
	// Theme overrides the built-in theme name.
	Theme string `json:"theme,omitempty"`
	// ThemeFile loads the theme from a TOML file instead; it wins over Theme.
	ThemeFile string `json:"theme_file,omitempty"`
	// Title overrides the dashboard title.
	Title string `json:"title,omitempty"`
	// Refresh skips the cache lookup but still stores the result.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// WithLayout returns a copy of o that forces layout n.
func (o Options) WithLayout(n int) Options {
	o.Layout = &n
	return o
}

// ValidateAndSetDefaults checks overrides and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Layout != nil {
		if err := dgerrors.ValidateLayoutIndex(*o.Layout); err != nil {
			return err
		}
	}
	if o.Title != "" {
		if err := dgerrors.ValidateTitle(o.Title); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the assembled template. It is nil when HTML came from cache.
	Document *document.Document

	// HTML is the rendered dashboard.
	HTML []byte

	// Key is the cache key the dashboard is stored under.
	Key string

	// Variant is the layout the charts were placed in.
	Variant *layout.Variant

	// Theme is the name of the applied theme.
	Theme string

	// Stats contains counts and timings.
	Stats Stats

	// CacheInfo tracks whether the result came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Charts       int
	Widgets      int
	Plots        int
	Placed       int
	Dropped      int
	BuildTime    time.Duration
	AssembleTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache use for a run.
type CacheInfo struct {
	Hit bool // whether HTML came from cache
}
