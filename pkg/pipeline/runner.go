package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dashgrid/pkg/cache"
	"github.com/matzehuels/dashgrid/pkg/chart"
	"github.com/matzehuels/dashgrid/pkg/config"
	"github.com/matzehuels/dashgrid/pkg/document"
	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/layout"
	"github.com/matzehuels/dashgrid/pkg/observability"
	"github.com/matzehuels/dashgrid/pkg/theme"
)

const keyTypeDashboard = "dashboard"

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state, so the preview server shares one
// across requests. Every run builds its own charts.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// plan is a dashboard with every override resolved.
type plan struct {
	dashboard *config.Dashboard
	variant   *layout.Variant
	theme     theme.Theme
	title     string
}

// Resolve applies opts to d and looks up the layout and theme.
func Resolve(d *config.Dashboard, opts Options) (*layout.Variant, theme.Theme, string, error) {
	p, err := resolve(d, opts)
	if err != nil {
		return nil, theme.Theme{}, "", err
	}
	return p.variant, p.theme, p.title, nil
}

func resolve(d *config.Dashboard, opts Options) (plan, error) {
	index := d.Layout
	if opts.Layout != nil {
		index = *opts.Layout
	}
	v, err := layout.Get(index)
	if err != nil {
		return plan{}, err
	}

	var th theme.Theme
	switch {
	case opts.ThemeFile != "":
		th, err = theme.LoadFile(opts.ThemeFile)
	case opts.Theme != "":
		th, err = theme.Lookup(opts.Theme)
	default:
		th, err = d.ResolveTheme()
	}
	if err != nil {
		return plan{}, err
	}

	title := d.Title
	if opts.Title != "" {
		title = opts.Title
	}
	return plan{dashboard: d, variant: v, theme: th, title: title}, nil
}

// key returns the cache key for a resolved plan. Both the dashboard and the
// theme must encode; otherwise distinct plans could collide on one key.
func (r *Runner) key(p plan) (string, error) {
	canonical, err := p.dashboard.Canonical()
	if err != nil {
		return "", err
	}
	themeData, err := json.Marshal(p.theme)
	if err != nil {
		return "", dgerrors.Wrap(dgerrors.ErrCodeInvalidTheme, err, "encode theme %s", p.theme.Name)
	}
	return r.Keyer.DashboardKey(cache.Hash(canonical), cache.DashboardKeyOpts{
		Layout: p.variant.Index(),
		Theme:  cache.Hash(themeData),
		Title:  p.title,
	}), nil
}

// Execute runs the build → assemble → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, d *config.Dashboard, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	p, err := resolve(d, opts)
	if err != nil {
		return nil, err
	}

	key, err := r.key(p)
	if err != nil {
		return nil, fmt.Errorf("cache key: %w", err)
	}
	result := &Result{
		Key:     key,
		Variant: p.variant,
		Theme:   p.theme.Name,
	}
	result.Stats.Charts = len(d.Charts)

	if !opts.Refresh {
		if r.lookup(ctx, logger, result) {
			observability.Cache().OnCacheHit(ctx, keyTypeDashboard)
			logger.Debug("dashboard from cache", "layout", p.variant.Name(), "key", result.Key)
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeDashboard)
	}

	// Stage 1: Build
	buildStart := time.Now()
	charts, err := r.build(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("build charts: %w", err)
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Widgets = charts.Count(chart.Widget)
	result.Stats.Plots = charts.Count(chart.Plot)

	// Stage 2: Assemble
	assembleStart := time.Now()
	result.Document = r.assemble(ctx, logger, p, charts, &result.Stats)
	result.Stats.AssembleTime = time.Since(assembleStart)

	// Stage 3: Render
	renderStart := time.Now()
	html, err := result.Document.Bytes()
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, p.variant.Name(), len(html), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.HTML = html

	r.store(ctx, logger, result)

	logger.Info("rendered dashboard",
		"layout", p.variant.Name(),
		"theme", p.theme.Name,
		"charts", result.Stats.Charts,
		"placed", result.Stats.Placed,
		"dropped", result.Stats.Dropped,
		"bytes", len(html),
		"duration", result.Stats.BuildTime+result.Stats.AssembleTime+result.Stats.RenderTime)

	return result, nil
}

// artifact is a cached dashboard: the HTML plus the counts of the run that
// rendered it, so cache hits report the same placement as fresh runs.
type artifact struct {
	HTML    []byte `json:"html"`
	Widgets int    `json:"widgets"`
	Plots   int    `json:"plots"`
	Placed  int    `json:"placed"`
	Dropped int    `json:"dropped"`
}

// lookup fills result from the cache and reports whether it hit. Entries
// that fail to decode count as misses.
func (r *Runner) lookup(ctx context.Context, logger *log.Logger, result *Result) bool {
	data, hit, err := r.Cache.Get(ctx, result.Key)
	if err != nil {
		logger.Warn("cache lookup failed", "err", err)
		return false
	}
	if !hit {
		return false
	}
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil || a.HTML == nil {
		logger.Warn("ignoring unreadable cache entry", "key", result.Key, "err", err)
		return false
	}
	result.HTML = a.HTML
	result.Stats.Widgets, result.Stats.Plots = a.Widgets, a.Plots
	result.Stats.Placed, result.Stats.Dropped = a.Placed, a.Dropped
	result.CacheInfo.Hit = true
	return true
}

// store writes result to the cache. Failures are logged, not returned.
func (r *Runner) store(ctx context.Context, logger *log.Logger, result *Result) {
	data, err := json.Marshal(artifact{
		HTML:    result.HTML,
		Widgets: result.Stats.Widgets,
		Plots:   result.Stats.Plots,
		Placed:  result.Stats.Placed,
		Dropped: result.Stats.Dropped,
	})
	if err == nil {
		err = r.Cache.Set(ctx, result.Key, data, cache.TTLDashboard)
	}
	if err != nil {
		logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeDashboard, len(data))
}

func (r *Runner) build(ctx context.Context, d *config.Dashboard) (*chart.Set, error) {
	start := time.Now()
	observability.Pipeline().OnBuildStart(ctx, len(d.Charts))
	charts, err := d.BuildCharts(ctx)
	observability.Pipeline().OnBuildComplete(ctx, len(d.Charts), time.Since(start), err)
	return charts, err
}

func (r *Runner) assemble(ctx context.Context, logger *log.Logger, p plan, charts *chart.Set, stats *Stats) *document.Document {
	start := time.Now()
	observability.Pipeline().OnAssembleStart(ctx, p.variant.Name(), charts.Len())

	placed, dropped := p.variant.Fit(charts)
	if dropped > 0 {
		logger.Warn("layout has fewer slots than plots; extra plots left out",
			"layout", p.variant.Name(),
			"capacity", p.variant.Capacity(),
			"plots", placed+dropped,
			"dropped", dropped)
	}
	doc := p.variant.Generate(p.title, charts, p.theme)
	stats.Placed, stats.Dropped = placed, dropped

	observability.Pipeline().OnAssembleComplete(ctx, p.variant.Name(), placed, dropped, time.Since(start))
	return doc
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
