// Package config reads dashboard definition files.
//
// A dashboard file names a title, a layout variant, a theme and an ordered
// list of charts. The order of the charts is the order they are placed in
// the grid. Files may be TOML, YAML or JSON, chosen by extension:
//
//	title = "Fleet"
//	layout = 3
//	theme = "dark"
//
//	[[charts]]
//	id = "summary"
//	type = "markdown"
//	content = "# Fleet status"
//
//	[[charts]]
//	id = "region"
//	type = "widget_dropdown"
//	choices = ["north", "south"]
//
// Every chart key besides id and type is passed to the chart as an option
// (see panel.Options).
package config

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/dashgrid/pkg/chart"
	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/panel"
	"github.com/matzehuels/dashgrid/pkg/theme"
)

// Format is a dashboard file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", dgerrors.New(dgerrors.ErrCodeInvalidFormat, "unsupported dashboard file: %s (want .toml, .yaml or .json)", path)
}

// Dashboard is a parsed dashboard definition.
type Dashboard struct {
	Title     string      `json:"title"`
	Layout    int         `json:"layout"`
	Theme     string      `json:"theme,omitempty"`
	ThemeFile string      `json:"theme_file,omitempty"`
	Charts    []ChartSpec `json:"charts"`

	// Dir is the directory relative paths are resolved against.
	Dir string `json:"-"`
}

// ChartSpec is one chart entry of a dashboard file.
type ChartSpec struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Options map[string]any `json:"options,omitempty"`
}

// file is the on-disk shape shared by all formats.
type file struct {
	Title     string           `toml:"title" yaml:"title" json:"title"`
	Layout    int              `toml:"layout" yaml:"layout" json:"layout"`
	Theme     string           `toml:"theme" yaml:"theme" json:"theme"`
	ThemeFile string           `toml:"theme_file" yaml:"theme_file" json:"theme_file"`
	Charts    []map[string]any `toml:"charts" yaml:"charts" json:"charts"`
}

// Load reads and validates a dashboard file.
func Load(path string) (*Dashboard, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, dgerrors.Wrap(dgerrors.ErrCodeFileNotFound, err, "dashboard file %s", path)
	}
	if err != nil {
		return nil, err
	}

	d, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	d.Dir = filepath.Dir(path)
	return d, nil
}

// Parse decodes and validates dashboard data.
func Parse(data []byte, format Format) (*Dashboard, error) {
	var f file
	if err := decode(data, format, &f); err != nil {
		return nil, dgerrors.Wrap(dgerrors.ErrCodeInvalidConfig, err, "decode %s dashboard", format)
	}

	d := &Dashboard{
		Title:     f.Title,
		Layout:    f.Layout,
		Theme:     f.Theme,
		ThemeFile: f.ThemeFile,
		Charts:    make([]ChartSpec, 0, len(f.Charts)),
	}
	for i, raw := range f.Charts {
		spec, err := chartSpec(raw)
		if err != nil {
			return nil, dgerrors.Wrap(dgerrors.ErrCodeInvalidChart, err, "chart %d", i+1)
		}
		d.Charts = append(d.Charts, spec)
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func decode(data []byte, format Format, f *file) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), f)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return dgerrors.New(dgerrors.ErrCodeInvalidConfig, "unknown key: %s", undecoded[0])
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(f)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(f)
	}
	return dgerrors.New(dgerrors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// chartSpec splits id and type from the remaining option keys.
func chartSpec(raw map[string]any) (ChartSpec, error) {
	var spec ChartSpec
	var ok bool
	if spec.ID, ok = raw["id"].(string); !ok {
		return ChartSpec{}, dgerrors.New(dgerrors.ErrCodeInvalidChart, "missing string id")
	}
	if spec.Type, ok = raw["type"].(string); !ok {
		return ChartSpec{}, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: missing string type", spec.ID)
	}
	for k, v := range raw {
		if k == "id" || k == "type" {
			continue
		}
		if spec.Options == nil {
			spec.Options = make(map[string]any, len(raw)-2)
		}
		spec.Options[k] = v
	}
	return spec, nil
}

// Validate checks the dashboard without building its charts.
func (d *Dashboard) Validate() error {
	if err := dgerrors.ValidateTitle(d.Title); err != nil {
		return err
	}
	if err := dgerrors.ValidateLayoutIndex(d.Layout); err != nil {
		return err
	}
	if d.Theme != "" && d.ThemeFile != "" {
		return dgerrors.New(dgerrors.ErrCodeInvalidConfig, "set either theme or theme_file, not both")
	}
	if d.ThemeFile != "" {
		if err := dgerrors.ValidatePath(d.ThemeFile); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(d.Charts))
	for _, c := range d.Charts {
		if err := dgerrors.ValidateChartID(c.ID); err != nil {
			return err
		}
		if seen[c.ID] {
			return dgerrors.New(dgerrors.ErrCodeDuplicateChart, "duplicate chart id: %s", c.ID)
		}
		seen[c.ID] = true

		if err := dgerrors.ValidateChartType(c.Type); err != nil {
			return err
		}
		if !panel.Supported(c.Type) {
			return dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: unknown type %q (supported: %s)",
				c.ID, c.Type, strings.Join(panel.Types(), ", "))
		}
		for k, v := range c.Options {
			if err := checkFinite(v); err != nil {
				return dgerrors.Wrap(dgerrors.ErrCodeInvalidChart, err, "chart %s: option %s", c.ID, k)
			}
		}
	}
	return nil
}

// checkFinite rejects NaN and infinities anywhere in an option value.
// TOML and YAML both accept them, but they have no JSON encoding.
func checkFinite(v any) error {
	switch v := v.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return dgerrors.New(dgerrors.ErrCodeInvalidChart, "non-finite number %v", v)
		}
	case float32:
		return checkFinite(float64(v))
	case []any:
		for _, e := range v {
			if err := checkFinite(e); err != nil {
				return err
			}
		}
	case map[string]any:
		for _, e := range v {
			if err := checkFinite(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildCharts builds a fresh chart set in file order. Each call returns new
// charts, so sets can be assembled independently.
func (d *Dashboard) BuildCharts(ctx context.Context) (*chart.Set, error) {
	set := chart.NewSet()
	for _, spec := range d.Charts {
		opts, err := panel.Decode(spec.Options)
		if err != nil {
			return nil, dgerrors.Wrap(dgerrors.ErrCodeInvalidChart, err, "chart %s", spec.ID)
		}
		c, err := panel.New(ctx, spec.ID, spec.Type, opts)
		if err != nil {
			return nil, err
		}
		set.Put(spec.ID, c)
	}
	return set, nil
}

// ResolveTheme returns the dashboard's theme: the theme file if set,
// otherwise the named built-in (default when empty).
func (d *Dashboard) ResolveTheme() (theme.Theme, error) {
	if d.ThemeFile != "" {
		return theme.LoadFile(filepath.Join(d.Dir, d.ThemeFile))
	}
	return theme.Lookup(d.Theme)
}

// Canonical returns a stable encoding of the dashboard, used for cache keys.
// Dashboards that cannot be encoded have no canonical form and must not be
// cached.
func (d *Dashboard) Canonical() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, dgerrors.Wrap(dgerrors.ErrCodeInvalidConfig, err, "encode dashboard")
	}
	return data, nil
}
