package panel

import (
	"context"
	"math"
	"slices"
	"strconv"

	"github.com/matzehuels/dashgrid/pkg/chart"
	"github.com/matzehuels/dashgrid/pkg/document"
	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
)

type choice struct {
	Value    string
	Selected bool
}

type selectData struct {
	Name    string
	Choices []choice
}

// Select is a dropdown or multi-select filter widget.
type Select struct {
	themed
	multiple bool
	choices  []string
	selected []string
}

func newDropdown(_ context.Context, id string, opts Options) (chart.Chart, error) {
	if len(opts.Selected) > 1 {
		return nil, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: dropdown allows one selection", id)
	}
	return newSelect(id, TypeDropdown, false, opts)
}

func newMultiSelect(_ context.Context, id string, opts Options) (chart.Chart, error) {
	return newSelect(id, TypeMultiSelect, true, opts)
}

func newSelect(id, typ string, multiple bool, opts Options) (chart.Chart, error) {
	if len(opts.Choices) == 0 {
		return nil, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: %s needs choices", id, typ)
	}
	for _, s := range opts.Selected {
		if !slices.Contains(opts.Choices, s) {
			return nil, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: selected value %q is not a choice", id, s)
		}
	}
	return &Select{
		themed:   newThemed(id, typ, opts.Title),
		multiple: multiple,
		choices:  slices.Clone(opts.Choices),
		selected: slices.Clone(opts.Selected),
	}, nil
}

// Multiple reports whether more than one choice can be selected.
func (s *Select) Multiple() bool { return s.multiple }

// View implements chart.Chart.
func (s *Select) View() document.Fragment {
	data := selectData{Name: s.id}
	for _, c := range s.choices {
		data.Choices = append(data.Choices, choice{Value: c, Selected: slices.Contains(s.selected, c)})
	}
	name := "dropdown"
	if s.multiple {
		name = "multi_select"
	}
	return s.render(execute(name, data).HTML())
}

// RangeSlider is a numeric range filter widget.
type RangeSlider struct {
	themed
	min, max, step, value float64
}

func newRangeSlider(_ context.Context, id string, opts Options) (chart.Chart, error) {
	bounds := []float64{opts.Min, opts.Max, opts.Step}
	if opts.Value != nil {
		bounds = append(bounds, *opts.Value)
	}
	for _, f := range bounds {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: min, max, step and value must be finite", id)
		}
	}
	if opts.Max <= opts.Min {
		return nil, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: max must be greater than min", id)
	}
	step := opts.Step
	if step == 0 {
		step = 1
	}
	if step < 0 {
		return nil, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: step must be positive", id)
	}
	value := opts.Min
	if opts.Value != nil {
		value = *opts.Value
	}
	if value < opts.Min || value > opts.Max {
		return nil, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: value %g outside [%g, %g]", id, value, opts.Min, opts.Max)
	}
	return &RangeSlider{
		themed: newThemed(id, TypeRangeSlider, opts.Title),
		min:    opts.Min,
		max:    opts.Max,
		step:   step,
		value:  value,
	}, nil
}

// View implements chart.Chart.
func (r *RangeSlider) View() document.Fragment {
	return r.render(execute("range_slider", struct {
		Name                 string
		Min, Max, Step, Value string
	}{r.id, num(r.min), num(r.max), num(r.step), num(r.value)}).HTML())
}

func num(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// DatasizeIndicator shows how many rows the dashboard's data holds.
type DatasizeIndicator struct {
	themed
	rows int64
}

func newDatasize(_ context.Context, id string, opts Options) (chart.Chart, error) {
	if opts.Rows < 0 {
		return nil, dgerrors.New(dgerrors.ErrCodeInvalidChart, "chart %s: rows cannot be negative", id)
	}
	title := opts.Title
	if title == "" {
		title = "Data points"
	}
	return &DatasizeIndicator{themed: newThemed(id, TypeDatasize, title), rows: opts.Rows}, nil
}

// SetRows updates the displayed row count.
func (d *DatasizeIndicator) SetRows(n int64) { d.rows = n }

// View implements chart.Chart.
func (d *DatasizeIndicator) View() document.Fragment {
	return d.render(execute("datasize", struct{ Rows string }{groupDigits(d.rows)}).HTML())
}

// groupDigits formats n with comma thousands separators.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}
	var out []byte
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
