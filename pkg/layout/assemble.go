package layout

import (
	"html"

	"github.com/matzehuels/dashgrid/pkg/chart"
	"github.com/matzehuels/dashgrid/pkg/document"
	"github.com/matzehuels/dashgrid/pkg/theme"
)

// Generate assembles charts into a new document using this variant's grid.
//
// Side effects on the caller's charts: themeable charts receive the theme's
// chart properties, widgets are resized to the sidebar width and placed plots
// to their slot size. Generate never fails; see [Variant.Place] for how
// missing and excess plots are handled.
func (v *Variant) Generate(title string, charts *chart.Set, th theme.Theme) *document.Document {
	doc := document.New(th.LayoutHead+v.skeleton, v.SlotNames())
	doc.Bind(SlotTitle, titleFragment(title))

	applyTheme(charts, th)
	doc.Bind(SlotWidgets, stackWidgets(charts))
	v.Place(charts, doc)

	return doc
}

func titleFragment(title string) document.Fragment {
	return document.Fragment(`<div class="nav-title"> ` + html.EscapeString(title) + `</div>`)
}

// applyTheme gives every themeable chart, widget or plot, its own copy of the
// theme's chart properties. Other charts are skipped.
func applyTheme(charts *chart.Set, th theme.Theme) {
	for _, c := range charts.All() {
		if t, ok := c.(chart.Themeable); ok {
			t.ApplyTheme(th.ChartProperties.Clone())
		}
	}
}

// stackWidgets sizes every widget for the sidebar and stacks their views in
// set order.
func stackWidgets(charts *chart.Set) *document.Column {
	col := document.NewColumn()
	for e := range charts.Of(chart.Widget) {
		f := e.Chart.Frame()
		f.SizingMode = chart.ScaleBoth
		f.Width = widgetWidth
		col.Append(e.Chart.View())
	}
	return col
}
