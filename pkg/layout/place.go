package layout

import (
	"github.com/matzehuels/dashgrid/pkg/chart"
	"github.com/matzehuels/dashgrid/pkg/document"
)

// Place binds plots to the numbered slots of doc and returns how many were
// placed.
//
// Plots are taken in set order, widgets skipped. The k-th plot is scaled to
// slot k's size and its view bound to chartk. Iteration stops once every
// slot is filled; remaining plots are not touched. Slots left over are bound
// to document.Empty, highest index first.
func (v *Variant) Place(charts *chart.Set, doc *document.Document) int {
	placed := 0
	for e := range charts.Of(chart.Plot) {
		if placed == v.Capacity() {
			break
		}
		placed++

		size := v.slots[placed-1]
		f := e.Chart.Frame()
		f.SizingMode = chart.ScaleBoth
		f.Width = size.Width
		f.Height = size.Height
		doc.Bind(SlotName(placed), e.Chart.View())
	}

	for k := v.Capacity(); k > placed; k-- {
		doc.Bind(SlotName(k), document.Empty)
	}
	return placed
}

// Fit reports how many plots in charts this variant would place and how many
// it would leave out, without touching the charts.
func (v *Variant) Fit(charts *chart.Set) (placed, dropped int) {
	plots := charts.Count(chart.Plot)
	placed = min(plots, v.Capacity())
	return placed, plots - placed
}
