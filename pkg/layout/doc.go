// Package layout assembles charts into one of thirteen fixed dashboard grids.
//
// # Overview
//
// Each [Variant] is a static description of a grid: its template skeleton,
// its slot areas and the pixel size given to the chart placed in each slot.
// All variants share one assembler ([Variant.Generate]) and one placement
// rule ([Variant.Place]); they differ only in their table row.
//
//	v, err := layout.Get(9)
//	doc := v.Generate("Sales", charts, theme.Default())
//	html, err := doc.Bytes()
//
// # Assembly
//
// Generate builds a document from the theme header and the variant skeleton,
// binds the title, applies the theme to every themeable chart, stacks widgets
// into the sidebar (fixed width 280, scaled) and hands the remaining charts
// to Place.
//
// # Placement
//
// Place walks the chart set in insertion order, skipping widgets. The k-th
// plot gets slot chartk and that slot's size, up to the variant's capacity.
// Extra plots are left untouched and unplaced. Slots without a plot are
// bound to [document.Empty] so the skeleton never renders a dangling
// reference.
//
// # Variants
//
//	0   [1]                      1600×900
//	1   [1] / [2]                1600×594, 1600×297
//	2   [1 2]                    900×900 ×2
//	3   [1 2] / [1 3]            900×900, 800×450 ×2
//	4   [1 2 3]                  528×528 ×3
//	5   [1 1] / [2 3]            1600×600, 800×300 ×2
//	6   [1 2] / [3 4]            800×450 ×4
//	7   [1 1 1] / [2 3 4]        1600×600, 533×300 ×3
//	8   [1 1 1 1] / [2 3 4 5]    1600×600, 400×300 ×4
//	9   [1 1 2] / [1 1 3] / [4 5 6]  1200×600, 400×300 ×2, 533×300 ×3
//	10  [1 2 3] / [4 5 6]        533×450 ×6
//	11  [1 1 2 2] / [3 4 5 6]    800×600 ×2, 400×300 ×4
//	12  [1 2 3] / [4 5 6] / [7 8 9]  533×300 ×9
package layout
