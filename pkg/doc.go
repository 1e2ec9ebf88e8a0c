// Package pkg provides the core libraries for dashgrid dashboard assembly.
//
// # Overview
//
// Dashgrid places charts and widgets into one of thirteen fixed grid layouts.
// Widgets are stacked in a fixed-width sidebar; plots fill the numbered slots
// of the chosen layout in definition order and receive the slot's pixel size.
// A theme supplies the page header and the styling handed to each chart.
//
// # Architecture
//
// The typical data flow:
//
//	dashboard file (TOML / YAML / JSON)
//	         ↓
//	    [config] package (parse + validate, build a chart.Set)
//	         ↓
//	    [layout] package (size, place and bind charts into a document)
//	         ↓
//	    [document] package (render the populated template)
//	         ↓
//	    standalone HTML
//
// [pipeline] runs these stages with caching and hooks; the CLI and the
// preview server both go through it.
//
// # Quick Start
//
//	charts := chart.NewSet()
//	charts.Put("revenue", revenuePanel)
//	charts.Put("region", regionDropdown)
//
//	v, _ := layout.Get(3)
//	th, _ := theme.Lookup("dark")
//	doc := v.Generate("Sales", charts, th)
//	html, err := doc.Bytes()
//
// # Main Packages
//
// [chart] - The chart entry contract, widget/plot classification and the
// insertion-ordered chart set. Any type with Type, Frame and View methods
// can be placed.
//
// [layout] - The thirteen layout variants and the dashboard assembler. One
// placement rule driven by a static table of grid areas and slot sizes.
//
// [document] - Template documents with declared slots. Rendering fails while
// any slot is unbound.
//
// [theme] - Built-in themes and TOML theme files.
//
// [panel] - Concrete chart kinds: HTML, Markdown, images, Graphviz graphs,
// dropdowns, multi-selects, range sliders and the data size indicator.
//
// [config] - Dashboard definition files.
//
// [pipeline] - Build, assemble and render with caching.
//
// [cache] - File, Redis and null artifact caches.
//
// ## Supporting Packages
//
// [errors] - Code-typed errors and input validation.
//
// [observability] - Pipeline, cache and server hooks with a Prometheus
// implementation.
//
// [buildinfo] - Version information set at build time.
package pkg
