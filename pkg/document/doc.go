// Package document holds the template documents produced by layout assembly.
//
// A [Document] is template text (a theme header followed by a layout
// skeleton) plus a set of named slots. Every slot the skeleton declares must
// be bound to a [Value] before the document renders:
//
//	doc := document.New(head+skeleton, []string{"title", "widgets", "chart1"})
//	doc.Bind("title", document.Fragment("<div>Sales</div>"))
//	doc.Bind("widgets", column)
//	doc.Bind("chart1", document.Empty)
//	err := doc.Render(w)
//
// Slot references in template text use the field syntax `{{.chart1}}`.
// Values are trusted HTML: they are produced by chart views, which escape
// their own user-supplied text.
package document
