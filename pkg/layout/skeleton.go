package layout

import (
	"fmt"
	"strings"
)

// buildSkeleton renders the page body for v: nav bar with the title, widget
// sidebar, and a CSS grid whose named areas follow v.areas. Each plot slot is
// one grid cell referencing {{.chartK}}.
func buildSkeleton(v *Variant) string {
	var b strings.Builder

	b.WriteString("<body>\n")
	fmt.Fprintf(&b, "<nav class=\"nav\">{{.%s}}</nav>\n", SlotTitle)
	b.WriteString("<div class=\"dash\">\n")
	fmt.Fprintf(&b, "<aside class=\"widgets\">{{.%s}}</aside>\n", SlotWidgets)

	cols := 0
	for _, row := range v.areas {
		cols = max(cols, len(row))
	}
	rows := make([]string, len(v.areas))
	for i, row := range v.areas {
		cells := make([]string, len(row))
		for j, n := range row {
			cells[j] = fmt.Sprintf("c%d", n)
		}
		rows[i] = "'" + strings.Join(cells, " ") + "'"
	}
	fmt.Fprintf(&b, "<main class=\"grid %s\" style=\"grid-template-columns:repeat(%d,1fr);grid-template-areas:%s\">\n",
		v.Name(), cols, strings.Join(rows, " "))

	for k := 1; k <= v.Capacity(); k++ {
		fmt.Fprintf(&b, "<div class=\"cell\" id=\"%s\" style=\"grid-area:c%d\">{{.%s}}</div>\n",
			SlotName(k), k, SlotName(k))
	}

	b.WriteString("</main>\n</div>\n</body>\n</html>\n")
	return b.String()
}
