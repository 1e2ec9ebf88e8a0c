package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/layout"
)

// layoutsCommand creates the layouts command.
func (c *CLI) layoutsCommand() *cobra.Command {
	var showPreview bool

	cmd := &cobra.Command{
		Use:   "layouts [index]",
		Short: "List the layout variants and their slot sizes",
		Example: `  dashgrid layouts
  dashgrid layouts --preview
  dashgrid layouts 9`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid layout index %q", args[0])
				}
				v, err := layout.Get(n)
				if err != nil {
					return err
				}
				printLayout(v)
				return nil
			}
			printLine(layoutTable(layout.All(), showPreview))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showPreview, "preview", "p", false, "draw each grid")

	return cmd
}

// printLayout prints one variant with its grid drawing.
func printLayout(v *layout.Variant) {
	printLine(StyleTitle.Render(v.Name()))
	printKeyValue("Slots", strconv.Itoa(v.Capacity()))
	printKeyValue("Sizes", sizeSummary(v.Sizes()))
	printNewline()
	printLine(preview(v, 8, 2))
	printNewline()
	for k, s := range v.Sizes() {
		printDetail("%s  %s", layout.SlotName(k+1), s)
	}
}

// layoutTable renders every variant as a table row.
func layoutTable(variants []*layout.Variant, withPreview bool) string {
	headers := []string{"Layout", "Slots", "Sizes"}
	if withPreview {
		headers = append(headers, "Grid")
	}

	rows := make([][]string, 0, len(variants))
	for _, v := range variants {
		row := []string{v.Name(), strconv.Itoa(v.Capacity()), sizeSummary(v.Sizes())}
		if withPreview {
			row = append(row, preview(v, 4, 2))
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		Render()
}

// sizeSummary groups runs of equal sizes, e.g. "1600×600, 800×300 ×2".
func sizeSummary(sizes []layout.Size) string {
	var parts []string
	for i := 0; i < len(sizes); {
		j := i
		for j < len(sizes) && sizes[j] == sizes[i] {
			j++
		}
		part := sizes[i].String()
		if n := j - i; n > 1 {
			part += " ×" + strconv.Itoa(n)
		}
		parts = append(parts, part)
		i = j
	}
	return strings.Join(parts, ", ")
}

// junctions maps (up, down, left, right) to a box-drawing rune.
var junctions = map[[4]bool]rune{
	{true, true, false, false}:  '│',
	{false, false, true, true}:  '─',
	{false, true, false, true}:  '┌',
	{false, true, true, false}:  '┐',
	{true, false, false, true}:  '└',
	{true, false, true, false}:  '┘',
	{true, true, false, true}:   '├',
	{true, true, true, false}:   '┤',
	{false, true, true, true}:   '┬',
	{true, false, true, true}:   '┴',
	{true, true, true, true}:    '┼',
	{true, false, false, false}: '│',
	{false, true, false, false}: '│',
	{false, false, true, false}: '─',
	{false, false, false, true}: '─',
}

// preview draws the variant's grid with box characters, each grid cell
// cellW columns wide and cellH lines tall, and each slot labelled with its
// number.
func preview(v *layout.Variant, cellW, cellH int) string {
	areas := v.Areas()
	rows, cols := len(areas), len(areas[0])

	// vertical boundary left of column c in grid row r
	vseg := func(r, c int) bool {
		if r < 0 || r >= rows {
			return false
		}
		return c == 0 || c == cols || areas[r][c-1] != areas[r][c]
	}
	// horizontal boundary above grid row r in column c
	hseg := func(r, c int) bool {
		if c < 0 || c >= cols {
			return false
		}
		return r == 0 || r == rows || areas[r-1][c] != areas[r][c]
	}

	width, height := cols*cellW+1, rows*cellH+1
	canvas := make([][]rune, height)
	for y := range canvas {
		canvas[y] = []rune(strings.Repeat(" ", width))
	}

	for y := range height {
		for x := range width {
			r, c := y/cellH, x/cellW
			onRow, onCol := y%cellH == 0, x%cellW == 0
			switch {
			case onRow && onCol:
				key := [4]bool{vseg(r-1, c), vseg(r, c), hseg(r, c-1), hseg(r, c)}
				if ch, ok := junctions[key]; ok {
					canvas[y][x] = ch
				}
			case onCol:
				if vseg(r, c) {
					canvas[y][x] = '│'
				}
			case onRow:
				if hseg(r, c) {
					canvas[y][x] = '─'
				}
			}
		}
	}

	for k := 1; k <= v.Capacity(); k++ {
		minR, minC, maxR, maxC := rows, cols, -1, -1
		for r, row := range areas {
			for c, n := range row {
				if n != k {
					continue
				}
				minR, minC = min(minR, r), min(minC, c)
				maxR, maxC = max(maxR, r), max(maxC, c)
			}
		}
		label := []rune(strconv.Itoa(k))
		y := (minR*cellH + (maxR+1)*cellH) / 2
		x := (minC*cellW+(maxC+1)*cellW)/2 - (len(label)-1)/2
		copy(canvas[y][x:], label)
	}

	lines := make([]string, height)
	for y, line := range canvas {
		lines[y] = string(line)
	}
	return strings.Join(lines, "\n")
}
