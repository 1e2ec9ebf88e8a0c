package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/chart"
	"github.com/matzehuels/dashgrid/pkg/config"
	"github.com/matzehuels/dashgrid/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LayoutListModel - Interactive layout selection
// =============================================================================

// LayoutListModel is the bubbletea model for choosing a layout variant.
// Plots is the number of plots the dashboard places, used to mark layouts
// that would leave some out.
type LayoutListModel struct {
	Variants []*layout.Variant
	Plots    int
	Cursor   int
	Selected *layout.Variant
}

// NewLayoutListModel creates a layout list with the cursor on start.
func NewLayoutListModel(plots, start int) LayoutListModel {
	variants := layout.All()
	if start < 0 || start >= len(variants) {
		start = 0
	}
	return LayoutListModel{Variants: variants, Plots: plots, Cursor: start}
}

func (m LayoutListModel) Init() tea.Cmd {
	return nil
}

func (m LayoutListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Variants)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Variants[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m LayoutListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layout"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, v := range m.Variants {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		fit := "✓"
		if v.Capacity() < m.Plots {
			fit = "!"
		}
		line := fmt.Sprintf("%s%s %-9s %d slots", cursor, fit, v.Name(), v.Capacity())

		switch {
		case i == m.Cursor:
			list.WriteString(listSelectedStyle.Render(line))
		case v.Capacity() < m.Plots:
			list.WriteString(listDimStyle.Render(line))
		default:
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	current := m.Variants[m.Cursor]
	side := preview(current, 6, 2) + "\n\n" + listDimStyle.Render(sizeSummary(current.Sizes()))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "    ", side))
	b.WriteString("\n\n")

	status := fmt.Sprintf("  %s fits %s   %s leaves plots out", StyleSuccess.Render("✓"), plural(m.Plots, "plot"), StyleWarning.Render("!"))
	b.WriteString(listDimStyle.Render(status))
	b.WriteString("\n")

	return b.String()
}

// =============================================================================
// Pick Command
// =============================================================================

// pickCommand creates the pick command.
func (c *CLI) pickCommand() *cobra.Command {
	var (
		opts   renderOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "pick <dashboard-file>",
		Short: "Choose a layout interactively, then render",
		Example: `  dashgrid pick fleet.toml
  dashgrid pick fleet.toml --theme rapids -o fleet.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("load dashboard %s: %w", args[0], err)
			}

			plots := 0
			for _, spec := range d.Charts {
				if chart.ClassifyType(spec.Type) == chart.Plot {
					plots++
				}
			}

			final, err := tea.NewProgram(NewLayoutListModel(plots, d.Layout), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("layout picker: %w", err)
			}
			m, ok := final.(LayoutListModel)
			if !ok || m.Selected == nil {
				printInfo("No layout selected")
				return nil
			}

			popts := opts.pipelineOptions(cmd).WithLayout(m.Selected.Index())
			return c.runRender(cmd.Context(), args[0], output, popts, opts.cache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <dashboard-file>.html)")
	opts.addTo(cmd)
	_ = cmd.Flags().MarkHidden("layout")

	return cmd
}
