package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/theme"
)

// themesCommand creates the themes command.
func (c *CLI) themesCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "themes [name]",
		Short: "List built-in themes or show a theme's chart properties",
		Example: `  dashgrid themes
  dashgrid themes dark
  dashgrid themes --file ocean.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case file != "":
				th, err := theme.LoadFile(file)
				if err != nil {
					return fmt.Errorf("load theme %s: %w", file, err)
				}
				printTheme(th)
			case len(args) == 1:
				th, err := theme.Lookup(args[0])
				if err != nil {
					return err
				}
				printTheme(th)
			default:
				for _, name := range theme.Names() {
					th, _ := theme.Lookup(name)
					line := StyleValue.Render(fmt.Sprintf("%-10s", name)) + " " + swatches(th.ChartProperties)
					if name == theme.DefaultName {
						line += " " + StyleDim.Render("(default)")
					}
					printLine(line)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "inspect a TOML theme file")

	return cmd
}

// printTheme prints a theme's name and chart properties.
func printTheme(th theme.Theme) {
	printLine(StyleTitle.Render(th.Name))
	for _, key := range th.ChartProperties.Keys() {
		value := fmt.Sprint(th.ChartProperties[key])
		if isHexColor(value) {
			value = swatch(value) + " " + value
		}
		printKeyValue(key, value)
	}
	printDetail("layout head: %d bytes", len(th.LayoutHead))
}

// swatches renders one colored block per hex color property, in key order.
func swatches(props theme.Properties) string {
	var b strings.Builder
	for _, key := range props.Keys() {
		if s := props.String(key); isHexColor(s) {
			b.WriteString(swatch(s))
		}
	}
	return b.String()
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
