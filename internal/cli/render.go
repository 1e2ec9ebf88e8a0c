package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/config"
	"github.com/matzehuels/dashgrid/pkg/pipeline"
)

// renderOpts holds the flags shared by commands that render a dashboard.
type renderOpts struct {
	layout    int    // layout override, used when layoutSet
	layoutSet bool   // whether --layout was given
	theme     string // built-in theme override
	themeFile string // TOML theme file override
	title     string // title override
	refresh   bool   // skip cache lookup
	cache     cacheFlags
}

func (o *renderOpts) addTo(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.layout, "layout", "l", 0, "layout variant 0-12 (default: from the dashboard file)")
	cmd.Flags().StringVarP(&o.theme, "theme", "t", "", "built-in theme: default, dark, rapids")
	cmd.Flags().StringVar(&o.themeFile, "theme-file", "", "load the theme from a TOML file")
	cmd.Flags().StringVar(&o.title, "title", "", "override the dashboard title")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "re-render even if a cached copy exists")
	o.cache.addTo(cmd)
}

// pipelineOptions converts flags to pipeline overrides.
func (o *renderOpts) pipelineOptions(cmd *cobra.Command) pipeline.Options {
	opts := pipeline.Options{
		Theme:     o.theme,
		ThemeFile: o.themeFile,
		Title:     o.title,
		Refresh:   o.refresh,
	}
	if cmd.Flags().Changed("layout") {
		opts = opts.WithLayout(o.layout)
	}
	return opts
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts   renderOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "render <dashboard-file>",
		Short: "Render a dashboard definition to HTML",
		Long: `Render a dashboard definition (TOML, YAML or JSON) to a standalone HTML page.

Charts are placed in file order. Widgets go to the sidebar; plots fill the
numbered slots of the chosen layout. Plots beyond the layout's capacity are
left out with a warning.`,
		Example: `  dashgrid render fleet.toml
  dashgrid render fleet.toml --layout 9 --theme dark -o fleet.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], output, opts.pipelineOptions(cmd), opts.cache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <dashboard-file>.html)")
	opts.addTo(cmd)

	return cmd
}

// runRender loads the dashboard, runs the pipeline and writes the HTML.
func (c *CLI) runRender(ctx context.Context, input, output string, opts pipeline.Options, flags cacheFlags) error {
	d, err := config.Load(input)
	if err != nil {
		return fmt.Errorf("load dashboard %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, flags, nil)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Rendering dashboard...")
	spinner.Start()

	res, err := runner.Execute(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "" {
		output = outputPath(input)
	}
	if err := os.WriteFile(output, res.HTML, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	prog.done("Rendered " + output)

	printSuccess("Dashboard rendered")
	printFile(output)
	printStats(res.Variant.Name(), res.Stats.Plots, res.Stats.Widgets, res.Stats.Dropped, res.CacheInfo.Hit)
	if res.Stats.Dropped > 0 {
		printWarning("%s has %d slots; %d plots were left out", res.Variant.Name(), res.Variant.Capacity(), res.Stats.Dropped)
	}
	printNewline()
	printNextStep("Preview", appName+" serve "+input)

	return nil
}

// outputPath derives "<name>.html" next to the input file.
func outputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
}
