package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered dashboard cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var flags cacheFlags

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached dashboards",
		Example: `  dashgrid cache clear
  dashgrid cache clear --cache-backend redis --redis-addr localhost:6379`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.noCache = false
			cc, err := newCache(cmd.Context(), flags)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer cc.Close()

			clearer, ok := cc.(cache.Clearer)
			if !ok {
				return fmt.Errorf("cache backend %q cannot be cleared", flags.backend)
			}
			count, err := clearer.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %s", plural(count, "cached dashboard"))
			if fc, ok := cc.(*cache.FileCache); ok {
				printDetail("Directory: %s", fc.Dir())
			}
			return nil
		},
	}

	flags.addTo(cmd)
	_ = cmd.Flags().MarkHidden("no-cache")

	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			printLine(dir)
			return nil
		},
	}
}
