// Package cli implements the dashgrid command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/buildinfo"
	"github.com/matzehuels/dashgrid/pkg/cache"
	"github.com/matzehuels/dashgrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dashgrid"

	// envRedisAddr supplies the default for --redis-addr.
	envRedisAddr = "DASHGRID_REDIS_ADDR"

	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Dashgrid arranges charts and widgets into fixed dashboard grids",
		Long:         `Dashgrid reads a dashboard definition, places its charts into one of thirteen fixed grid layouts with a widget sidebar, applies a theme and writes a standalone HTML page.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheFlags selects the cache backend for commands that render.
type cacheFlags struct {
	noCache   bool
	backend   string
	redisAddr string
}

func (f *cacheFlags) addTo(cmd *cobra.Command) {
	addr := os.Getenv(envRedisAddr)
	if addr == "" {
		addr = "localhost:6379"
	}
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&f.backend, "cache-backend", cacheBackendFile, "cache backend: file, redis")
	cmd.Flags().StringVar(&f.redisAddr, "redis-addr", addr, "redis address for --cache-backend=redis (env "+envRedisAddr+")")
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, flags cacheFlags, keyer cache.Keyer) (*pipeline.Runner, error) {
	cc, err := newCache(ctx, flags)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

func newCache(ctx context.Context, flags cacheFlags) (cache.Cache, error) {
	if flags.noCache {
		return cache.NewNullCache(), nil
	}
	switch flags.backend {
	case cacheBackendFile, "":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case cacheBackendRedis:
		return cache.NewRedisCache(ctx, flags.redisAddr)
	}
	return nil, fmt.Errorf("invalid cache backend: %q (must be %q or %q)", flags.backend, cacheBackendFile, cacheBackendRedis)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/dashgrid/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
