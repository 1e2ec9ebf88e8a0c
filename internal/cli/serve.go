package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dashgrid/pkg/buildinfo"
	"github.com/matzehuels/dashgrid/pkg/cache"
	"github.com/matzehuels/dashgrid/pkg/config"
	dgerrors "github.com/matzehuels/dashgrid/pkg/errors"
	"github.com/matzehuels/dashgrid/pkg/observability"
	"github.com/matzehuels/dashgrid/pkg/pipeline"
)

const (
	defaultAddr     = "localhost:8050"
	shutdownTimeout = 5 * time.Second
	headerDocID     = "X-Dashboard-ID"
	headerCache     = "X-Cache"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		opts renderOpts
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve <dashboard-file>",
		Short: "Serve a live preview of a dashboard",
		Long: `Serve a dashboard over HTTP. The definition is re-read on every request, so
edits show up on reload.

Routes:
  GET /              the dashboard with its configured layout
  GET /layouts/{n}   the dashboard placed into layout n
  GET /healthz       liveness check
  GET /metrics       Prometheus metrics

The query parameters theme and title override the definition per request.`,
		Example: `  dashgrid serve fleet.toml
  dashgrid serve fleet.toml --addr :9000 --cache-backend redis`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr, opts.pipelineOptions(cmd), opts.cache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	opts.addTo(cmd)

	return cmd
}

func (c *CLI) runServe(ctx context.Context, path, addr string, base pipeline.Options, flags cacheFlags) error {
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("load dashboard %s: %w", path, err)
	}

	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "serve:")
	runner, err := c.newRunner(ctx, flags, keyer)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	metrics.Register()
	defer observability.Reset()

	s := &server{
		path:    path,
		runner:  runner,
		base:    base,
		logger:  c.Logger,
		metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	printSuccess("Serving %s", filepath.Base(path))
	printLine("  " + StyleDim.Render(iconArrow) + " " + StyleLink.Render("http://"+addr+"/"))
	printDetail("Press Ctrl+C to stop")

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	c.Logger.Info("server stopped")
	return ctx.Err()
}

// =============================================================================
// Server
// =============================================================================

// server renders one dashboard file per request.
type server struct {
	path    string
	runner  *pipeline.Runner
	base    pipeline.Options
	logger  *log.Logger
	metrics http.Handler
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/", s.handleDashboard)
	r.Get("/layouts/{n}", s.handleLayout)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "ok %s\n", buildinfo.Version)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return r
}

// instrument logs each request and reports it to the server hooks by
// route pattern.
func (s *server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		dur := time.Since(start)
		observability.Server().OnRequest(r.Context(), r.Method, route, status, dur)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "duration", dur)
	})
}

func (s *server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.options(r))
}

func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		s.fail(w, dgerrors.New(dgerrors.ErrCodeInvalidLayout, "layout must be a number: %q", chi.URLParam(r, "n")))
		return
	}
	s.render(w, r, s.options(r).WithLayout(n))
}

// options applies the theme and title query parameters to the base options.
func (s *server) options(r *http.Request) pipeline.Options {
	opts := s.base
	q := r.URL.Query()
	if th := q.Get("theme"); th != "" {
		opts.Theme, opts.ThemeFile = th, ""
	}
	if title := q.Get("title"); title != "" {
		opts.Title = title
	}
	return opts
}

func (s *server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	d, err := config.Load(s.path)
	if err != nil {
		s.fail(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), d, opts)
	if err != nil {
		s.fail(w, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	if res.Document != nil {
		h.Set(headerDocID, res.Document.ID().String())
	}
	if res.CacheInfo.Hit {
		h.Set(headerCache, "hit")
	} else {
		h.Set(headerCache, "miss")
	}
	w.Write(res.HTML)
}

func (s *server) fail(w http.ResponseWriter, err error) {
	status := dgerrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "err", err)
	} else {
		s.logger.Warn("bad request", "err", err)
	}
	http.Error(w, dgerrors.UserMessage(err), status)
}
