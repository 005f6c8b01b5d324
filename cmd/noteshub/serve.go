package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"noteshub/internal/cache"
	"noteshub/internal/content"
	"noteshub/internal/handlers"
	"noteshub/internal/metrics"
	"noteshub/internal/middleware"
	"noteshub/internal/render"
	"noteshub/internal/router"
	"noteshub/internal/watch"
)

const (
	// apiRateLimit caps JSON API calls per client IP. Every API call
	// re-scans the content tree, so an unthrottled scraper keeps the
	// server walking the filesystem.
	apiRateLimit  = 120
	apiRateWindow = time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the noteshub HTTP server: the HTML site, the JSON API under
/api/v1, and the /health and /metrics endpoints.

When a Valkey host is configured, rendered pages are cached there and a
filesystem watcher over the content roots invalidates the cache whenever
documents change on disk.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"docs_root", cfg.DocsRoot,
		"default_locale", cfg.DefaultLocale,
	)

	// Connect to Valkey when configured; a nil client leaves the page
	// cache disabled and every request renders fresh.
	var valkeyClient *redis.Client
	if cfg.CacheEnabled() {
		var err error
		valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return fmt.Errorf("connect valkey: %w", err)
		}
		defer valkeyClient.Close()
	} else {
		slog.Warn("valkey not configured, page caching disabled")
	}
	pageCache := cache.NewPageCache(valkeyClient, cfg.CacheTTL)

	mapper := content.NewMapper(content.MapperConfig{
		DocsRoot:     cfg.DocsRoot,
		I18nRoot:     cfg.I18nRoot,
		SnippetsRoot: cfg.SnippetsRoot,
	})

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}

	m := metrics.NewMetrics(version, runtime.Version())

	siteHandlers := handlers.NewSite(mapper, renderer, pageCache, m, cfg.Locale())
	apiHandlers := handlers.NewAPI(mapper, m, cfg.Locale())

	limiter := middleware.NewRateLimiter(apiRateLimit, apiRateWindow)
	defer limiter.Stop()

	r := router.New(siteHandlers, apiHandlers, m, limiter)

	// WriteTimeout comfortably covers a full corpus re-scan plus
	// markdown rendering on a cold cache.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if cfg.Watch {
		w, err := watch.New(watch.DefaultDebounce, func() {
			pageCache.InvalidateAll(context.Background())
			m.WatcherReloadsTotal.Inc()
		})
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		for _, root := range []string{cfg.DocsRoot, cfg.I18nRoot, cfg.SnippetsRoot} {
			if err := w.AddRoot(root); err != nil {
				// Roots may appear after startup in development; the
				// watcher simply will not cover them.
				slog.Warn("content root not watched", "root", root, "error", err)
			}
		}
		g.Go(func() error {
			return w.Run(ctx)
		})
	}

	// Drain active requests once the signal context is cancelled,
	// whether by SIGINT/SIGTERM or by a failed sibling goroutine.
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutdown requested")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
