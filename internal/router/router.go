// Package router sets up all HTTP routes and middleware chains for the
// noteshub server. The JSON API gets a rate limiter on top of the
// global stack; everything else shares one chain.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"noteshub/internal/handlers"
	"noteshub/internal/metrics"
	"noteshub/internal/middleware"
	"noteshub/web"
)

// New creates and returns the configured chi router with all middleware
// and route groups wired up.
func New(site *handlers.Site, api *handlers.API, m *metrics.Metrics, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request. RequestID runs
	// before Logger so every log line can carry the ID.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(m))
	r.Use(middleware.SecureHeaders)

	// Operational endpoints.
	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	// Embedded static assets. URL paths mirror the embed layout, so no
	// prefix stripping is needed.
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// JSON API — rate limited, since every call re-scans the corpus.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Get("/posts", api.ListPosts)
		r.Get("/posts/{slug}", api.GetPost)
		r.Get("/posts/{slug}/translations", api.GetTranslations)
		r.Get("/categories", api.ListCategories)
		r.Get("/locales", api.ListLocales)
	})

	// Public HTML site.
	r.Get("/", site.Home)
	r.Get("/{locale}", site.LocaleHome)
	r.Get("/{locale}/posts/{slug}", site.Post)
	r.Get("/{locale}/categories", site.Categories)
	r.Get("/{locale}/categories/{slug}", site.Category)

	r.NotFound(site.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
