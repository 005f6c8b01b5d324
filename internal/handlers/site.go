// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the noteshub server.
// Handlers are grouped by surface (HTML site, JSON API) and receive
// their dependencies explicitly; there is no package-level state.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"noteshub/internal/cache"
	"noteshub/internal/content"
	"noteshub/internal/markdown"
	"noteshub/internal/metrics"
	"noteshub/internal/models"
	"noteshub/internal/render"
)

// Site groups handlers for the public HTML site. Every page checks the
// Valkey page cache before touching the corpus, and stores its rendered
// bytes on miss. Error pages are never cached: a slug missing now may
// exist after the next content push.
type Site struct {
	scan          *scanner
	renderer      *render.Renderer
	pageCache     *cache.PageCache
	metrics       *metrics.Metrics
	defaultLocale models.Locale
}

// NewSite creates the HTML handler group. Pass a disabled page cache
// (nil client) when Valkey is not configured.
func NewSite(mapper *content.Mapper, renderer *render.Renderer, pageCache *cache.PageCache, m *metrics.Metrics, defaultLocale models.Locale) *Site {
	return &Site{
		scan:          &scanner{mapper: mapper, metrics: m},
		renderer:      renderer,
		pageCache:     pageCache,
		metrics:       m,
		defaultLocale: defaultLocale,
	}
}

// snippetView pairs a snippet's metadata with its highlighted HTML for
// the post template.
type snippetView struct {
	Filename string
	Language string
	HTML     string
}

// Home renders the post listing for the default locale at "/".
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	s.listing(w, r, s.defaultLocale)
}

// LocaleHome renders the post listing for the locale in the URL.
func (s *Site) LocaleHome(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.localeParam(w, r)
	if !ok {
		return
	}
	s.listing(w, r, locale)
}

func (s *Site) listing(w http.ResponseWriter, r *http.Request, locale models.Locale) {
	ctx := r.Context()
	key := cache.PageKey(locale, r.URL.Path)

	if cached, ok := s.pageCache.Get(ctx, key); ok {
		s.metrics.PageCacheTotal.WithLabelValues("hit").Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}
	s.metrics.PageCacheTotal.WithLabelValues("miss").Inc()

	posts, err := s.scan.posts(locale)
	if err != nil {
		slog.Error("resolve post listing failed", "error", err, "locale", locale)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := s.renderer.Render("home", &render.PageData{
		Title:       render.Translate(locale, "Posts", "Bài viết"),
		Locale:      locale,
		LocaleLinks: listingSwitcher(locale, ""),
		Data:        map[string]any{"Posts": posts},
	})
	if err != nil {
		slog.Error("render listing failed", "error", err, "locale", locale)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.pageCache.Set(ctx, key, html)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// Post renders a single post page: markdown body, highlighted snippets,
// and a language switcher pointing at the available translations.
func (s *Site) Post(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.localeParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")
	key := cache.PageKey(locale, r.URL.Path)

	if cached, ok := s.pageCache.Get(ctx, key); ok {
		s.metrics.PageCacheTotal.WithLabelValues("hit").Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}
	s.metrics.PageCacheTotal.WithLabelValues("miss").Inc()

	post, err := s.scan.postBySlug(locale, slugParam)
	if err != nil {
		slog.Error("resolve post failed", "error", err, "slug", slugParam, "locale", locale)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		s.notFound(w, locale)
		return
	}

	body, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Error("render markdown failed", "error", err, "slug", post.Slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// A snippet that fails to highlight drops off the page; the prose
	// still renders.
	snippets := make([]snippetView, 0, len(post.Snippets))
	for _, sn := range post.Snippets {
		highlighted, err := markdown.HighlightSnippet(sn.Filename, sn.Content)
		if err != nil {
			slog.Warn("highlight snippet failed", "file", sn.Filename, "error", err)
			continue
		}
		snippets = append(snippets, snippetView{
			Filename: sn.Filename,
			Language: sn.Language,
			HTML:     highlighted,
		})
	}

	translations, err := s.scan.translations(post.Slug)
	if err != nil {
		slog.Warn("resolve translations failed", "error", err, "slug", post.Slug)
	}
	siblings := make(map[models.Locale]string, len(translations))
	for _, tr := range translations {
		siblings[tr.Locale] = "/" + tr.Locale.String() + "/posts/" + tr.Slug
	}

	html, err := s.renderer.Render("post", &render.PageData{
		Title:  post.Title,
		Locale: locale,
		// Locales without a translation link back to their listing.
		LocaleLinks: render.Switcher(locale, func(l models.Locale) string {
			if url, ok := siblings[l]; ok {
				return url
			}
			return "/" + l.String()
		}),
		Data: map[string]any{
			"Post":     post,
			"Content":  body,
			"Snippets": snippets,
		},
	})
	if err != nil {
		slog.Error("render post failed", "error", err, "slug", post.Slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.pageCache.Set(ctx, key, html)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// Categories renders the category index with per-category post counts.
func (s *Site) Categories(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.localeParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	key := cache.PageKey(locale, r.URL.Path)

	if cached, ok := s.pageCache.Get(ctx, key); ok {
		s.metrics.PageCacheTotal.WithLabelValues("hit").Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}
	s.metrics.PageCacheTotal.WithLabelValues("miss").Inc()

	counts, err := s.scan.categories(locale)
	if err != nil {
		slog.Error("resolve categories failed", "error", err, "locale", locale)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := s.renderer.Render("categories", &render.PageData{
		Title:       render.Translate(locale, "Categories", "Chuyên mục"),
		Locale:      locale,
		LocaleLinks: listingSwitcher(locale, "/categories"),
		Data:        map[string]any{"Categories": counts},
	})
	if err != nil {
		slog.Error("render categories failed", "error", err, "locale", locale)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.pageCache.Set(ctx, key, html)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// Category renders the posts of one category, addressed by its slug.
// Slugs outside the defined category set get the 404 page.
func (s *Site) Category(w http.ResponseWriter, r *http.Request) {
	locale, ok := s.localeParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")
	key := cache.PageKey(locale, r.URL.Path)

	if cached, ok := s.pageCache.Get(ctx, key); ok {
		s.metrics.PageCacheTotal.WithLabelValues("hit").Inc()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}
	s.metrics.PageCacheTotal.WithLabelValues("miss").Inc()

	posts, def, err := s.scan.postsInCategory(locale, slugParam)
	if err != nil {
		slog.Error("resolve category failed", "error", err, "category", slugParam, "locale", locale)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if def == nil {
		s.notFound(w, locale)
		return
	}

	html, err := s.renderer.Render("category", &render.PageData{
		Title:       def.Name,
		Locale:      locale,
		LocaleLinks: listingSwitcher(locale, "/categories/"+slugParam),
		Data: map[string]any{
			"Posts": posts,
			"Count": def.Count,
		},
	})
	if err != nil {
		slog.Error("render category failed", "error", err, "category", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.pageCache.Set(ctx, key, html)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// NotFound is the router's fallback for paths no route matches.
func (s *Site) NotFound(w http.ResponseWriter, r *http.Request) {
	s.notFound(w, s.defaultLocale)
}

// localeParam parses the {locale} URL segment. Unsupported tokens get
// the default-locale 404 page; there is no guessing and no redirect.
func (s *Site) localeParam(w http.ResponseWriter, r *http.Request) (models.Locale, bool) {
	locale, ok := models.ParseLocale(chi.URLParam(r, "locale"))
	if !ok {
		s.notFound(w, s.defaultLocale)
		return "", false
	}
	return locale, true
}

// notFound renders the localized 404 page, uncached.
func (s *Site) notFound(w http.ResponseWriter, locale models.Locale) {
	s.renderer.Page(w, http.StatusNotFound, "error", &render.PageData{
		Title:       render.Translate(locale, "Not Found", "Không tìm thấy"),
		Locale:      locale,
		LocaleLinks: listingSwitcher(locale, ""),
		Data: map[string]any{
			"Status":  "404",
			"Message": render.Translate(locale, "The page you are looking for does not exist.", "Trang bạn tìm không tồn tại."),
		},
	})
}

// listingSwitcher builds switcher links for pages that exist under
// every locale at the same suffix, e.g. /en/categories ↔ /vi/categories.
func listingSwitcher(active models.Locale, suffix string) []render.LocaleLink {
	return render.Switcher(active, func(l models.Locale) string {
		return "/" + l.String() + suffix
	})
}
