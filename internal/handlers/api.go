// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"noteshub/internal/content"
	"noteshub/internal/metrics"
	"noteshub/internal/models"
)

// API groups the read-only JSON endpoints under /api/v1. They expose
// the same corpus resolution as the HTML site, skipping the rendering
// and the page cache; nothing here is writable.
type API struct {
	scan          *scanner
	defaultLocale models.Locale
}

// NewAPI creates the JSON handler group.
func NewAPI(mapper *content.Mapper, m *metrics.Metrics, defaultLocale models.Locale) *API {
	return &API{
		scan:          &scanner{mapper: mapper, metrics: m},
		defaultLocale: defaultLocale,
	}
}

// postSummary is the listing view of a post: metadata only. The body
// and snippet contents are carried by the detail endpoint alone.
type postSummary struct {
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Author      string          `json:"author"`
	Date        string          `json:"date"`
	Update      string          `json:"update"`
	Tags        []string        `json:"tags"`
	Category    models.Category `json:"category"`
	Language    models.Locale   `json:"language"`
	Snippets    int             `json:"snippets"`
}

func summarize(p models.Post) postSummary {
	return postSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Author:      p.Author,
		Date:        p.Date,
		Update:      p.Update,
		Tags:        p.Tags,
		Category:    p.Category,
		Language:    p.Language,
		Snippets:    len(p.Snippets),
	}
}

type postListResponse struct {
	Locale models.Locale `json:"locale"`
	Count  int           `json:"count"`
	Posts  []postSummary `json:"posts"`
}

type translationsResponse struct {
	Slug         string               `json:"slug"`
	Translations []models.Translation `json:"translations"`
}

type categoryListResponse struct {
	Locale     models.Locale          `json:"locale"`
	Categories []models.CategoryCount `json:"categories"`
}

type localesResponse struct {
	Default models.Locale   `json:"default"`
	Locales []models.Locale `json:"locales"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListPosts returns the resolved post index for a locale.
func (a *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	locale, ok := a.localeQuery(w, r)
	if !ok {
		return
	}
	posts, err := a.scan.posts(locale)
	if err != nil {
		slog.Error("resolve post listing failed", "error", err, "locale", locale)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "content scan failed"})
		return
	}
	summaries := make([]postSummary, len(posts))
	for i, p := range posts {
		summaries[i] = summarize(p)
	}
	writeJSON(w, http.StatusOK, postListResponse{Locale: locale, Count: len(summaries), Posts: summaries})
}

// GetPost returns one post with its full body and snippet contents.
func (a *API) GetPost(w http.ResponseWriter, r *http.Request) {
	locale, ok := a.localeQuery(w, r)
	if !ok {
		return
	}
	slugParam := chi.URLParam(r, "slug")
	post, err := a.scan.postBySlug(locale, slugParam)
	if err != nil {
		slog.Error("resolve post failed", "error", err, "slug", slugParam, "locale", locale)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "content scan failed"})
		return
	}
	if post == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "post not found"})
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// GetTranslations lists which locales carry a copy of the post. An
// unknown slug yields an empty list, mirroring the resolver contract.
func (a *API) GetTranslations(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	translations, err := a.scan.translations(slugParam)
	if err != nil {
		slog.Error("resolve translations failed", "error", err, "slug", slugParam)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "content scan failed"})
		return
	}
	if translations == nil {
		translations = []models.Translation{}
	}
	writeJSON(w, http.StatusOK, translationsResponse{Slug: slugParam, Translations: translations})
}

// ListCategories returns the category index with post counts.
func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	locale, ok := a.localeQuery(w, r)
	if !ok {
		return
	}
	counts, err := a.scan.categories(locale)
	if err != nil {
		slog.Error("resolve categories failed", "error", err, "locale", locale)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "content scan failed"})
		return
	}
	writeJSON(w, http.StatusOK, categoryListResponse{Locale: locale, Categories: counts})
}

// ListLocales returns the supported locales and the server default.
func (a *API) ListLocales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, localesResponse{
		Default: a.defaultLocale,
		Locales: models.SupportedLocales(),
	})
}

// localeQuery reads the optional ?locale= parameter, falling back to
// the server default. Unsupported values are a 400, not a guess.
func (a *API) localeQuery(w http.ResponseWriter, r *http.Request) (models.Locale, bool) {
	raw := r.URL.Query().Get("locale")
	if raw == "" {
		return a.defaultLocale, true
	}
	locale, ok := models.ParseLocale(raw)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unsupported locale %q", raw)})
		return "", false
	}
	return locale, true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
