// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Pages render into memory first so the page cache can store the exact
// bytes that go out on the wire.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"noteshub/internal/models"
	"noteshub/internal/slug"
)

//go:embed templates/*.html
var templatesFS embed.FS

// LocaleLink is one entry in the language switcher.
type LocaleLink struct {
	Locale models.Locale
	Name   string
	URL    string
	Active bool
}

// PageData holds all data passed to page templates.
type PageData struct {
	Title       string         // Page title for the <title> tag
	Locale      models.Locale  // Locale the page is rendered in
	LocaleLinks []LocaleLink   // Language switcher entries
	Data        map[string]any // Page-specific data
	Year        int            // Footer year, filled by Render when zero
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// Switcher builds the language switcher entries in locale declaration
// order. urlFor maps each locale to its target URL; listings point at
// the sibling listing, post pages point at the translation when one
// exists.
func Switcher(active models.Locale, urlFor func(models.Locale) string) []LocaleLink {
	locales := models.SupportedLocales()
	links := make([]LocaleLink, 0, len(locales))
	for _, l := range locales {
		links = append(links, LocaleLink{
			Locale: l,
			Name:   localeName(l),
			URL:    urlFor(l),
			Active: l == active,
		})
	}
	return links
}

// localeName returns the human-readable name of a locale for the switcher.
func localeName(l models.Locale) string {
	switch l {
	case models.LocaleEN:
		return "English"
	case models.LocaleVI:
		return "Tiếng Việt"
	}
	return l.String()
}

// Translate picks the Vietnamese label for Vietnamese pages and the English
// one otherwise. Templates see it as "t"; handlers use it for titles and
// error messages. Keeps the bilingual chrome in one place.
func Translate(l models.Locale, en, vi string) string {
	if l == models.LocaleVI {
		return vi
	}
	return en
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		"localeName": localeName,
		"t":          Translate,
		// slugify builds URL path segments from display names, e.g.
		// category links on post cards.
		"slugify": func(v any) string {
			return slug.Generate(fmt.Sprint(v))
		},
		// safeHTML marks rendered markdown and highlighted snippets as
		// trusted. Only pass strings produced by the markdown package.
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}

	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}

	// Parse each page template paired with the base layout.
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templatesFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		// Strip .html extension for the template name.
		r.templates[name[:len(name)-len(".html")]] = tmpl
	}

	return r, nil
}

// Render executes a page template into memory and returns the HTML bytes.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders a template and writes it with the given status code. Render
// errors become plain 500s so a broken template never emits half a page.
func (rn *Renderer) Page(w http.ResponseWriter, status int, name string, data *PageData) {
	html, err := rn.Render(name, data)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(html)
}
