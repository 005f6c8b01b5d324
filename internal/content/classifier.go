// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"path/filepath"
	"regexp"
	"strings"

	"noteshub/internal/models"
)

var slugWhitespace = regexp.MustCompile(`\s+`)

// CategoryRule maps path-segment aliases to a category.
type CategoryRule struct {
	Category models.Category
	Aliases  []string
}

// ClassifierConfig holds the lookup tables the classifier runs on.
// Configs are treated as immutable once a Classifier is built from them;
// tests may supply alternate tables. Start from DefaultClassifierConfig,
// the zero value matches nothing.
type ClassifierConfig struct {
	// Rules is the ordered category table. Rules are evaluated in
	// sequence and the first alias found as a full path segment wins,
	// so order is the tie-break contract when aliases overlap.
	Rules []CategoryRule

	// SlugPrefixes and SlugSuffixes are the language markers stripped
	// from filename stems when deriving slugs.
	SlugPrefixes []string
	SlugSuffixes []string

	// RootMarkers separate a source root from the document-relative
	// part of a path. I18nMarker is the one whose subtree nests content
	// under a per-locale directory.
	RootMarkers []string
	I18nMarker  string
}

// DefaultClassifierConfig builds the standard tables. Language markers
// are derived from the supported locale list, so adding a locale extends
// slug stripping without touching this table.
func DefaultClassifierConfig() ClassifierConfig {
	cfg := ClassifierConfig{
		Rules: []CategoryRule{
			{Category: models.CategoryAlgorithms, Aliases: []string{"algorithms"}},
			{Category: models.CategoryDatabases, Aliases: []string{"databases"}},
			{Category: models.CategoryDesignPatterns, Aliases: []string{"design-patterns", "design_patterns"}},
			{Category: models.CategoryDevOps, Aliases: []string{"devops"}},
			{Category: models.CategoryLinux, Aliases: []string{"linux"}},
			{Category: models.CategorySystemDesign, Aliases: []string{"system-design", "system_design"}},
			{Category: models.CategoryTesting, Aliases: []string{"testing"}},
		},
		RootMarkers: []string{"/docs/", "/snippets/", "/i18n/"},
		I18nMarker:  "/i18n/",
	}
	for _, l := range models.SupportedLocales() {
		cfg.SlugPrefixes = append(cfg.SlugPrefixes, l.String()+"-")
		cfg.SlugSuffixes = append(cfg.SlugSuffixes, "_"+l.String())
	}
	return cfg
}

// Classifier answers pure path questions: which category, language,
// relative path, and slug a file has. It performs no I/O and is safe for
// concurrent use.
type Classifier struct {
	cfg ClassifierConfig
}

func NewClassifier(cfg ClassifierConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Category returns the first configured category whose alias appears as
// a full path segment, or CategoryUncategorized when none match.
func (c *Classifier) Category(path string) models.Category {
	p := filepath.ToSlash(path)
	for _, rule := range c.cfg.Rules {
		for _, alias := range rule.Aliases {
			if hasSegment(p, alias) {
				return rule.Category
			}
		}
	}
	return models.CategoryUncategorized
}

// Language returns the first non-canonical locale appearing as a full
// path segment, else the canonical locale.
func (c *Classifier) Language(path string) models.Locale {
	p := filepath.ToSlash(path)
	for _, l := range models.SupportedLocales() {
		if l == models.CanonicalLocale {
			continue
		}
		if hasSegment(p, l.String()) {
			return l
		}
	}
	return models.CanonicalLocale
}

// RelativePath strips everything up to and including the earliest root
// marker in the path. For the i18n marker the locale segment that
// follows is dropped too, so a canonical document and its translations
// resolve to the same relative path. Paths without a marker come back
// unchanged (slash-normalized).
//
// Filename-level language markers are deliberately not touched here: a
// "_vi"-suffixed file keeps its suffix in the relative path and thus
// joins as an independent document rather than as a translation.
func (c *Classifier) RelativePath(path string) string {
	p := filepath.ToSlash(path)
	marker, idx := "", -1
	for _, m := range c.cfg.RootMarkers {
		if i := strings.Index(p, m); i >= 0 && (idx < 0 || i < idx) {
			marker, idx = m, i
		}
	}
	if idx < 0 {
		return p
	}
	rel := p[idx+len(marker):]
	if marker == c.cfg.I18nMarker {
		if seg, rest, found := strings.Cut(rel, "/"); found {
			if _, ok := models.ParseLocale(seg); ok {
				rel = rest
			}
		}
	}
	return rel
}

// Slug derives the language-agnostic identifier from a markdown
// filename: extension and language markers stripped, lowercased,
// whitespace runs replaced by single hyphens. Characters outside the
// markers pass through untouched.
func (c *Classifier) Slug(filename string) string {
	stem := filepath.Base(filepath.ToSlash(filename))
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))
	for _, p := range c.cfg.SlugPrefixes {
		if strings.HasPrefix(stem, p) {
			stem = strings.TrimPrefix(stem, p)
			break
		}
	}
	for _, s := range c.cfg.SlugSuffixes {
		if strings.HasSuffix(stem, s) {
			stem = strings.TrimSuffix(stem, s)
			break
		}
	}
	stem = strings.ToLower(stem)
	return slugWhitespace.ReplaceAllString(stem, "-")
}

func hasSegment(path, segment string) bool {
	return strings.Contains(path, "/"+segment+"/")
}
