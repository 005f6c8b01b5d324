// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content maps a bilingual markdown corpus onto logical posts.
//
// The corpus consists of three read-only trees: a canonical English docs
// tree, a translation tree nesting localized copies under per-locale
// directories, and a snippet tree of standalone source files grouped by
// category and topic. The mapper reconciles the first two into one
// locale-resolved listing (preferring a localized copy, falling back to
// the canonical one), attaches matching snippets, and derives category
// and translation indexes. Nothing is persisted or cached here: every
// query re-walks the filesystem, the markdown tree is the database.
package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"noteshub/internal/models"
	"noteshub/internal/slug"
)

const (
	// defaultAuthor fills the author field when front matter omits it.
	defaultAuthor = "Tech Notes Hub"
	// dateLayout is the canonical front-matter date format and the
	// format used for defaulted dates.
	dateLayout = "2006-01-02"
)

// dateLayouts are tried in order when parsing front-matter dates for the
// listing sort. Posts whose date matches none sort as oldest.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// MapperConfig wires a Mapper to its corpus roots.
type MapperConfig struct {
	// DocsRoot is the canonical tree, I18nRoot the per-locale
	// translation tree, SnippetsRoot the source-code snippet tree.
	DocsRoot     string
	I18nRoot     string
	SnippetsRoot string

	// Classifier defaults to one built from DefaultClassifierConfig.
	Classifier *Classifier

	// Now supplies "today" for defaulted dates. Defaults to time.Now.
	Now func() time.Time
}

// Mapper resolves the corpus into locale-specific post listings. It
// holds no mutable state across calls and is safe for concurrent use.
type Mapper struct {
	docsRoot     string
	i18nRoot     string
	snippetsRoot string
	classifier   *Classifier
	now          func() time.Time
}

// NewMapper builds a Mapper from cfg, filling in defaults for the
// classifier and clock.
func NewMapper(cfg MapperConfig) *Mapper {
	m := &Mapper{
		docsRoot:     cfg.DocsRoot,
		i18nRoot:     cfg.I18nRoot,
		snippetsRoot: cfg.SnippetsRoot,
		classifier:   cfg.Classifier,
		now:          cfg.Now,
	}
	if m.classifier == nil {
		m.classifier = NewClassifier(DefaultClassifierConfig())
	}
	if m.now == nil {
		m.now = time.Now
	}
	return m
}

// translationKey identifies a localized copy of a logical document.
type translationKey struct {
	relativePath string
	locale       models.Locale
}

// Posts returns every logical document visible in the requested locale,
// each resolved to exactly one concrete file: the localized copy when
// one exists, otherwise the canonical English one. Results are sorted by
// date descending with ties keeping walk order. Individual files that
// fail to read are logged and listed with empty content and defaulted
// metadata; only a failure to walk a top-level root is an error.
func (m *Mapper) Posts(locale models.Locale) ([]models.Post, error) {
	docFiles, err := MarkdownFiles(m.docsRoot)
	if err != nil {
		return nil, fmt.Errorf("walk docs root: %w", err)
	}
	i18nFiles, err := MarkdownFiles(m.i18nRoot)
	if err != nil {
		return nil, fmt.Errorf("walk i18n root: %w", err)
	}

	all := make([]string, 0, len(docFiles)+len(i18nFiles))
	all = append(all, docFiles...)
	all = append(all, i18nFiles...)

	// Record which (relative path, locale) pairs have a localized copy.
	// Only non-canonical files register: a canonical copy must never
	// shadow itself out of its own listing.
	translated := make(map[translationKey]bool)
	for _, path := range all {
		lang := m.classifier.Language(path)
		if lang == models.CanonicalLocale {
			continue
		}
		translated[translationKey{m.classifier.RelativePath(path), lang}] = true
	}

	finder := newSnippetFinder(m.snippetsRoot)

	type dated struct {
		ts   time.Time
		post models.Post
	}
	var ordered []dated
	for i, path := range all {
		sourceType := models.SourceDocs
		if i >= len(docFiles) {
			sourceType = models.SourceI18n
		}
		lang := m.classifier.Language(path)
		switch {
		case lang == locale:
			// The localized copy always wins.
		case lang == models.CanonicalLocale && !translated[translationKey{m.classifier.RelativePath(path), locale}]:
			// Canonical fallback: no translation exists, so the
			// listing keeps the English copy rather than dropping
			// the document.
		default:
			continue
		}
		post := m.buildPost(path, sourceType, lang, finder)
		ordered = append(ordered, dated{ts: parseDate(post.Date), post: post})
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ts.After(ordered[j].ts)
	})
	posts := make([]models.Post, len(ordered))
	for i, d := range ordered {
		posts[i] = d.post
	}
	return posts, nil
}

// buildPost parses and classifies one file. Read failures degrade to an
// empty document so a single broken file never takes down the index.
func (m *Mapper) buildPost(path string, sourceType models.SourceType, lang models.Locale, finder *snippetFinder) models.Post {
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("treating unreadable document as empty", "path", path, "error", err)
		raw = nil
	}
	doc := ParseDocument(string(raw))

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	category := m.classifier.Category(path)

	date := doc.Meta["date"]
	if date == "" {
		date = m.now().Format(dateLayout)
	}
	update := doc.Meta["update"]
	if update == "" {
		update = date
	}
	tags := SplitTags(doc.Meta["tags"])
	if len(tags) == 0 {
		tags = []string{category.String()}
	}
	author := doc.Meta["author"]
	if author == "" {
		author = defaultAuthor
	}

	postSlug := m.classifier.Slug(filepath.Base(path))
	return models.Post{
		Slug:         postSlug,
		Title:        doc.Title(stem),
		Description:  doc.Meta["description"],
		Author:       author,
		Date:         date,
		Update:       update,
		Tags:         tags,
		CoverImage:   doc.Meta["coverImage"],
		Category:     category,
		Language:     lang,
		SourceType:   sourceType,
		SourcePath:   path,
		RelativePath: m.classifier.RelativePath(path),
		Content:      doc.Body,
		Snippets:     finder.forPost(postSlug, category),
	}
}

// PostBySlug resolves one post by its slug in the requested locale.
// Returns (nil, nil) when no post carries the slug, so callers can
// distinguish "not found" from a broken corpus.
func (m *Mapper) PostBySlug(locale models.Locale, postSlug string) (*models.Post, error) {
	posts, err := m.Posts(locale)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == postSlug {
			return &posts[i], nil
		}
	}
	return nil, nil
}

// PostsInCategory filters the locale's listing down to one category,
// identified by its slug. The returned CategoryCount carries the
// category's display name and the filtered count; it is nil when the
// slug names no defined category.
func (m *Mapper) PostsInCategory(locale models.Locale, categorySlug string) ([]models.Post, *models.CategoryCount, error) {
	var def *models.CategoryCount
	for _, d := range categoryDefinitions() {
		if d.Slug == categorySlug {
			d := d
			def = &d
			break
		}
	}
	if def == nil {
		return nil, nil, nil
	}
	posts, err := m.Posts(locale)
	if err != nil {
		return nil, nil, err
	}
	matched := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if categoryMatches(p.Category.String(), *def) {
			matched = append(matched, p)
		}
	}
	def.Count = len(matched)
	return matched, def, nil
}

// categoryDefinitions is the closed category table driving the count
// index. Uncategorized is deliberately absent: it is a fallback bucket,
// not a browsable category.
func categoryDefinitions() []models.CategoryCount {
	cats := []models.Category{
		models.CategoryAlgorithms,
		models.CategoryDatabases,
		models.CategoryDesignPatterns,
		models.CategoryDevOps,
		models.CategoryLinux,
		models.CategorySystemDesign,
		models.CategoryTesting,
	}
	defs := make([]models.CategoryCount, 0, len(cats))
	for _, c := range cats {
		s := slug.Generate(c.String())
		defs = append(defs, models.CategoryCount{ID: s, Name: c.String(), Slug: s})
	}
	return defs
}

// CategoriesWithCounts reports how many resolved posts fall into each
// defined category for the requested locale. A post matches a definition
// by exact name, case-insensitive name, slugified name, or
// case-insensitive slug; the redundancy absorbs casing differences
// between path-derived and hand-written category strings. Definitions
// with a zero count are dropped.
func (m *Mapper) CategoriesWithCounts(locale models.Locale) ([]models.CategoryCount, error) {
	posts, err := m.Posts(locale)
	if err != nil {
		return nil, err
	}
	defs := categoryDefinitions()
	counts := make([]models.CategoryCount, 0, len(defs))
	for _, def := range defs {
		n := 0
		for _, p := range posts {
			if categoryMatches(p.Category.String(), def) {
				n++
			}
		}
		if n > 0 {
			def.Count = n
			counts = append(counts, def)
		}
	}
	return counts, nil
}

func categoryMatches(name string, def models.CategoryCount) bool {
	if name == def.Name || strings.EqualFold(name, def.Name) {
		return true
	}
	s := slug.Generate(name)
	return s == def.Slug || strings.EqualFold(s, def.Slug)
}

// AvailableTranslations reports, for every supported locale in
// declaration order, the sibling post representing the same logical
// document as the given slug. The post's own locale is included when a
// copy exists for it. Matching is a filename-stem heuristic: slugs are
// compared after stripping one trailing language marker, so two
// documents whose stems coincide after normalization are treated as
// translations of each other even when their relative paths differ.
// An absent locale means "no translation available", never an error.
func (m *Mapper) AvailableTranslations(postSlug string) ([]models.Translation, error) {
	base := stripLocaleMarker(postSlug)
	var translations []models.Translation
	for _, locale := range models.SupportedLocales() {
		posts, err := m.Posts(locale)
		if err != nil {
			return nil, fmt.Errorf("resolve %s listing: %w", locale, err)
		}
		for _, p := range posts {
			if stripLocaleMarker(p.Slug) == base {
				translations = append(translations, models.Translation{Locale: locale, Slug: p.Slug})
				break
			}
		}
	}
	return translations, nil
}

// stripLocaleMarker removes one trailing "_<locale>" marker from a slug.
func stripLocaleMarker(s string) string {
	for _, l := range models.SupportedLocales() {
		if suffix := "_" + l.String(); strings.HasSuffix(s, suffix) {
			return strings.TrimSuffix(s, suffix)
		}
	}
	return s
}

// parseDate parses a front-matter date for ordering, trying each layout
// in turn. Unparseable values yield the zero time.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
