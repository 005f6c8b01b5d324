// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SourceType records which content tree a post was resolved from.
type SourceType string

const (
	SourceDocs SourceType = "docs"
	SourceI18n SourceType = "i18n"
)

// Post is a single logical document resolved to one concrete markdown
// file for a given locale query. Posts are never persisted: every query
// rebuilds them from the filesystem, so the struct carries no identity
// beyond the slug and no timestamps beyond what the front matter says.
// Date and Update keep the verbatim front-matter strings; parsing only
// happens where an ordering is needed.
type Post struct {
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Author       string     `json:"author"`
	Date         string     `json:"date"`
	Update       string     `json:"update"`
	Tags         []string   `json:"tags"`
	CoverImage   string     `json:"cover_image,omitempty"`
	Category     Category   `json:"category"`
	Language     Locale     `json:"language"`
	SourceType   SourceType `json:"source_type"`
	SourcePath   string     `json:"source_path"`
	RelativePath string     `json:"relative_path"`
	Content      string     `json:"content"`
	Snippets     []Snippet  `json:"snippets,omitempty"`
}

// Translation points at the sibling copy of a post in another locale.
type Translation struct {
	Locale Locale `json:"locale"`
	Slug   string `json:"slug"`
}
