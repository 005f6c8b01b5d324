// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the core content types used throughout the
// application: locales, posts, categories, and snippets. The types carry
// no persistence concerns; every value is rebuilt from the filesystem on
// each query.
package models

// Locale identifies a supported content language. The set is closed:
// SupportedLocales is the single source of truth, and adding a language
// is a one-place change here (plus authoring the content).
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleVI Locale = "vi"
)

// CanonicalLocale is the language of the canonical docs tree. Posts in
// this language act as the fallback when no translation exists.
const CanonicalLocale = LocaleEN

// SupportedLocales returns the supported locales in declaration order.
// Callers receive a fresh slice each time.
func SupportedLocales() []Locale {
	return []Locale{LocaleEN, LocaleVI}
}

// ParseLocale validates a raw locale token, typically taken from a URL
// segment or query parameter.
func ParseLocale(s string) (Locale, bool) {
	for _, l := range SupportedLocales() {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

func (l Locale) String() string { return string(l) }
