package content

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"noteshub/internal/models"
)

// TestClassifierSlugProperties checks the slug invariants over random
// filename stems: output is lowercase, free of whitespace, and stable
// across language-marker decoration.
func TestClassifierSlugProperties(t *testing.T) {
	c := NewClassifier(DefaultClassifierConfig())

	rapid.Check(t, func(t *rapid.T) {
		// Stems that already open with a locale marker would eat the
		// decoration's strip, so they are excluded up front.
		stem := rapid.StringMatching(`[a-z][a-z0-9-]{0,24}`).
			Filter(func(s string) bool {
				for _, l := range models.SupportedLocales() {
					if strings.HasPrefix(s, l.String()+"-") {
						return false
					}
				}
				return true
			}).Draw(t, "stem")

		base := c.Slug(stem + ".md")
		if base != strings.ToLower(base) {
			t.Fatalf("Slug(%q.md) = %q is not lowercase", stem, base)
		}
		if strings.ContainsAny(base, " \t\n") {
			t.Fatalf("Slug(%q.md) = %q contains whitespace", stem, base)
		}

		// Language markers must be fully stripped: every decorated
		// variant of the stem slugs identically to the plain one.
		for _, l := range models.SupportedLocales() {
			prefixed := c.Slug(l.String() + "-" + stem + ".md")
			suffixed := c.Slug(stem + "_" + l.String() + ".md")
			if prefixed != base || suffixed != base {
				t.Fatalf("marker stripping unstable for %q: base %q, %s-prefixed %q, _%s-suffixed %q",
					stem, base, l, prefixed, l, suffixed)
			}
		}
	})
}

// TestClassifierLanguageProperties checks that language detection always
// lands on a supported locale and only the directory form of a locale
// token flips it.
func TestClassifierLanguageProperties(t *testing.T) {
	c := NewClassifier(DefaultClassifierConfig())

	rapid.Check(t, func(t *rapid.T) {
		segments := rapid.SliceOfN(rapid.StringMatching(`[a-z][a-z0-9-]{0,12}`), 1, 5).Draw(t, "segments")
		name := rapid.StringMatching(`[a-z][a-z0-9-]{0,12}`).Draw(t, "name")
		path := "/" + strings.Join(segments, "/") + "/" + name + ".md"

		lang := c.Language(path)
		if _, ok := models.ParseLocale(lang.String()); !ok {
			t.Fatalf("Language(%q) = %q is not a supported locale", path, lang)
		}

		hasVi := false
		for _, seg := range segments {
			if seg == "vi" {
				hasVi = true
			}
		}
		if hasVi && lang != models.LocaleVI {
			t.Fatalf("Language(%q) = %q, want vi for a /vi/ segment", path, lang)
		}
		if !hasVi && lang != models.LocaleEN {
			t.Fatalf("Language(%q) = %q, want en without a /vi/ segment", path, lang)
		}
	})
}

// TestRelativePathJoinProperty checks the translation join key: for any
// generated document path, the canonical copy and its vi twin resolve to
// the same relative path.
func TestRelativePathJoinProperty(t *testing.T) {
	c := NewClassifier(DefaultClassifierConfig())

	rapid.Check(t, func(t *rapid.T) {
		dir := rapid.StringMatching(`[a-z][a-z0-9-]{0,12}`).Draw(t, "dir")
		name := rapid.StringMatching(`[a-z][a-z0-9-]{0,16}`).Draw(t, "name")

		canonical := c.RelativePath("/corpus/docs/" + dir + "/" + name + ".md")
		translated := c.RelativePath("/corpus/i18n/vi/" + dir + "/" + name + ".md")
		if canonical != translated {
			t.Fatalf("join key broken: docs %q, i18n %q", canonical, translated)
		}
	})
}
