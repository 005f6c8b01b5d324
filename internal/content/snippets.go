// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"noteshub/internal/models"
	"noteshub/internal/slug"
)

// snippetLanguages maps file extensions to the language names used for
// display and syntax highlighting. Unknown extensions fall back to the
// bare extension.
var snippetLanguages = map[string]string{
	".c":     "c",
	".cpp":   "cpp",
	".cs":    "csharp",
	".go":    "go",
	".java":  "java",
	".js":    "javascript",
	".kt":    "kotlin",
	".php":   "php",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".sh":    "bash",
	".sql":   "sql",
	".swift": "swift",
	".ts":    "typescript",
}

func languageForFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if lang, ok := snippetLanguages[ext]; ok {
		return lang
	}
	return strings.TrimPrefix(ext, ".")
}

// snippetFinder locates the source files related to a post. Discovery is
// best-effort throughout: a missing snippet tree, category directory, or
// topic directory just means no snippets. A finder is built fresh for
// every listing call, so the stem index never outlives one query.
type snippetFinder struct {
	root    string
	index   map[string][]string // normalized stem -> file paths
	indexed bool
}

func newSnippetFinder(root string) *snippetFinder {
	return &snippetFinder{root: root}
}

// forPost tries the three matching strategies in order and returns the
// first non-empty result: stem-index match on the post's slug, loose
// files in the category directory, then files of a topic subdirectory
// named after the slug. Snippet file stems conventionally use
// underscores where slugs use hyphens; comparisons run on the
// slug-normalized forms so the two conventions match.
func (f *snippetFinder) forPost(postSlug string, category models.Category) []models.Snippet {
	key := slug.Generate(postSlug)
	if key == "" {
		return nil
	}
	if snippets := f.fromIndex(key); len(snippets) > 0 {
		return snippets
	}
	catDir := filepath.Join(f.root, slug.Generate(category.String()))
	if snippets := f.filesIn(catDir); len(snippets) > 0 {
		return snippets
	}
	return f.topicDir(catDir, key)
}

func (f *snippetFinder) fromIndex(key string) []models.Snippet {
	f.ensureIndex()
	paths := f.index[key]
	if len(paths) == 0 {
		return nil
	}
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)
	return loadSnippets(sorted)
}

func (f *snippetFinder) ensureIndex() {
	if f.indexed {
		return
	}
	f.indexed = true
	f.index = map[string][]string{}
	_ = filepath.WalkDir(f.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		stem := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if key := slug.Generate(stem); key != "" {
			f.index[key] = append(f.index[key], path)
		}
		return nil
	})
}

// filesIn returns the snippets for the regular files directly inside
// dir, or nil when the directory is missing or holds none.
func (f *snippetFinder) filesIn(dir string) []models.Snippet {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return loadSnippets(paths)
}

// topicDir scans catDir for a subdirectory whose slug-normalized name
// equals key and returns that directory's files.
func (f *snippetFinder) topicDir(catDir, key string) []models.Snippet {
	entries, err := os.ReadDir(catDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if e.IsDir() && slug.Generate(e.Name()) == key {
			return f.filesIn(filepath.Join(catDir, e.Name()))
		}
	}
	return nil
}

func loadSnippets(paths []string) []models.Snippet {
	var snippets []models.Snippet
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable snippet", "path", path, "error", err)
			continue
		}
		name := filepath.Base(path)
		snippets = append(snippets, models.Snippet{
			Path:     path,
			Language: languageForFile(name),
			Filename: name,
			Content:  string(data),
		})
	}
	return snippets
}
