// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package summary builds a SUMMARY.md table of contents from the docs
// tree. Sections are the top-level directories; entries are their
// direct markdown children, so deeper nesting never leaks into the
// index. Output is deterministic for an unchanged tree.
package summary

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// header precedes every generated table of contents.
const header = "# Tech Notes Hub\n\n## Table of Contents\n\n"

// Generate renders the table of contents for the docs tree. Each
// top-level directory becomes a section, even when it holds no listed
// files; files whose stem starts with an underscore are skipped. Entry
// titles come from the file's first "# " heading, falling back to the
// prettified stem when the file has none or cannot be read.
func Generate(docsRoot string) (string, error) {
	entries, err := os.ReadDir(docsRoot)
	if err != nil {
		return "", fmt.Errorf("read docs root: %w", err)
	}

	var b strings.Builder
	b.WriteString(header)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := entry.Name()
		b.WriteString("### " + prettify(dir) + "\n\n")

		files, err := os.ReadDir(filepath.Join(docsRoot, dir))
		if err != nil {
			return "", fmt.Errorf("read section %s: %w", dir, err)
		}
		// ReadDir returns entries already sorted by name.
		names := make([]string, 0, len(files))
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
				continue
			}
			if strings.HasPrefix(f.Name(), "_") {
				continue
			}
			names = append(names, f.Name())
		}

		for _, name := range names {
			stem := strings.TrimSuffix(name, ".md")
			title := firstHeading(filepath.Join(docsRoot, dir, name))
			if title == "" {
				title = prettify(stem)
			}
			fmt.Fprintf(&b, "- [%s](docs/%s/%s)\n", title, dir, name)
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

// WriteFile generates the table of contents and writes it to path.
func WriteFile(docsRoot, path string) error {
	toc, err := Generate(docsRoot)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(toc), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	slog.Info("summary generated", "path", path, "bytes", len(toc))
	return nil
}

// firstHeading returns the text of the first "# " line in the file, or
// empty when there is none. Read failures are logged, not fatal: the
// entry keeps its fallback title.
func firstHeading(path string) string {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("could not extract title", "path", path, "error", err)
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return ""
}

// prettify turns a directory or file stem into a display name:
// hyphens become spaces and every word is title-cased.
func prettify(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "-", " "))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
