// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import "strings"

// metaDelimiter opens and closes a front-matter block.
const metaDelimiter = "---"

// Document is a markdown file split into its metadata block and body.
// Metadata values are verbatim strings: the block is a flat list of
// "key: value" lines, not YAML, and no type coercion happens here.
type Document struct {
	Meta map[string]string
	Body string
}

// ParseDocument splits raw markdown into metadata and body. The metadata
// block is optional: it must open on the first line with "---" and run
// until the next "---" line. Within the block, a value is everything
// after the first colon on its line, trimmed; lines without a colon are
// ignored. A missing closing delimiter means the whole input is body.
func ParseDocument(raw string) Document {
	doc := Document{Meta: map[string]string{}, Body: raw}
	lines := strings.Split(raw, "\n")
	if strings.TrimRight(lines[0], "\r") != metaDelimiter {
		return doc
	}
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == metaDelimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return doc
	}
	for _, line := range lines[1:end] {
		line = strings.TrimRight(line, "\r")
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		doc.Meta[key] = strings.TrimSpace(value)
	}
	doc.Body = strings.Join(lines[end+1:], "\n")
	return doc
}

// Title returns the metadata title if present, else the first level-one
// heading in the body, else fallback (typically the filename stem).
func (d Document) Title(fallback string) string {
	if t := d.Meta["title"]; t != "" {
		return t
	}
	for _, line := range strings.Split(d.Body, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return fallback
}

// SplitTags turns a comma-separated tag value into a clean list,
// dropping empty entries.
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
