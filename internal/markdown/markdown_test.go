package markdown

import (
	"strings"
	"testing"
)

// TestToHTML verifies basic markdown conversion with the configured
// extensions.
func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "heading with auto id",
			source: "# Sorting Algorithms",
			want:   []string{"<h1", "Sorting Algorithms</h1>"},
		},
		{
			name:   "gfm table",
			source: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:   []string{"<table>", "<td>1</td>"},
		},
		{
			name:   "fenced code block is highlighted",
			source: "```go\npackage main\n```",
			want:   []string{"<pre"},
		},
		{
			name:   "raw html passes through",
			source: "<div class=\"badge\">ok</div>",
			want:   []string{`<div class="badge">ok</div>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML(%q) returned error: %v", tt.source, err)
			}
			for _, fragment := range tt.want {
				if !strings.Contains(got, fragment) {
					t.Errorf("ToHTML(%q) = %q, missing %q", tt.source, got, fragment)
				}
			}
		})
	}
}

// TestHighlightSnippet verifies snippet rendering for known and unknown
// file types.
func TestHighlightSnippet(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		source   string
	}{
		{name: "go file", filename: "sorting_algorithms.go", source: "package main\n\nfunc main() {}\n"},
		{name: "python file", filename: "sorting_algorithms.py", source: "def sort():\n    pass\n"},
		{name: "unknown extension falls back to plain", filename: "notes.zzz", source: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HighlightSnippet(tt.filename, tt.source)
			if err != nil {
				t.Fatalf("HighlightSnippet(%q) returned error: %v", tt.filename, err)
			}
			if !strings.Contains(got, "<pre") {
				t.Errorf("HighlightSnippet(%q) = %q, want <pre block", tt.filename, got)
			}
		})
	}
}
