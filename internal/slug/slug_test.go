package slug

import "testing"

// TestGenerate exercises the slug generator with category names, snippet
// file stems, document titles, special characters, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Category names ---
		{
			name:  "single word category",
			input: "Algorithms",
			want:  "algorithms",
		},
		{
			name:  "two word category",
			input: "Design Patterns",
			want:  "design-patterns",
		},
		{
			name:  "camel case category",
			input: "DevOps",
			want:  "devops",
		},
		{
			name:  "system design",
			input: "System Design",
			want:  "system-design",
		},

		// --- Snippet file stems ---
		{
			name:  "underscored stem",
			input: "sorting_algorithms",
			want:  "sorting-algorithms",
		},
		{
			name:  "multiple underscores",
			input: "load_balancing_strategies",
			want:  "load-balancing-strategies",
		},
		{
			name:  "mixed underscores and hyphens",
			input: "ci-cd_pipeline",
			want:  "ci-cd-pipeline",
		},
		{
			name:  "leading underscore",
			input: "_private_note",
			want:  "private-note",
		},

		// --- Document titles ---
		{
			name:  "title with punctuation",
			input: "What is CAP Theorem?",
			want:  "what-is-cap-theorem",
		},
		{
			name:  "colon separated title",
			input: "Linux: Process Management",
			want:  "linux-process-management",
		},
		{
			name:  "title with year",
			input: "Database Indexing in 2026",
			want:  "database-indexing-in-2026",
		},
		{
			name:  "ampersand",
			input: "Backup & Restore",
			want:  "backup-restore",
		},
		{
			name:  "parentheses",
			input: "Caching (Redis)",
			want:  "caching-redis",
		},
		{
			name:  "slashes",
			input: "CI/CD Basics",
			want:  "cicd-basics",
		},

		// --- Whitespace handling ---
		{
			name:  "leading and trailing spaces",
			input: "  hello world  ",
			want:  "hello-world",
		},
		{
			name:  "multiple consecutive spaces collapsed",
			input: "hello    world",
			want:  "hello-world",
		},
		{
			name:  "tab between words",
			input: "hello\tworld",
			want:  "hello-world",
		},
		{
			name:  "newline between words",
			input: "hello\nworld",
			want:  "hello-world",
		},

		// --- Hyphen handling ---
		{
			name:  "multiple hyphens between words",
			input: "hello---world",
			want:  "hello-world",
		},
		{
			name:  "single hyphen preserved",
			input: "well-known fact",
			want:  "well-known-fact",
		},
		{
			name:  "hyphens and spaces mixed",
			input: "  --hello -- world--  ",
			want:  "hello-world",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only spaces",
			input: "     ",
			want:  "",
		},
		{
			name:  "only hyphens",
			input: "-----",
			want:  "",
		},
		{
			name:  "only underscores",
			input: "___",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%^&*()",
			want:  "",
		},
		{
			name:  "single character",
			input: "A",
			want:  "a",
		},
		{
			name:  "date-like string",
			input: "2025-06-06",
			want:  "2025-06-06",
		},
		{
			name:  "numbers with spaces",
			input: "12 34 56",
			want:  "12-34-56",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an already
// valid slug produces the same result.
func TestGenerate_Idempotent(t *testing.T) {
	slugs := []string{
		"sorting-algorithms",
		"design-patterns",
		"ci-cd",
		"a",
		"123",
	}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			got := Generate(s)
			if got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}

// TestGenerate_ConsistentCase verifies that slugs are always lowercase
// regardless of input casing.
func TestGenerate_ConsistentCase(t *testing.T) {
	inputs := []string{
		"SORTING ALGORITHMS",
		"Sorting Algorithms",
		"sOrTiNg AlGoRiThMs",
		"sorting algorithms",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got := Generate(input)
			if got != "sorting-algorithms" {
				t.Errorf("Generate(%q) = %q, want %q", input, got, "sorting-algorithms")
			}
		})
	}
}

// TestGenerate_StemAndSlugAgree verifies that an underscored snippet stem
// and the equivalent hyphenated document slug normalize identically.
func TestGenerate_StemAndSlugAgree(t *testing.T) {
	pairs := []struct {
		stem string
		slug string
	}{
		{stem: "sorting_algorithms", slug: "sorting-algorithms"},
		{stem: "singleton_pattern", slug: "singleton-pattern"},
		{stem: "sql_vs_nosql", slug: "sql-vs-nosql"},
	}

	for _, p := range pairs {
		t.Run(p.stem, func(t *testing.T) {
			if got, want := Generate(p.stem), Generate(p.slug); got != want {
				t.Errorf("Generate(%q) = %q, Generate(%q) = %q; want equal",
					p.stem, got, p.slug, want)
			}
		})
	}
}
