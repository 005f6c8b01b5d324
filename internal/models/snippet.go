// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Snippet is a standalone source-code file associated with a post by
// filename or topic matching, rendered alongside the post's prose.
// Language is the display name used for syntax highlighting, derived
// from the file extension.
type Snippet struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
