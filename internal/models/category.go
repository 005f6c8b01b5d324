// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is the topic bucket a post belongs to, derived positionally
// from the post's source path. The set is closed; paths that match no
// known topic fall back to CategoryUncategorized.
type Category string

const (
	CategoryAlgorithms     Category = "Algorithms"
	CategoryDatabases      Category = "Databases"
	CategoryDesignPatterns Category = "Design Patterns"
	CategoryDevOps         Category = "DevOps"
	CategoryLinux          Category = "Linux"
	CategorySystemDesign   Category = "System Design"
	CategoryTesting        Category = "Testing"
	CategoryUncategorized  Category = "Uncategorized"
)

func (c Category) String() string { return string(c) }

// CategoryCount is one row of the category index: a category definition
// together with the number of posts resolved into it for some locale.
// Rows with a zero count are filtered out before they reach a caller.
type CategoryCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}
