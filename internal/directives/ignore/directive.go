// Package ignore handles //ignoredunion:ignore directives.
package ignore

import (
	"cmp"
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

const prefix = "ignoredunion:ignore"

// Category names a kind of finding that can be ignored.
type Category string

// Valid categories. They match the diagnostic categories.
const (
	Union Category = "union"
	Async Category = "async"
)

// AllCategories returns all valid category names.
func AllCategories() []Category {
	return []Category{Union, Async}
}

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos        token.Pos
	categories []Category // empty = all
	used       map[Category]bool
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if categories, ok := parseIgnoreComment(c.Text); ok {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{
					pos:        c.Pos(),
					categories: categories,
					used:       make(map[Category]bool),
				}
			}
		}
	}

	return m
}

// parseIgnoreComment parses an ignore directive and returns the categories.
// Returns nil slice if no specific categories are specified (ignore all).
// Returns false if not an ignore comment.
//
// Supported formats:
//   - //ignoredunion:ignore                  -> ignore all categories
//   - //ignoredunion:ignore async            -> ignore a specific category
//   - //ignoredunion:ignore union,async      -> ignore multiple categories
//   - //ignoredunion:ignore - reason         -> ignore all with comment
//   - //ignoredunion:ignore union - reason   -> ignore specific with comment
func parseIgnoreComment(text string) ([]Category, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, prefix)
	if !ok {
		return nil, false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return nil, false // e.g. //ignoredunion:ignored
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	// Stop at comment markers: " - ", "//"
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, "//"); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "- ") || rest == "-" {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	parts := strings.Split(rest, ",")
	categories := make([]Category, 0, len(parts))

	for _, part := range parts {
		name := Category(strings.TrimSpace(part))
		if name != "" {
			categories = append(categories, name)
		}
	}

	return categories, true
}

// ShouldIgnore returns true if the given line should be ignored for the category.
// It checks if the same line or the previous line has an ignore comment.
// When an ignore is used, it marks the entry as used for that category.
func (m Map) ShouldIgnore(line int, category Category) bool {
	if m.shouldIgnoreEntry(m[line], category) {
		return true
	}

	return m.shouldIgnoreEntry(m[line-1], category)
}

func (m Map) shouldIgnoreEntry(entry *Entry, category Category) bool {
	if entry == nil {
		return false
	}

	if len(entry.categories) == 0 {
		entry.used[category] = true
		return true
	}

	for _, c := range entry.categories {
		if c == category {
			entry.used[category] = true
			return true
		}
	}

	return false
}

// UnusedIgnore represents an unused ignore directive.
type UnusedIgnore struct {
	Pos        token.Pos
	Categories []Category // unused or unknown categories (empty if entire directive is unused)
}

// GetUnusedIgnores returns ignore directives that suppressed nothing,
// and specific categories that are unknown or were never used.
func (m Map) GetUnusedIgnores() []UnusedIgnore {
	var unused []UnusedIgnore

	for _, entry := range m {
		if len(entry.categories) == 0 {
			if len(entry.used) == 0 {
				unused = append(unused, UnusedIgnore{Pos: entry.pos})
			}

			continue
		}

		var rest []Category

		for _, c := range entry.categories {
			if !entry.used[c] {
				rest = append(rest, c)
			}
		}

		if len(rest) > 0 {
			unused = append(unused, UnusedIgnore{Pos: entry.pos, Categories: rest})
		}
	}

	slices.SortFunc(unused, func(a, b UnusedIgnore) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	return unused
}
