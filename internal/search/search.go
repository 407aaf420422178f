// Package search implements the query normalizer and substring filter
// backing the searchbar.
package search

import (
	"strings"

	"github.com/hdng/taskboard/internal/model"
)

// Normalize trims surrounding whitespace and lowercases a raw query.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Filter returns the tasks whose name contains the normalized query as a
// case-insensitive substring. An empty normalized query yields an empty
// result, not all tasks. Tasks without a name are excluded.
func Filter(tasks []model.Task, rawQuery string) []model.Task {
	query := Normalize(rawQuery)
	if query == "" {
		return nil
	}

	var matches []model.Task
	for _, t := range tasks {
		if t.Name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(t.Name), query) {
			matches = append(matches, t)
		}
	}
	return matches
}
