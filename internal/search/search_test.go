package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hdng/taskboard/internal/model"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "re", Normalize("  RE  "))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "pay bills", Normalize("Pay Bills"))
}

func TestFilterEmptyQueryReturnsNothing(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Name: "Pay bills"},
		{ID: "2", Name: "Review PRs"},
	}

	// Whitespace-only queries normalize to empty: no list, not "all items".
	assert.Empty(t, Filter(tasks, ""))
	assert.Empty(t, Filter(tasks, "   "))
}

func TestFilterSubstringMatch(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Name: "Pay bills"},
		{ID: "2", Name: "Review PRs"},
		{ID: "3"}, // nameless, must be skipped without error
	}

	matches := Filter(tasks, "  re  ")
	if assert.Len(t, matches, 1) {
		assert.Equal(t, "2", matches[0].ID)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	tasks := []model.Task{
		{ID: "1", Name: "Deploy STAGING"},
		{ID: "2", Name: "write docs"},
	}

	matches := Filter(tasks, "staging")
	if assert.Len(t, matches, 1) {
		assert.Equal(t, "1", matches[0].ID)
	}

	matches = Filter(tasks, "DOCS")
	if assert.Len(t, matches, 1) {
		assert.Equal(t, "2", matches[0].ID)
	}
}

func TestFilterZeroHits(t *testing.T) {
	tasks := []model.Task{{ID: "1", Name: "Pay bills"}}

	// Non-empty query with no hits is an empty slice, distinct from the
	// no-query case only at the UI layer.
	assert.Empty(t, Filter(tasks, "zzz"))
}
