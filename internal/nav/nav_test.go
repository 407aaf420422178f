package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoot(t *testing.T) {
	r, ok := Parse("/")
	assert.True(t, ok)
	assert.Equal(t, PageDashboard, r.Page)
}

func TestParseTasksWithEditSession(t *testing.T) {
	r, ok := Parse("/tasks?editId=abc123&field=name")
	assert.True(t, ok)
	assert.Equal(t, PageTasks, r.Page)
	assert.Equal(t, "abc123", r.EditID)
	assert.Equal(t, "name", r.EditField)
}

func TestParseProjectDetail(t *testing.T) {
	r, ok := Parse("/projects/p42")
	assert.True(t, ok)
	assert.Equal(t, PageProjects, r.Page)
	assert.Equal(t, "p42", r.ProjectID)
}

func TestParseCalendar(t *testing.T) {
	r, ok := Parse("/calendar")
	assert.True(t, ok)
	assert.Equal(t, PageCalendar, r.Page)
}

func TestParseUnknownRouteIgnored(t *testing.T) {
	_, ok := Parse("/settings/advanced")
	assert.False(t, ok)
}
