package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/nav"
	"github.com/hdng/taskboard/internal/tasksort"
	"github.com/hdng/taskboard/tests/testutil"
)

func newTestApp(t *testing.T) Model {
	t.Helper()

	m := New(testutil.NewTestStore(t), tasksort.State{Column: tasksort.ColumnDate})
	m.applySnapshots([]model.Task{
		{ID: "a", Name: "Pay bills", Date: "2025-11-05", ProjectID: "p1"},
		{ID: "b", Name: "Review PRs", Date: "2025-11-20"},
	}, []model.Project{
		{ID: "p1", Name: "Website", Status: model.ProjectStatusInProgress},
	})
	return m
}

func TestNavigateRoutesToProjectTasks(t *testing.T) {
	m := newTestApp(t)

	mdl, _ := m.navigate("/projects/p1")
	am, ok := mdl.(Model)
	require.True(t, ok)

	assert.Equal(t, nav.PageProjects, am.page)
	assert.Equal(t, "p1", am.projectID)
	assert.Contains(t, am.renderProjectHeader(), "Website")
}

func TestNavigateUnknownRouteKeepsView(t *testing.T) {
	m := newTestApp(t)

	mdl, _ := m.navigate("/nowhere")
	am := mdl.(Model)
	assert.Equal(t, nav.PageDashboard, am.page)
}

func TestNavigateArmsInlineEdit(t *testing.T) {
	m := newTestApp(t)

	mdl, _ := m.navigate("/tasks?editId=a&field=progress")
	am := mdl.(Model)

	assert.Equal(t, nav.PageTasks, am.page)
	assert.True(t, am.tasks.Capturing())
}

func TestTabCyclesPages(t *testing.T) {
	m := newTestApp(t)

	mdl, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	am := mdl.(Model)
	assert.Equal(t, nav.PageTasks, am.page)

	mdl, _ = am.handleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	am = mdl.(Model)
	assert.Equal(t, nav.PageDashboard, am.page)
}

func TestSearchOwnsKeysWhileActive(t *testing.T) {
	m := newTestApp(t)

	mdl, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	am := mdl.(Model)
	require.True(t, am.search.Active())

	// "tab" goes to the search input, not page switching.
	mdl, _ = am.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	am = mdl.(Model)
	assert.Equal(t, nav.PageDashboard, am.page)
}
