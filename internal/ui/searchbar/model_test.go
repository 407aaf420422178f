package searchbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/nav"
	"github.com/hdng/taskboard/internal/ui"
)

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		_ = cmd
	}
	return m
}

func testTasks() []model.Task {
	return []model.Task{
		{ID: "1", Name: "Pay bills"},
		{ID: "2", Name: "Review PRs"},
		{ID: "3"}, // nameless
	}
}

func TestTypingFiltersResults(t *testing.T) {
	m := New(30)
	m.SetTasks(testTasks())
	_ = m.Focus()

	m = typeString(t, m, "re")
	require.Len(t, m.results, 1)
	assert.Equal(t, "2", m.results[0].ID)
	assert.Equal(t, 1, m.DropdownHeight())
}

func TestZeroHitsShowsEmptyState(t *testing.T) {
	m := New(30)
	m.SetTasks(testTasks())
	_ = m.Focus()

	m = typeString(t, m, "zzz")
	assert.Empty(t, m.results)
	// A present query with zero hits still occupies a dropdown line for
	// the explicit empty-state message.
	assert.Equal(t, 1, m.DropdownHeight())
	assert.Contains(t, m.ViewDropdown(), "no matching tasks")
}

func TestNoQueryRendersNothing(t *testing.T) {
	m := New(30)
	m.SetTasks(testTasks())
	_ = m.Focus()

	assert.Equal(t, 0, m.DropdownHeight())
	assert.Equal(t, "", m.ViewDropdown())
}

func TestOutsideClickClearsQueryAndResults(t *testing.T) {
	m := New(30)
	m.SetTasks(testTasks())
	m.SetRegion(ui.Region{X: 50, Y: 0, Width: 30, Height: 3})
	_ = m.Focus()
	m = typeString(t, m, "pay")
	require.NotEmpty(t, m.results)

	click := tea.MouseMsg{X: 2, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = m.Update(click)

	assert.False(t, m.Active())
	assert.Equal(t, "", m.input.Value())
	assert.Empty(t, m.results)
}

func TestInsideClickKeepsResults(t *testing.T) {
	m := New(30)
	m.SetTasks(testTasks())
	m.SetRegion(ui.Region{X: 50, Y: 0, Width: 30, Height: 3})
	_ = m.Focus()
	m = typeString(t, m, "pay")

	click := tea.MouseMsg{X: 55, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = m.Update(click)

	assert.True(t, m.Active())
	assert.NotEmpty(t, m.results)
}

func TestEnterNavigatesToSelectedTask(t *testing.T) {
	m := New(30)
	m.SetTasks(testTasks())
	_ = m.Focus()
	m = typeString(t, m, "re")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	navMsg, ok := msg.(nav.NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, "/tasks?editId=2&field=name", navMsg.Path)
	assert.False(t, m.Active())
}
