// Package searchbar implements the header search field with a result
// dropdown and outside-click dismissal.
package searchbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/nav"
	"github.com/hdng/taskboard/internal/search"
	"github.com/hdng/taskboard/internal/theme"
	"github.com/hdng/taskboard/internal/ui"
)

// maxResults caps the dropdown height.
const maxResults = 8

// Model is the searchbar component. It filters an in-memory snapshot of the
// task collection; the snapshot is refreshed by the root model whenever
// tasks change.
type Model struct {
	input    textinput.Model
	tasks    []model.Task
	results  []model.Task
	selected int
	active   bool
	region   ui.Region
	width    int
}

// New creates a searchbar of the given width.
func New(width int) Model {
	ti := textinput.New()
	ti.Placeholder = "search tasks..."
	ti.Prompt = "/ "
	ti.Width = width - 4

	return Model{
		input: ti,
		width: width,
	}
}

// Focus activates the searchbar and returns the input focus command.
func (m *Model) Focus() tea.Cmd {
	m.active = true
	return m.input.Focus()
}

// Active reports whether the searchbar currently owns keyboard input.
func (m Model) Active() bool {
	return m.active
}

// SetTasks refreshes the snapshot the filter runs against and re-applies
// the current query.
func (m *Model) SetTasks(tasks []model.Task) {
	m.tasks = tasks
	m.refilter()
}

// SetRegion records the screen area the searchbar (and its dropdown)
// occupies. Pointer events are hit-tested against this bound region.
func (m *Model) SetRegion(r ui.Region) {
	m.region = r
}

// DropdownHeight returns the number of lines the dropdown occupies,
// including the empty-state message line.
func (m Model) DropdownHeight() int {
	if !m.active || search.Normalize(m.input.Value()) == "" {
		return 0
	}
	if len(m.results) == 0 {
		return 1
	}
	n := len(m.results)
	if n > maxResults {
		n = maxResults
	}
	return n
}

// Clear resets the query text and hides the results. This is the outside
// click / dismissal transition.
func (m *Model) Clear() {
	m.active = false
	m.input.Reset()
	m.input.Blur()
	m.results = nil
	m.selected = 0
}

// Update handles messages while the searchbar is active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if m.active && ui.OutsideClick(m.region, msg) {
			m.Clear()
		}
		return m, nil

	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.Clear()
			return m, nil

		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.selected < len(m.results)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			if m.selected < len(m.results) {
				id := m.results[m.selected].ID
				m.Clear()
				return m, nav.Go(fmt.Sprintf("/tasks?editId=%s&field=name", id))
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refilter()
		return m, cmd
	}

	return m, nil
}

// refilter recomputes results for the current query and keeps the
// selection in range.
func (m *Model) refilter() {
	m.results = search.Filter(m.tasks, m.input.Value())
	if m.selected >= len(m.results) {
		m.selected = 0
	}
}

// View renders the search input line.
func (m Model) View() string {
	style := lipgloss.NewStyle().Width(m.width)
	if !m.active {
		return style.Render(theme.HelpStyle.Render("press / to search"))
	}
	return style.Render(m.input.View())
}

// ViewDropdown renders the result list below the input. A non-empty query
// with zero hits shows an explicit empty-state message; no query at all
// renders nothing.
func (m Model) ViewDropdown() string {
	if m.DropdownHeight() == 0 {
		return ""
	}

	if len(m.results) == 0 {
		return theme.EmptyStateStyle.
			Width(m.width).
			Align(lipgloss.Right).
			Render("no matching tasks")
	}

	lines := make([]string, 0, len(m.results))
	for i, t := range m.results {
		if i >= maxResults {
			break
		}
		line := t.Name
		if i == m.selected {
			line = theme.SelectedItemStyle.Render(line)
		}
		lines = append(lines, lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Right).
			Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Right, lines...)
}
