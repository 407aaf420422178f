// Package calendarpage renders tasks on a month grid keyed by their date.
package calendarpage

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hdng/taskboard/internal/keys"
	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/theme"
)

// Model is the Bubble Tea model for the calendar page.
type Model struct {
	keys   *keys.KeyMap
	tasks  []model.Task
	month  time.Time // first day of the displayed month
	today  time.Time
	width  int
	height int
}

// New creates a calendar page showing the current month.
func New(k *keys.KeyMap, width, height int) Model {
	now := time.Now()
	return Model{
		keys:   k,
		month:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		today:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		width:  width,
		height: height,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetData replaces the task snapshot.
func (m *Model) SetData(tasks []model.Task) {
	m.tasks = tasks
}

// Update handles month navigation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.month = m.month.AddDate(0, -1, 0)
	case key.Matches(keyMsg, m.keys.NextMonth):
		m.month = m.month.AddDate(0, 1, 0)
	case key.Matches(keyMsg, m.keys.Today):
		now := time.Now()
		m.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return m, nil
}

// tasksByDay buckets the displayed month's tasks by day of month. Tasks
// with unparsable dates simply do not appear on the grid.
func (m Model) tasksByDay() map[int][]model.Task {
	byDay := make(map[int][]model.Task)
	for _, t := range m.tasks {
		d := model.ParseDate(t.Date)
		if d.IsZero() {
			continue
		}
		if d.Year() == m.month.Year() && d.Month() == m.month.Month() {
			byDay[d.Day()] = append(byDay[d.Day()], t)
		}
	}
	return byDay
}

// View renders the month grid.
func (m Model) View() string {
	byDay := m.tasksByDay()

	cellWidth := m.width/7 - 1
	if cellWidth < 8 {
		cellWidth = 8
	}

	cellStyle := lipgloss.NewStyle().
		Width(cellWidth).
		Height(3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.ColorBorder)
	todayStyle := cellStyle.BorderForeground(theme.ColorBlue)

	var b strings.Builder
	title := m.month.Format("January 2006")
	b.WriteString(theme.HeaderStyle.Render(title))
	b.WriteString("\n")

	weekdays := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	var headers []string
	for _, wd := range weekdays {
		headers = append(headers, lipgloss.NewStyle().
			Width(cellWidth+2).
			Align(lipgloss.Center).
			Foreground(theme.ColorGray).
			Render(wd))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")

	daysInMonth := m.month.AddDate(0, 1, -1).Day()
	// Weekday offset of the 1st, with Monday as column zero.
	offset := (int(m.month.Weekday()) + 6) % 7

	day := 1
	for day <= daysInMonth {
		var cells []string
		for col := 0; col < 7; col++ {
			if (day == 1 && col < offset) || day > daysInMonth {
				cells = append(cells, lipgloss.NewStyle().Width(cellWidth+2).Render(""))
				continue
			}

			content := m.renderDay(day, byDay[day], cellWidth)
			style := cellStyle
			if m.isToday(day) {
				style = todayStyle
			}
			cells = append(cells, style.Render(content))
			day++
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render("h/l change month · t today"))
	return b.String()
}

func (m Model) renderDay(day int, tasks []model.Task, cellWidth int) string {
	lines := []string{fmt.Sprintf("%d", day)}
	for i, t := range tasks {
		if i >= 2 {
			lines = append(lines, theme.EmptyStateStyle.Render(fmt.Sprintf("+%d more", len(tasks)-2)))
			break
		}
		name := t.Name
		if name == "" {
			name = "(unnamed)"
		}
		if len(name) > cellWidth {
			name = name[:cellWidth]
		}
		status := model.StatusForProgress(t.Progress)
		lines = append(lines, theme.ProgressStatusStyle(status).Render(name))
	}
	return strings.Join(lines, "\n")
}

func (m Model) isToday(day int) bool {
	return m.today.Year() == m.month.Year() &&
		m.today.Month() == m.month.Month() &&
		m.today.Day() == day
}

// SetSize updates the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
