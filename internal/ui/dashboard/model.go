// Package dashboard summarizes tasks and projects: counts by derived
// status, upcoming work, and project health dots.
package dashboard

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/tasksort"
	"github.com/hdng/taskboard/internal/theme"
)

// upcomingLimit caps the upcoming-tasks list.
const upcomingLimit = 5

// Model is the Bubble Tea model for the dashboard page.
type Model struct {
	tasks    []model.Task
	projects []model.Project
	width    int
	height   int
}

// New creates a dashboard page.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetData replaces the snapshots.
func (m *Model) SetData(tasks []model.Task, projects []model.Project) {
	m.tasks = tasks
	m.projects = projects
}

// Update is a no-op; the dashboard is read-only.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	counts := map[model.ProgressStatus]int{}
	for _, t := range m.tasks {
		counts[model.StatusForProgress(t.Progress)]++
	}

	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		m.statCard(model.ProgressTodo, counts[model.ProgressTodo]),
		m.statCard(model.ProgressOngoing, counts[model.ProgressOngoing]),
		m.statCard(model.ProgressComplete, counts[model.ProgressComplete]),
	)

	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n")
	b.WriteString(theme.HeaderStyle.Render("Upcoming"))
	b.WriteString("\n")
	b.WriteString(m.renderUpcoming())
	b.WriteString("\n")
	b.WriteString(theme.HeaderStyle.Render("Projects"))
	b.WriteString("\n")
	b.WriteString(m.renderProjects())
	return b.String()
}

func (m Model) statCard(status model.ProgressStatus, count int) string {
	label := theme.ProgressStatusStyle(status).Render(string(status))
	return theme.PanelStyle.Render(fmt.Sprintf("%d %s", count, label))
}

// renderUpcoming lists the next few unfinished tasks by date.
func (m Model) renderUpcoming() string {
	var pending []model.Task
	for _, t := range m.tasks {
		if model.StatusForProgress(t.Progress) != model.ProgressComplete && t.Date != "" {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return model.ParseDate(pending[i].Date).Before(model.ParseDate(pending[j].Date))
	})

	if len(pending) == 0 {
		return theme.EmptyStateStyle.Render("  nothing scheduled")
	}

	names := make(map[string]string, len(m.projects))
	for _, p := range m.projects {
		names[p.ID] = p.Name
	}

	var b strings.Builder
	for i, t := range pending {
		if i >= upcomingLimit {
			break
		}
		b.WriteString(fmt.Sprintf("  %s  %s (%s)\n",
			t.Date, t.Name, tasksort.ProjectName(t.ProjectID, names)))
	}
	return b.String()
}

func (m Model) renderProjects() string {
	if len(m.projects) == 0 {
		return theme.EmptyStateStyle.Render("  no projects")
	}

	var b strings.Builder
	for _, p := range m.projects {
		dot := theme.ProjectDotStyle(p.Status).Render("●")
		b.WriteString(fmt.Sprintf("  %s %s\n", dot, p.Name))
	}
	return b.String()
}

// SetSize updates the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
