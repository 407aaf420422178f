// Package projectspage implements the projects list with status dots and
// create/edit/delete flows.
package projectspage

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hdng/taskboard/internal/keys"
	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/nav"
	"github.com/hdng/taskboard/internal/theme"
)

// CreateProjectMsg asks the root model to dispatch a project creation.
type CreateProjectMsg struct {
	Project model.Project
}

// SaveProjectMsg asks the root model to dispatch field edits for a project.
type SaveProjectMsg struct {
	ID     string
	Name   string
	Due    string
	Status string
}

// DeleteProjectMsg asks the root model to dispatch a project removal.
type DeleteProjectMsg struct {
	ID string
}

type pageMode int

const (
	modeList pageMode = iota
	modeForm
	modeConfirm
)

type formBindings struct {
	name    string
	due     string
	status  string
	confirm bool
}

// Model is the Bubble Tea model for the projects page.
type Model struct {
	keys        *keys.KeyMap
	projects    []model.Project
	taskCounts  map[string]int
	selectedIdx int

	mode     pageMode
	form     *huh.Form
	fb       *formBindings
	editID   string
	deleteID string

	width  int
	height int
}

// New creates a projects page.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		keys:       k,
		fb:         &formBindings{},
		taskCounts: map[string]int{},
		width:      width,
		height:     height,
	}
}

// Init implements tea.Model; loading is driven by the root model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetData replaces the project snapshot. Task counts per project come from
// the task snapshot so the list can show how much work each project holds.
func (m *Model) SetData(projects []model.Project, tasks []model.Task) {
	m.projects = projects
	m.taskCounts = make(map[string]int, len(projects))
	for _, t := range tasks {
		m.taskCounts[t.ProjectID]++
	}
	if m.selectedIdx >= len(projects) && len(projects) > 0 {
		m.selectedIdx = len(projects) - 1
	}
}

// Capturing reports whether a form currently owns keyboard input.
func (m Model) Capturing() bool {
	return m.mode != modeList
}

// Update handles messages for the projects page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.selectedIdx < len(m.projects)-1 {
			m.selectedIdx++
		}

	case key.Matches(keyMsg, m.keys.Select):
		if p, ok := m.selected(); ok {
			return m, nav.Go("/projects/" + p.ID)
		}

	case key.Matches(keyMsg, m.keys.New):
		m.openForm(nil)
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.EditRow):
		if p, ok := m.selected(); ok {
			m.openForm(&p)
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if p, ok := m.selected(); ok {
			m.openConfirm(p)
			return m, m.form.Init()
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.mode = modeList
		if m.editID != "" {
			id := m.editID
			fb := *m.fb
			return m, func() tea.Msg {
				return SaveProjectMsg{ID: id, Name: fb.name, Due: fb.due, Status: fb.status}
			}
		}
		project := model.Project{
			Name:   m.fb.name,
			Due:    m.fb.due,
			Status: m.fb.status,
		}
		return m, func() tea.Msg { return CreateProjectMsg{Project: project} }
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.mode = modeList
		if m.fb.confirm {
			id := m.deleteID
			return m, func() tea.Msg { return DeleteProjectMsg{ID: id} }
		}
		return m, nil
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}

	return m, cmd
}

func (m *Model) openForm(existing *model.Project) {
	if existing != nil {
		m.editID = existing.ID
		m.fb.name = existing.Name
		m.fb.due = existing.Due
		m.fb.status = existing.Status
	} else {
		m.editID = ""
		m.fb.name = ""
		m.fb.due = ""
		m.fb.status = model.ProjectStatusNotStarted
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&m.fb.name).
				Validate(validateRequired("Name")),
			huh.NewInput().
				Title("Due").
				Placeholder("YYYY-MM-DD").
				Value(&m.fb.due),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Not started", model.ProjectStatusNotStarted),
					huh.NewOption("In progress", model.ProjectStatusInProgress),
					huh.NewOption("Complete", model.ProjectStatusComplete),
				).
				Value(&m.fb.status),
		),
	).WithWidth(m.formWidth())
	m.mode = modeForm
}

func (m *Model) openConfirm(p model.Project) {
	m.fb.confirm = false
	m.deleteID = p.ID

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete project %q?", p.Name)).
				Description("Tasks keep their reference and show \"-\" for the project.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth())
	m.mode = modeConfirm
}

// View renders the projects page.
func (m Model) View() string {
	switch m.mode {
	case modeForm, modeConfirm:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	}

	if len(m.projects) == 0 {
		return theme.EmptyStateStyle.
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No projects yet.\n\nPress n to add one.")
	}

	var b strings.Builder
	for i, p := range m.projects {
		dot := theme.ProjectDotStyle(p.Status).Render("●")
		due := p.Due
		if due == "" {
			due = "-"
		}
		line := fmt.Sprintf("%s %s  · due %s · %d tasks", dot, p.Name, due, m.taskCounts[p.ID])
		if i == m.selectedIdx {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = lipgloss.NewStyle().PaddingLeft(2).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("enter open · n new · e edit · x delete"))
	return b.String()
}

// Selected returns the highlighted project for the root model.
func (m Model) Selected() (model.Project, bool) {
	return m.selected()
}

func (m Model) selected() (model.Project, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.projects) {
		return model.Project{}, false
	}
	return m.projects[m.selectedIdx], true
}

// SetSize updates the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
