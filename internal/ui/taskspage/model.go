// Package taskspage implements the tasks table: per-column sort toggling,
// row edit mode with inline cell editing, and task create/delete.
package taskspage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hdng/taskboard/internal/edit"
	"github.com/hdng/taskboard/internal/keys"
	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/tasksort"
	"github.com/hdng/taskboard/internal/theme"
)

// CommitEditMsg asks the root model to dispatch a single-field task edit.
type CommitEditMsg struct {
	RowID string
	Field model.TaskField
	Value string
}

// CreateTaskMsg asks the root model to dispatch a task creation.
type CreateTaskMsg struct {
	Task model.Task
}

// DeleteTaskMsg asks the root model to dispatch a task removal.
type DeleteTaskMsg struct {
	ID string
}

type pageMode int

const (
	modeTable pageMode = iota
	modeForm
	modeConfirm
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name      string
	date      string
	projectID string
	progress  string
	confirm   bool
}

// Model is the Bubble Tea model for the tasks page. It renders snapshots
// pushed in via SetData and requests every mutation through messages; it
// never writes to the collections itself.
type Model struct {
	keys     *keys.KeyMap
	tasks    []model.Task
	sorted   []model.Task
	projects []model.Project
	names    map[string]string

	sort      tasksort.State
	table     table.Model
	editor    edit.Controller
	editInput textinput.Model

	mode      pageMode
	form      *huh.Form
	fb        *formBindings
	deleteID  string
	statusMsg string

	width  int
	height int
}

// New creates a tasks page with the given initial sort state.
func New(k *keys.KeyMap, sort tasksort.State, width, height int) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 120

	m := Model{
		keys:      k,
		sort:      sort,
		editInput: ti,
		fb:        &formBindings{},
		names:     map[string]string{},
		width:     width,
		height:    height,
	}
	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
	return m
}

// Init implements tea.Model; loading is driven by the root model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetData replaces the task and project snapshots and re-applies the sort.
func (m *Model) SetData(tasks []model.Task, projects []model.Project) {
	m.tasks = tasks
	m.projects = projects
	m.names = make(map[string]string, len(projects))
	for _, p := range projects {
		m.names[p.ID] = p.Name
	}
	m.resort()
}

// ArmEdit enters row edit mode on the given task and opens the requested
// cell, used when a route like "/tasks?editId=x&field=name" arrives.
// Unknown fields arm the name cell.
func (m *Model) ArmEdit(taskID, rawField string) {
	field, err := model.ParseTaskField(rawField)
	if err != nil {
		field = model.TaskFieldName
	}

	for i, t := range m.sorted {
		if t.ID == taskID {
			m.table.SetCursor(i)
			m.editor.EnterRow(taskID)
			m.beginEdit(t, field)
			return
		}
	}
}

// Capturing reports whether the page is consuming raw text input: an open
// cell editor or a form suspends the global keybindings.
func (m Model) Capturing() bool {
	return m.mode != modeTable || m.editor.Editing() != nil
}

// SortState returns the current sort selection.
func (m Model) SortState() tasksort.State {
	return m.sort
}

// Update handles messages for the tasks page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editor.Editing() != nil {
			return m.updateEditing(msg)
		}
		return m.updateTable(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateEditing routes keys while a cell editor is open. Enter and tab both
// move focus off the cell, which commits (commit-on-blur); esc cancels and
// restores the last committed value.
func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "tab":
		commit, ok := m.editor.Blur()
		m.editInput.Blur()
		m.refreshRows()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return CommitEditMsg{RowID: commit.RowID, Field: commit.Field, Value: commit.Value}
		}

	case "esc":
		m.editor.Cancel()
		m.editInput.Blur()
		m.refreshRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.editor.SetPending(m.editInput.Value())
	m.refreshRows()
	return m, cmd
}

// updateTable routes keys in normal and row-edit mode.
func (m Model) updateTable(msg tea.KeyMsg) (Model, tea.Cmd) {
	selected, hasSelection := m.selectedTask()

	switch {
	case key.Matches(msg, m.keys.EditRow):
		if !hasSelection {
			return m, nil
		}
		if m.editor.InRowMode(selected.ID) {
			m.editor.ExitRow()
		} else {
			m.editor.EnterRow(selected.ID)
		}
		m.refreshRows()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if hasSelection && m.editor.InRowMode(selected.ID) {
			m.editor.ExitRow()
			m.refreshRows()
			return m, nil
		}

	case key.Matches(msg, m.keys.New):
		m.openForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if !hasSelection {
			return m, nil
		}
		m.openConfirm(selected)
		return m, m.form.Init()

	case key.Matches(msg, m.keys.ColName):
		return m.columnKey(selected, hasSelection, model.TaskFieldName, tasksort.ColumnName)

	case key.Matches(msg, m.keys.ColDate):
		return m.columnKey(selected, hasSelection, model.TaskFieldDate, tasksort.ColumnDate)

	case key.Matches(msg, m.keys.ColProject):
		return m.columnKey(selected, hasSelection, model.TaskFieldProject, tasksort.ColumnProject)

	case key.Matches(msg, m.keys.ColProgress):
		return m.columnKey(selected, hasSelection, model.TaskFieldProgress, tasksort.ColumnProgress)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// columnKey resolves the dual role of the column keys: open the cell editor
// when the selected row is in edit mode, toggle the sort column otherwise.
func (m Model) columnKey(
	selected model.Task,
	hasSelection bool,
	field model.TaskField,
	col tasksort.Column,
) (Model, tea.Cmd) {
	if hasSelection && m.editor.InRowMode(selected.ID) {
		m.beginEdit(selected, field)
		return m, textinput.Blink
	}

	m.sort = m.sort.Toggle(col)
	m.resort()
	return m, nil
}

func (m *Model) beginEdit(t model.Task, field model.TaskField) {
	current := cellValue(t, field)
	if err := m.editor.Begin(t.ID, field, current); err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.editInput.SetValue(current)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	m.refreshRows()
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.mode = modeTable
		task := model.Task{
			Name:      m.fb.name,
			Date:      m.fb.date,
			ProjectID: m.fb.projectID,
		}
		if n, err := strconv.Atoi(strings.TrimSpace(m.fb.progress)); err == nil {
			task.Progress = n
		}
		return m, func() tea.Msg { return CreateTaskMsg{Task: task} }
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeTable
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
		m.mode = modeTable
		if m.fb.confirm {
			id := m.deleteID
			return m, func() tea.Msg { return DeleteTaskMsg{ID: id} }
		}
		return m, nil
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeTable
		return m, nil
	}

	return m, cmd
}

func (m *Model) openForm() {
	m.fb.name = ""
	m.fb.date = ""
	m.fb.projectID = ""
	m.fb.progress = "0"

	opts := []huh.Option[string]{huh.NewOption("None", "")}
	for _, p := range m.projects {
		opts = append(opts, huh.NewOption(p.Name, p.ID))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("What needs doing?").
				Value(&m.fb.name).
				Validate(validateRequired("Name")),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.fb.date).
				Validate(validateOptionalDate),
			huh.NewSelect[string]().
				Title("Project").
				Options(opts...).
				Value(&m.fb.projectID),
			huh.NewInput().
				Title("Progress").
				Placeholder("0-100").
				Value(&m.fb.progress),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
	m.mode = modeForm
}

func (m *Model) openConfirm(t model.Task) {
	m.fb.confirm = false
	m.deleteID = t.ID

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete task %q?", t.Name)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth())
	m.mode = modeConfirm
}

// View renders the tasks page.
func (m Model) View() string {
	switch m.mode {
	case modeForm, modeConfirm:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	}

	if len(m.sorted) == 0 {
		return theme.EmptyStateStyle.
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No tasks yet.\n\nPress n to add one.")
	}

	view := m.table.View()
	if m.statusMsg != "" {
		view += "\n" + theme.HelpStyle.Render(m.statusMsg)
	}
	view += "\n" + theme.HelpStyle.Render(m.hints())
	return view
}

func (m Model) hints() string {
	if m.editor.Editing() != nil {
		return "enter/tab commit · esc cancel"
	}
	if t, ok := m.selectedTask(); ok && m.editor.InRowMode(t.ID) {
		return "1-4 edit cell · e/esc leave row edit"
	}
	return "1-4 sort · e edit row · n new · x delete"
}

// selectedTask returns the task under the table cursor.
func (m Model) selectedTask() (model.Task, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.sorted) {
		return model.Task{}, false
	}
	return m.sorted[idx], true
}

// resort re-applies the sort and rebuilds the table.
func (m *Model) resort() {
	m.sorted = tasksort.Apply(m.tasks, m.sort, m.projects)
	m.table.SetColumns(m.columns())
	m.refreshRows()
	if m.table.Cursor() >= len(m.sorted) && len(m.sorted) > 0 {
		m.table.SetCursor(len(m.sorted) - 1)
	}
}

// refreshRows rebuilds the visible rows, splicing the inline editor into
// the cell being edited.
func (m *Model) refreshRows() {
	session := m.editor.Editing()

	rows := make([]table.Row, len(m.sorted))
	for i, t := range m.sorted {
		name := t.Name
		date := t.Date
		project := tasksort.ProjectName(t.ProjectID, m.names)
		progress := fmt.Sprintf("%d%%", t.Progress)
		status := string(model.StatusForProgress(t.Progress))

		if m.editor.InRowMode(t.ID) && session == nil {
			name = "✎ " + name
		}

		if session != nil && session.RowID == t.ID {
			cell := theme.EditCellStyle.Render(m.editInput.View())
			switch session.Field {
			case model.TaskFieldName:
				name = cell
			case model.TaskFieldDate:
				date = cell
			case model.TaskFieldProject:
				project = cell
			case model.TaskFieldProgress:
				progress = cell
			}
		}

		rows[i] = table.Row{name, date, project, progress, status}
	}
	m.table.SetRows(rows)
}

// columns builds the header set, marking the active sort column.
func (m Model) columns() []table.Column {
	marker := func(col tasksort.Column) string {
		if m.sort.Column != col {
			return ""
		}
		if m.sort.Direction == tasksort.Ascending {
			return " ▲"
		}
		return " ▼"
	}

	nameWidth := m.width - 12 - 16 - 10 - 10 - 6
	if nameWidth < 16 {
		nameWidth = 16
	}

	return []table.Column{
		{Title: "Name" + marker(tasksort.ColumnName), Width: nameWidth},
		{Title: "Date" + marker(tasksort.ColumnDate), Width: 12},
		{Title: "Project" + marker(tasksort.ColumnProject), Width: 16},
		{Title: "Progress" + marker(tasksort.ColumnProgress), Width: 10},
		{Title: "Status", Width: 10},
	}
}

// SetSize updates the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetColumns(m.columns())
	m.table.SetHeight(m.tableHeight())
	m.table.SetWidth(width)
}

func (m Model) tableHeight() int {
	h := m.height - 2
	if h < 3 {
		h = 3
	}
	return h
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

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

// cellValue renders a task field as the editable text for its cell.
func cellValue(t model.Task, field model.TaskField) string {
	switch field {
	case model.TaskFieldName:
		return t.Name
	case model.TaskFieldDate:
		return t.Date
	case model.TaskFieldProject:
		return t.ProjectID
	case model.TaskFieldProgress:
		return strconv.Itoa(t.Progress)
	}
	return ""
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(model.DateLayout, s); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}
