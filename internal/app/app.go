package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hdng/taskboard/internal/keys"
	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/nav"
	"github.com/hdng/taskboard/internal/store"
	"github.com/hdng/taskboard/internal/tasksort"
	"github.com/hdng/taskboard/internal/theme"
	"github.com/hdng/taskboard/internal/ui"
	"github.com/hdng/taskboard/internal/ui/calendarpage"
	"github.com/hdng/taskboard/internal/ui/dashboard"
	"github.com/hdng/taskboard/internal/ui/projectspage"
	"github.com/hdng/taskboard/internal/ui/searchbar"
	"github.com/hdng/taskboard/internal/ui/taskspage"
)

// searchbarWidth is the fixed width of the header search field.
const searchbarWidth = 32

// pendingEdit holds a route-armed edit session until the task snapshot
// it refers to has been loaded.
type pendingEdit struct {
	taskID string
	field  string
}

// Model is the root Bubble Tea model that manages page routing, layout,
// shared snapshots, and dispatching mutations to the store.
type Model struct {
	page      nav.Page
	projectID string // set when viewing a single project's tasks
	layout    ui.Layout
	store     store.Store
	keys      *keys.KeyMap

	search    searchbar.Model
	dashboard dashboard.Model
	tasks     taskspage.Model
	projects  projectspage.Model
	calendar  calendarpage.Model

	allTasks    []model.Task
	allProjects []model.Project
	pending     *pendingEdit

	helpView  help.Model
	showHelp  bool
	statusMsg string
	ready     bool
}

// New creates the root application model with the given store and initial
// sort preference.
func New(s store.Store, sort tasksort.State) Model {
	k := keys.DefaultKeyMap()

	return Model{
		page:      nav.PageDashboard,
		store:     s,
		keys:      k,
		search:    searchbar.New(searchbarWidth),
		dashboard: dashboard.New(80, 24),
		tasks:     taskspage.New(k, sort, 80, 24),
		projects:  projectspage.New(k, 80, 24),
		calendar:  calendarpage.New(k, 80, 24),
		helpView:  help.New(),
	}
}

// Init loads the initial snapshots.
func (m Model) Init() tea.Cmd {
	return m.loadData()
}

// Update handles messages and dispatches to the active page.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		m.resize()
		return m, nil

	case dataLoadedMsg:
		m.applySnapshots(msg.tasks, msg.projects)
		return m, nil

	case mutationDoneMsg:
		// Failures are absorbed into the status bar; the reload shows
		// whatever state actually committed.
		if msg.err != nil {
			m.statusMsg = msg.err.Error()
		} else {
			m.statusMsg = ""
		}
		return m, m.loadData()

	case nav.NavigateMsg:
		return m.navigate(msg.Path)

	case taskspage.CommitEditMsg:
		return m, m.updateTaskField(msg.RowID, msg.Field, msg.Value)

	case taskspage.CreateTaskMsg:
		task := msg.Task
		if task.ProjectID == "" && m.projectID != "" {
			task.ProjectID = m.projectID
		}
		return m, m.createTask(task)

	case taskspage.DeleteTaskMsg:
		return m, m.deleteTask(msg.ID)

	case projectspage.CreateProjectMsg:
		return m, m.createProject(msg.Project)

	case projectspage.SaveProjectMsg:
		return m, m.saveProject(msg)

	case projectspage.DeleteProjectMsg:
		return m, m.deleteProject(msg.ID)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refreshSearchRegion()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActivePage(msg)
}

// handleKey routes keyboard input: the searchbar when it owns focus, global
// bindings when no page is capturing text, then the active page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.search.Active() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refreshSearchRegion()
		return m, cmd
	}

	if !m.capturing() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.helpView.ShowAll = m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Search):
			cmd := m.search.Focus()
			m.refreshSearchRegion()
			return m, cmd

		case key.Matches(msg, m.keys.NextPage):
			return m.navigate(pagePath(nextPage(m.page)))

		case key.Matches(msg, m.keys.PrevPage):
			return m.navigate(pagePath(prevPage(m.page)))

		case key.Matches(msg, m.keys.Back):
			if m.page == nav.PageProjects && m.projectID != "" {
				return m.navigate("/projects")
			}
		}
	}

	return m.updateActivePage(msg)
}

// capturing reports whether the active page is consuming raw text input
// (inline editor or a form), which suspends the global bindings.
func (m Model) capturing() bool {
	switch m.page {
	case nav.PageTasks:
		return m.tasks.Capturing()
	case nav.PageProjects:
		if m.projectID != "" {
			return m.tasks.Capturing()
		}
		return m.projects.Capturing()
	}
	return false
}

// navigate moves to a route path. Unknown routes leave the view unchanged.
func (m Model) navigate(path string) (tea.Model, tea.Cmd) {
	route, ok := nav.Parse(path)
	if !ok {
		return m, nil
	}

	m.page = route.Page
	m.projectID = route.ProjectID

	if route.EditID != "" {
		m.pending = &pendingEdit{taskID: route.EditID, field: route.EditField}
	}

	// Re-scope the tasks table to the routed project (or back to all).
	m.pushTaskData()
	m.armPendingEdit()
	return m, nil
}

// applySnapshots distributes freshly loaded collections to every page and
// the searchbar.
func (m *Model) applySnapshots(tasks []model.Task, projects []model.Project) {
	m.allTasks = tasks
	m.allProjects = projects

	m.search.SetTasks(tasks)
	m.dashboard.SetData(tasks, projects)
	m.projects.SetData(projects, tasks)
	m.calendar.SetData(tasks)
	m.pushTaskData()
	m.armPendingEdit()
}

// pushTaskData feeds the tasks page either the full snapshot or the slice
// scoped to the routed project.
func (m *Model) pushTaskData() {
	if m.projectID == "" {
		m.tasks.SetData(m.allTasks, m.allProjects)
		return
	}
	var scoped []model.Task
	for _, t := range m.allTasks {
		if t.ProjectID == m.projectID {
			scoped = append(scoped, t)
		}
	}
	m.tasks.SetData(scoped, m.allProjects)
}

func (m *Model) armPendingEdit() {
	if m.pending == nil || len(m.allTasks) == 0 {
		return
	}
	m.tasks.ArmEdit(m.pending.taskID, m.pending.field)
	m.pending = nil
}

// updateActivePage forwards a message to the page that owns the content
// area.
func (m Model) updateActivePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case nav.PageDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case nav.PageTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case nav.PageProjects:
		if m.projectID != "" {
			m.tasks, cmd = m.tasks.Update(msg)
		} else {
			m.projects, cmd = m.projects.Update(msg)
		}
	case nav.PageCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	}
	return m, cmd
}

// View renders the full frame: header with tabs and searchbar, the search
// dropdown when open, the active page, and the status bar.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.layout.RenderHeader(m.renderTabs(), m.search.View())

	content := m.activePageView()
	if m.showHelp {
		content = m.helpView.View(m.keys)
	}
	if dropdown := m.search.ViewDropdown(); dropdown != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, dropdown, content)
	}

	hints := "tab pages · / search · ? help · q quit"
	if m.statusMsg != "" {
		hints = m.statusMsg
	}

	return m.layout.RenderWithFrame(
		header,
		lipgloss.NewStyle().
			Width(m.layout.ContentWidth()).
			Height(m.layout.ContentHeight()).
			Render(content),
		m.layout.RenderStatusBar(hints),
	)
}

func (m Model) activePageView() string {
	switch m.page {
	case nav.PageTasks:
		return m.tasks.View()
	case nav.PageProjects:
		if m.projectID != "" {
			return m.renderProjectHeader() + "\n" + m.tasks.View()
		}
		return m.projects.View()
	case nav.PageCalendar:
		return m.calendar.View()
	default:
		return m.dashboard.View()
	}
}

func (m Model) renderProjectHeader() string {
	for _, p := range m.allProjects {
		if p.ID == m.projectID {
			dot := theme.ProjectDotStyle(p.Status).Render("●")
			return dot + " " + theme.HeaderStyle.Render(p.Name)
		}
	}
	return theme.HeaderStyle.Render(tasksort.Placeholder)
}

func (m Model) renderTabs() string {
	labels := []struct {
		page  nav.Page
		label string
	}{
		{nav.PageDashboard, "Dashboard"},
		{nav.PageTasks, "Tasks"},
		{nav.PageProjects, "Projects"},
		{nav.PageCalendar, "Calendar"},
	}

	var tabs []string
	for _, l := range labels {
		if l.page == m.page {
			tabs = append(tabs, theme.ActiveTabStyle.Render(l.label))
		} else {
			tabs = append(tabs, theme.TabStyle.Render(l.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// resize propagates new terminal dimensions to every page.
func (m *Model) resize() {
	w := m.layout.ContentWidth()
	h := m.layout.ContentHeight()
	m.dashboard.SetSize(w, h)
	m.tasks.SetSize(w, h)
	m.projects.SetSize(w, h)
	m.calendar.SetSize(w, h)
	m.refreshSearchRegion()
}

// refreshSearchRegion re-binds the searchbar's screen region, including
// the dropdown rows currently showing, for outside-click hit testing.
func (m *Model) refreshSearchRegion() {
	m.search.SetRegion(m.layout.SearchbarRegion(searchbarWidth, m.search.DropdownHeight()))
}

// nextPage and prevPage cycle the tab order.
func nextPage(p nav.Page) nav.Page {
	switch p {
	case nav.PageDashboard:
		return nav.PageTasks
	case nav.PageTasks:
		return nav.PageProjects
	case nav.PageProjects:
		return nav.PageCalendar
	default:
		return nav.PageDashboard
	}
}

func prevPage(p nav.Page) nav.Page {
	switch p {
	case nav.PageDashboard:
		return nav.PageCalendar
	case nav.PageTasks:
		return nav.PageDashboard
	case nav.PageProjects:
		return nav.PageTasks
	default:
		return nav.PageProjects
	}
}

func pagePath(p nav.Page) string {
	switch p {
	case nav.PageTasks:
		return "/tasks"
	case nav.PageProjects:
		return "/projects"
	case nav.PageCalendar:
		return "/calendar"
	default:
		return "/"
	}
}
