package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/store"
	"github.com/hdng/taskboard/internal/ui/projectspage"
)

// dataLoadedMsg carries fresh task and project snapshots.
type dataLoadedMsg struct {
	tasks    []model.Task
	projects []model.Project
}

// mutationDoneMsg reports the outcome of a dispatched mutation; the root
// model reloads snapshots regardless so readers see the committed state.
type mutationDoneMsg struct {
	err error
}

// loadData returns a command that reads both collections.
func (m Model) loadData() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()

		tasks, err := s.GetTasks(ctx, store.TaskFilter{})
		if err != nil {
			return dataLoadedMsg{}
		}
		projects, err := s.GetProjects(ctx)
		if err != nil {
			return dataLoadedMsg{tasks: tasks}
		}
		return dataLoadedMsg{tasks: tasks, projects: projects}
	}
}

func (m Model) createTask(task model.Task) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		_, err := s.CreateTask(context.Background(), task)
		return mutationDoneMsg{err: err}
	}
}

func (m Model) updateTaskField(id string, field model.TaskField, raw string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		_, err := s.UpdateTaskField(context.Background(), id, field, raw)
		return mutationDoneMsg{err: err}
	}
}

func (m Model) deleteTask(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		return mutationDoneMsg{err: s.DeleteTask(context.Background(), id)}
	}
}

func (m Model) createProject(project model.Project) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		_, err := s.CreateProject(context.Background(), project)
		return mutationDoneMsg{err: err}
	}
}

// saveProject dispatches one field update per changed field, so the store
// only ever sees the single-field edit operation.
func (m Model) saveProject(msg projectspage.SaveProjectMsg) tea.Cmd {
	s := m.store
	current := m.findProject(msg.ID)
	return func() tea.Msg {
		ctx := context.Background()

		edits := []struct {
			field model.ProjectField
			old   string
			new   string
		}{
			{model.ProjectFieldName, current.Name, msg.Name},
			{model.ProjectFieldDue, current.Due, msg.Due},
			{model.ProjectFieldStatus, current.Status, msg.Status},
		}

		for _, e := range edits {
			if e.old == e.new {
				continue
			}
			if _, err := s.UpdateProjectField(ctx, msg.ID, e.field, e.new); err != nil {
				return mutationDoneMsg{err: err}
			}
		}
		return mutationDoneMsg{}
	}
}

func (m Model) deleteProject(id string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		return mutationDoneMsg{err: s.DeleteProject(context.Background(), id)}
	}
}

func (m Model) findProject(id string) model.Project {
	for _, p := range m.allProjects {
		if p.ID == id {
			return p
		}
	}
	return model.Project{}
}
