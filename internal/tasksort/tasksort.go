// Package tasksort orders the tasks table with type-aware per-column
// comparators and an ascending/descending toggle.
package tasksort

import (
	"sort"

	"github.com/hdng/taskboard/internal/model"
)

// Placeholder is displayed and sorted in place of a project name when the
// task's project reference does not resolve.
const Placeholder = "-"

// Column identifies a sortable tasks-table column.
type Column string

const (
	ColumnName     Column = "name"
	ColumnDate     Column = "date"
	ColumnProject  Column = "project"
	ColumnProgress Column = "progress"
)

// ParseColumn maps a raw column name to a Column, falling back to date.
func ParseColumn(s string) Column {
	switch c := Column(s); c {
	case ColumnName, ColumnDate, ColumnProject, ColumnProgress:
		return c
	}
	return ColumnDate
}

// Direction is the sort direction.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// State is the ephemeral sort selection for a table.
type State struct {
	Column    Column
	Direction Direction
}

// Toggle returns the state after selecting col. Reselecting the current
// column flips the direction; a new column starts descending.
func (s State) Toggle(col Column) State {
	if s.Column == col {
		if s.Direction == Descending {
			s.Direction = Ascending
		} else {
			s.Direction = Descending
		}
		return s
	}
	return State{Column: col, Direction: Descending}
}

// Apply returns tasks ordered by the state's column and direction. The sort
// is stable: equal keys keep their original relative order. The projects
// slice backs the project-name lookup column; unresolved references compare
// as the placeholder.
func Apply(tasks []model.Task, s State, projects []model.Project) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}

	less := lessFunc(s.Column, names)
	sort.SliceStable(out, func(i, j int) bool {
		if s.Direction == Ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}

// ProjectName resolves a task's project reference against the lookup table,
// substituting the placeholder when there is no match.
func ProjectName(projectID string, names map[string]string) string {
	if name, ok := names[projectID]; ok && name != "" {
		return name
	}
	return Placeholder
}

func lessFunc(col Column, names map[string]string) func(a, b model.Task) bool {
	switch col {
	case ColumnName:
		return func(a, b model.Task) bool { return a.Name < b.Name }
	case ColumnProgress:
		return func(a, b model.Task) bool { return a.Progress < b.Progress }
	case ColumnProject:
		return func(a, b model.Task) bool {
			return ProjectName(a.ProjectID, names) < ProjectName(b.ProjectID, names)
		}
	default: // ColumnDate
		return func(a, b model.Task) bool {
			return model.ParseDate(a.Date).Before(model.ParseDate(b.Date))
		}
	}
}
