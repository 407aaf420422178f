package store

import (
	"context"

	"github.com/hdng/taskboard/internal/model"
)

// TaskFilter controls filtering for task queries. Sorting for the tasks
// table happens in memory (tasksort); the store only narrows the snapshot.
type TaskFilter struct {
	// ProjectID limits tasks to one project; nil means all.
	ProjectID *string

	Limit  int
	Offset int
}

// Store is the externally-owned collection interface. Pages read snapshots
// and request mutations through these operations; the UI core never touches
// the collections directly. Each operation is atomic from a reader's
// perspective.
type Store interface {
	// === Tasks ===

	CreateTask(ctx context.Context, task model.Task) (model.Task, error)
	UpdateTaskField(ctx context.Context, id string, field model.TaskField, raw string) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	GetTaskByID(ctx context.Context, id string) (*model.Task, error)
	GetTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error)

	// === Projects ===

	CreateProject(ctx context.Context, project model.Project) (model.Project, error)
	UpdateProjectField(ctx context.Context, id string, field model.ProjectField, raw string) (model.Project, error)
	DeleteProject(ctx context.Context, id string) error
	GetProjectByID(ctx context.Context, id string) (*model.Project, error)
	GetProjects(ctx context.Context) ([]model.Project, error)
}
