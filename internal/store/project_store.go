package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hdng/taskboard/internal/model"
)

// CreateProject inserts a new project. Generates a UUID if ID is empty and
// returns the stored project.
func (s *SQLiteStore) CreateProject(
	ctx context.Context,
	project model.Project,
) (model.Project, error) {
	if strings.TrimSpace(project.Name) == "" {
		return model.Project{}, fmt.Errorf("project name must not be empty")
	}
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if project.Status == "" {
		project.Status = model.ProjectStatusNotStarted
	}
	if !model.ValidProjectStatus(project.Status) {
		return model.Project{}, fmt.Errorf("invalid project status %q", project.Status)
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, due, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		project.ID, project.Name, project.Due, project.Status,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return model.Project{}, fmt.Errorf("creating project: %w", err)
	}
	return project, nil
}

// UpdateProjectField applies a single-field edit. An invalid status value
// rejects the edit and keeps the previous value.
func (s *SQLiteStore) UpdateProjectField(
	ctx context.Context,
	id string,
	field model.ProjectField,
	raw string,
) (model.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return model.Project{}, err
	}

	if err := field.Apply(project, raw); err != nil {
		return model.Project{}, fmt.Errorf("decoding %s for project %s: %w", field, id, err)
	}
	project.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE projects SET name = ?, due = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		project.Name, project.Due, project.Status, project.UpdatedAt,
		project.ID,
	)
	if err != nil {
		return model.Project{}, fmt.Errorf("updating project %s: %w", id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return model.Project{}, fmt.Errorf("project %s not found", id)
	}
	return *project, nil
}

// DeleteProject removes a project by ID. Tasks referencing it keep their
// project_id; the dangling reference renders as a placeholder.
func (s *SQLiteStore) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("project %s not found", id)
	}
	return nil
}

// GetProjectByID retrieves a single project by ID.
func (s *SQLiteStore) GetProjectByID(
	ctx context.Context,
	id string,
) (*model.Project, error) {
	var project model.Project
	err := s.db.GetContext(ctx, &project, "SELECT * FROM projects WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("getting project %s: %w", id, err)
	}
	return &project, nil
}

// GetProjects retrieves all projects ordered by name.
func (s *SQLiteStore) GetProjects(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := s.db.SelectContext(ctx, &projects, "SELECT * FROM projects ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	return projects, nil
}
