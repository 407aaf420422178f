package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/store"
	"github.com/hdng/taskboard/tests/testutil"
)

func TestCreateAndGetTask(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTask(ctx, model.Task{
		Name:     "Pay bills",
		Date:     "2025-11-05",
		Progress: 40,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.GetTaskByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pay bills", got.Name)
	assert.Equal(t, "2025-11-05", got.Date)
	assert.Equal(t, 40, got.Progress)
}

func TestCreateTaskRejectsEmptyName(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.CreateTask(context.Background(), model.Task{Name: "   "})
	assert.Error(t, err)
}

func TestUpdateTaskField(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTask(ctx, model.Task{Name: "Draft report", Progress: 10})
	require.NoError(t, err)

	updated, err := s.UpdateTaskField(ctx, created.ID, model.TaskFieldProgress, "80")
	require.NoError(t, err)
	assert.Equal(t, 80, updated.Progress)

	got, err := s.GetTaskByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, got.Progress)
}

func TestUpdateTaskFieldCoercesInvalidProgress(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTask(ctx, model.Task{Name: "Draft report", Progress: 60})
	require.NoError(t, err)

	updated, err := s.UpdateTaskField(ctx, created.ID, model.TaskFieldProgress, "not a number")
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Progress)
}

func TestUpdateTaskFieldNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.UpdateTaskField(context.Background(), "missing", model.TaskFieldName, "x")
	assert.Error(t, err)
}

func TestDeleteTask(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.CreateTask(ctx, model.Task{Name: "Temp"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(ctx, created.ID))

	_, err = s.GetTaskByID(ctx, created.ID)
	assert.Error(t, err)

	assert.Error(t, s.DeleteTask(ctx, created.ID))
}

func TestGetTasksByProject(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	p, err := s.CreateProject(ctx, model.Project{Name: "Website"})
	require.NoError(t, err)

	_, err = s.CreateTask(ctx, model.Task{Name: "Design", ProjectID: p.ID})
	require.NoError(t, err)
	_, err = s.CreateTask(ctx, model.Task{Name: "Unrelated"})
	require.NoError(t, err)

	tasks, err := s.GetTasks(ctx, store.TaskFilter{ProjectID: &p.ID})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Design", tasks[0].Name)

	all, err := s.GetTasks(ctx, store.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
