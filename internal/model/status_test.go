package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForProgress(t *testing.T) {
	assert.Equal(t, ProgressTodo, StatusForProgress(0))
	assert.Equal(t, ProgressOngoing, StatusForProgress(1))
	assert.Equal(t, ProgressOngoing, StatusForProgress(50))
	assert.Equal(t, ProgressOngoing, StatusForProgress(99))
	assert.Equal(t, ProgressComplete, StatusForProgress(100))
	assert.Equal(t, ProgressComplete, StatusForProgress(150))
	assert.Equal(t, ProgressTodo, StatusForProgress(-5))
}

func TestTaskFieldApply(t *testing.T) {
	task := Task{Name: "old", Progress: 40}

	err := TaskFieldName.Apply(&task, "  Pay bills  ")
	assert.NoError(t, err)
	assert.Equal(t, "Pay bills", task.Name)

	err = TaskFieldProgress.Apply(&task, "75")
	assert.NoError(t, err)
	assert.Equal(t, 75, task.Progress)
}

func TestTaskFieldProgressCoercion(t *testing.T) {
	// Empty and non-numeric input coerce to zero.
	for _, raw := range []string{"", "abc", "  "} {
		task := Task{Progress: 40}
		err := TaskFieldProgress.Apply(&task, raw)
		assert.NoError(t, err)
		assert.Equal(t, 0, task.Progress, "input %q", raw)
	}

	// Out-of-range values clamp.
	task := Task{}
	assert.NoError(t, TaskFieldProgress.Apply(&task, "250"))
	assert.Equal(t, 100, task.Progress)
	assert.NoError(t, TaskFieldProgress.Apply(&task, "-10"))
	assert.Equal(t, 0, task.Progress)
}

func TestParseTaskField(t *testing.T) {
	f, err := ParseTaskField("progress")
	assert.NoError(t, err)
	assert.Equal(t, TaskFieldProgress, f)

	_, err = ParseTaskField("owner")
	assert.Error(t, err)
}

func TestProjectFieldStatusRejectsInvalid(t *testing.T) {
	p := Project{Status: ProjectStatusInProgress}

	err := ProjectFieldStatus.Apply(&p, "paused")
	assert.Error(t, err)
	assert.Equal(t, ProjectStatusInProgress, p.Status)

	err = ProjectFieldStatus.Apply(&p, ProjectStatusComplete)
	assert.NoError(t, err)
	assert.Equal(t, ProjectStatusComplete, p.Status)
}
