package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdng/taskboard/internal/model"
)

func TestBeginRequiresRowMode(t *testing.T) {
	var c Controller

	err := c.Begin("t1", model.TaskFieldName, "Pay bills")
	assert.Error(t, err)
	assert.Nil(t, c.Editing())

	c.EnterRow("t1")
	err = c.Begin("t1", model.TaskFieldName, "Pay bills")
	assert.NoError(t, err)
	require.NotNil(t, c.Editing())
	assert.Equal(t, "t1", c.Editing().RowID)
}

func TestBeginRejectsSecondSession(t *testing.T) {
	var c Controller
	c.EnterRow("t1")
	require.NoError(t, c.Begin("t1", model.TaskFieldName, "a"))

	err := c.Begin("t1", model.TaskFieldDate, "2025-11-05")
	assert.Error(t, err)
}

func TestBlurCommitsPendingValue(t *testing.T) {
	var c Controller
	c.EnterRow("t1")
	require.NoError(t, c.Begin("t1", model.TaskFieldName, "Pay bills"))

	c.SetPending("Pay rent")
	commit, ok := c.Blur()
	require.True(t, ok)
	assert.Equal(t, Commit{RowID: "t1", Field: model.TaskFieldName, Value: "Pay rent"}, commit)

	// Back in viewing state.
	assert.Nil(t, c.Editing())
	_, ok = c.Blur()
	assert.False(t, ok)
}

func TestCancelDiscardsPending(t *testing.T) {
	var c Controller
	c.EnterRow("t1")
	require.NoError(t, c.Begin("t1", model.TaskFieldProgress, "40"))

	c.SetPending("95")
	c.Cancel()

	assert.Nil(t, c.Editing())
	_, ok := c.Blur()
	assert.False(t, ok, "cancel must not leave anything to commit")
}

func TestEnterDifferentRowDropsSession(t *testing.T) {
	var c Controller
	c.EnterRow("t1")
	require.NoError(t, c.Begin("t1", model.TaskFieldName, "a"))

	c.EnterRow("t2")
	assert.Nil(t, c.Editing())
	assert.True(t, c.InRowMode("t2"))
	assert.False(t, c.InRowMode("t1"))
}

func TestExitRowClearsEverything(t *testing.T) {
	var c Controller
	c.EnterRow("t1")
	require.NoError(t, c.Begin("t1", model.TaskFieldName, "a"))

	c.ExitRow()
	assert.False(t, c.InRowMode("t1"))
	assert.Nil(t, c.Editing())
}
