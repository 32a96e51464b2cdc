package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskPatch_Apply(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)
	due := created.Add(48 * time.Hour)
	assignee := "user_1"

	task := Task{
		ID:         "t1",
		Title:      "Old",
		Status:     TaskStatusTodo,
		Priority:   TaskPriorityLow,
		DueDate:    &due,
		AssigneeID: &assignee,
		Assignee:   &Assignee{ID: assignee, Name: "You"},
		Progress:   0.2,
		CreatedAt:  created,
		UpdatedAt:  created,
		Tags:       []string{},
	}

	title := "New"
	status := TaskStatusDone
	progress := 1.0
	tags := []string{"backend"}
	TaskPatch{
		Title:         &title,
		Status:        &status,
		Progress:      &progress,
		Tags:          &tags,
		ClearDueDate:  true,
		ClearAssignee: true,
	}.Apply(&task, now)

	assert.Equal(t, "New", task.Title)
	assert.Equal(t, TaskStatusDone, task.Status)
	assert.Equal(t, TaskPriorityLow, task.Priority)
	assert.Equal(t, 1.0, task.Progress)
	assert.Equal(t, []string{"backend"}, task.Tags)
	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.AssigneeID)
	assert.Nil(t, task.Assignee)
	assert.Equal(t, created, task.CreatedAt)
	assert.Equal(t, now, task.UpdatedAt)
}

func TestProjectPatch_Apply(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	project := Project{ID: "p1", Title: "Old", Color: "#fff", Status: ProjectStatusActive}

	color := "#000"
	ProjectPatch{Color: &color}.Apply(&project, now)

	assert.Equal(t, "Old", project.Title)
	assert.Equal(t, "#000", project.Color)
	assert.Equal(t, now, project.UpdatedAt)
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, TaskStatusBlocked.Valid())
	assert.False(t, TaskStatus("archived").Valid())
	assert.True(t, TaskPriorityCritical.Valid())
	assert.False(t, TaskPriority("urgent").Valid())
	assert.True(t, ViewGantt.Valid())
	assert.False(t, ViewMode("table").Valid())
	assert.False(t, ViewMode("").Valid())
}
