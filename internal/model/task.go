package model

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone, TaskStatusBlocked:
		return true
	}
	return false
}

// TaskPriority ranks tasks.
type TaskPriority string

const (
	TaskPriorityLow      TaskPriority = "low"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityCritical TaskPriority = "critical"
)

// Valid reports whether p is a known priority.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityCritical:
		return true
	}
	return false
}

// Subtask is a checklist item embedded in a task.
type Subtask struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Assignee is the denormalized identity of the assigned user.
type Assignee struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Task is a unit of work inside a project.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	AssigneeID  *string      `json:"assignee_id,omitempty"`
	ProjectID   string       `json:"project_id"`
	Progress    float64      `json:"progress"` // fraction in [0,1], not clamped
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Subtasks    []Subtask    `json:"subtasks"`
	Tags        []string     `json:"tags"`
	Assignee    *Assignee    `json:"assignee,omitempty"`
}

// TaskInput carries the caller supplied fields of a new task.
type TaskInput struct {
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	AssigneeID  *string      `json:"assignee_id,omitempty"`
	ProjectID   string       `json:"project_id" validate:"required"`
	Progress    float64      `json:"progress" validate:"gte=0,lte=1"`
	CreatedBy   string       `json:"created_by"`
}

// TaskPatch is a partial task update. Nil fields are left unchanged; the
// Clear flags reset the optional fields to absent.
type TaskPatch struct {
	Title          *string       `json:"title,omitempty"`
	Description    *string       `json:"description,omitempty"`
	Status         *TaskStatus   `json:"status,omitempty"`
	Priority       *TaskPriority `json:"priority,omitempty"`
	StartDate      *time.Time    `json:"start_date,omitempty"`
	DueDate        *time.Time    `json:"due_date,omitempty"`
	AssigneeID     *string       `json:"assignee_id,omitempty"`
	ProjectID      *string       `json:"project_id,omitempty"`
	Progress       *float64      `json:"progress,omitempty"`
	Subtasks       *[]Subtask    `json:"subtasks,omitempty"`
	Tags           *[]string     `json:"tags,omitempty"`
	ClearStartDate bool          `json:"clear_start_date,omitempty"`
	ClearDueDate   bool          `json:"clear_due_date,omitempty"`
	ClearAssignee  bool          `json:"clear_assignee,omitempty"`
}

// Apply merges p into task and refreshes UpdatedAt.
func (p TaskPatch) Apply(task *Task, now time.Time) {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.StartDate != nil {
		task.StartDate = p.StartDate
	}
	if p.DueDate != nil {
		task.DueDate = p.DueDate
	}
	if p.AssigneeID != nil {
		task.AssigneeID = p.AssigneeID
	}
	if p.ProjectID != nil {
		task.ProjectID = *p.ProjectID
	}
	if p.Progress != nil {
		task.Progress = *p.Progress
	}
	if p.Subtasks != nil {
		task.Subtasks = *p.Subtasks
	}
	if p.Tags != nil {
		task.Tags = *p.Tags
	}
	if p.ClearStartDate {
		task.StartDate = nil
	}
	if p.ClearDueDate {
		task.DueDate = nil
	}
	if p.ClearAssignee {
		task.AssigneeID = nil
		task.Assignee = nil
	}
	task.UpdatedAt = now
}
