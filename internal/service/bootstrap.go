package service

import (
	"time"

	"taskflow/internal/model"
)

const day = 24 * time.Hour

// bootstrapData builds the demo projects and tasks seeded into an empty
// store, owned by userID.
func bootstrapData(userID string, now time.Time) ([]model.Project, []model.Task) {
	owner := []model.Member{{ID: userID, Name: "You", Role: model.RoleOwner}}
	project := func(id, title, description, color string) model.Project {
		return model.Project{
			ID:          id,
			Title:       title,
			Description: description,
			Color:       color,
			Status:      model.ProjectStatusActive,
			OwnerID:     userID,
			CreatedAt:   now,
			UpdatedAt:   now,
			Tasks:       []model.Task{},
			Members:     append([]model.Member(nil), owner...),
		}
	}

	task := func(id, projectID, title, description string, status model.TaskStatus,
		priority model.TaskPriority, due time.Duration, progress float64, tags ...string) model.Task {
		dueDate := now.Add(due)
		assigneeID := userID
		return model.Task{
			ID:          id,
			Title:       title,
			Description: description,
			Status:      status,
			Priority:    priority,
			DueDate:     &dueDate,
			AssigneeID:  &assigneeID,
			ProjectID:   projectID,
			Progress:    progress,
			CreatedBy:   userID,
			CreatedAt:   now,
			UpdatedAt:   now,
			Subtasks:    []model.Subtask{},
			Tags:        tags,
			Assignee:    &model.Assignee{ID: userID, Name: "You"},
		}
	}

	projects := []model.Project{
		project("project_1", "TaskFlow Web Application",
			"Main web application for task and project management", "#3b82f6"),
		project("project_2", "Mobile App Development",
			"Cross-platform mobile application development", "#10b981"),
	}

	design := task("task_1", "project_1", "Design Homepage Layout",
		"Create wireframes and mockups for the new homepage design",
		model.TaskStatusInProgress, model.TaskPriorityHigh, 7*day, 0.6, "design", "frontend")
	design.Subtasks = []model.Subtask{
		{ID: "subtask_1", TaskID: "task_1", Title: "Create wireframes", Completed: true, CreatedAt: now, UpdatedAt: now},
		{ID: "subtask_2", TaskID: "task_1", Title: "Design mockups", CreatedAt: now, UpdatedAt: now},
	}

	tasks := []model.Task{
		design,
		task("task_2", "project_1", "Implement User Authentication",
			"Set up user registration, login, and session management",
			model.TaskStatusTodo, model.TaskPriorityHigh, 14*day, 0, "backend", "security"),
		task("task_3", "project_1", "Database Schema Design",
			"Design and implement the database schema for the application",
			model.TaskStatusDone, model.TaskPriorityMedium, -3*day, 1, "database", "backend"),
		task("task_4", "project_2", "Mobile App Testing",
			"Conduct comprehensive testing on mobile devices",
			model.TaskStatusInProgress, model.TaskPriorityMedium, 10*day, 0.3, "testing", "mobile"),
	}
	return projects, tasks
}
