package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskflow/internal/model"
	"taskflow/internal/service"
)

// TaskHandler handles task and view endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CurrentProjectRequest selects a project. A null id clears the selection.
type CurrentProjectRequest struct {
	ProjectID *string `json:"project_id"`
}

// ViewModeRequest switches the board rendering.
type ViewModeRequest struct {
	ViewMode model.ViewMode `json:"view_mode" validate:"required"`
}

// ListTasks godoc
// @Summary Load all tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} model.Task
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	if err := h.taskService.FetchTasks(c.Request().Context()); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, h.taskService.State().Tasks)
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body model.TaskInput true "Task data"
// @Success 201 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req model.TaskInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.AddTask(c.Request().Context(), req)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, task)
}

// UpdateTask godoc
// @Summary Merge fields into a task
// @Tags tasks
// @Accept json
// @Param id path string true "Task ID"
// @Param request body model.TaskPatch true "Changed fields"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	var req model.TaskPatch
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), req); err != nil {
		return storeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return storeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// State godoc
// @Summary Current task store snapshot
// @Tags view
// @Produce json
// @Success 200 {object} service.TaskState
// @Router /view [get]
func (h *TaskHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.taskService.State())
}

// SetCurrentProject godoc
// @Summary Select the current project
// @Tags view
// @Accept json
// @Param request body CurrentProjectRequest true "Project selection"
// @Success 204
// @Router /view/project [put]
func (h *TaskHandler) SetCurrentProject(c echo.Context) error {
	var req CurrentProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	h.taskService.SetCurrentProject(c.Request().Context(), req.ProjectID)
	return c.NoContent(http.StatusNoContent)
}

// SetViewMode godoc
// @Summary Switch the board view mode
// @Tags view
// @Accept json
// @Param request body ViewModeRequest true "View mode"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Router /view/mode [put]
func (h *TaskHandler) SetViewMode(c echo.Context) error {
	var req ViewModeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.taskService.SetViewMode(c.Request().Context(), req.ViewMode); err != nil {
		return storeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ClearError godoc
// @Summary Reset the task store error
// @Tags view
// @Success 204
// @Router /view/error [delete]
func (h *TaskHandler) ClearError(c echo.Context) error {
	h.taskService.ClearError()
	return c.NoContent(http.StatusNoContent)
}
