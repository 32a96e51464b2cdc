package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskflow/internal/model"
	"taskflow/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	taskService service.TaskService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(taskService service.TaskService) *ProjectHandler {
	return &ProjectHandler{taskService: taskService}
}

// ListProjects godoc
// @Summary Load all projects, seeding the demo data on first run
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	if err := h.taskService.FetchProjects(c.Request().Context()); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, h.taskService.State().Projects)
}

// CreateProject godoc
// @Summary Create a project owned by the current user
// @Tags projects
// @Accept json
// @Produce json
// @Param request body model.ProjectInput true "Project data"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req model.ProjectInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.taskService.AddProject(c.Request().Context(), req)
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary Merge fields into a project
// @Tags projects
// @Accept json
// @Param id path string true "Project ID"
// @Param request body model.ProjectPatch true "Changed fields"
// @Success 204
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [patch]
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	var req model.ProjectPatch
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.taskService.UpdateProject(c.Request().Context(), c.Param("id"), req); err != nil {
		return storeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteProject godoc
// @Summary Delete a project and its tasks
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204
// @Failure 500 {object} errors.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	if err := h.taskService.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return storeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ProjectTasks godoc
// @Summary Tasks of one project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} model.Task
// @Router /projects/{id}/tasks [get]
func (h *ProjectHandler) ProjectTasks(c echo.Context) error {
	if err := h.taskService.FetchTasks(c.Request().Context()); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, h.taskService.ProjectTasks(c.Param("id")))
}
