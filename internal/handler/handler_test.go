package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/errors"
	"taskflow/internal/handler"
	"taskflow/internal/logging"
	"taskflow/internal/mockdb"
	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/router"
	"taskflow/internal/service"
	"taskflow/internal/storage"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	log := logging.Discard()
	backend := storage.NewMemory()
	rt := service.NewRuntime(log, false)

	auth := service.NewAuthService(
		repository.NewUserRepository(backend, log),
		repository.NewSessionRepository(backend, log),
		repository.NewAuthSliceRepository(backend, log),
		service.LogNotifier{Log: log},
		rt,
	)
	tasks := service.NewTaskService(
		repository.NewTaskRepository(backend, log),
		repository.NewProjectRepository(backend, log),
		repository.NewViewSliceRepository(backend, log),
		auth,
		rt,
	)

	e := echo.New()
	router.Register(e, log, router.Handlers{
		Health:  handler.NewHealthHandler("memory", mockdb.New(log)),
		Auth:    handler.NewAuthHandler(auth),
		Task:    handler.NewTaskHandler(tasks),
		Project: handler.NewProjectHandler(tasks),
	})
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, handler.HealthResponse{Status: "ok", Storage: "memory", Database: "disabled"},
		decode[handler.HealthResponse](t, rec))
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "created",
			body:           `{"email":"new@test.com","password":"secret1"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "weak password",
			body:           `{"email":"new@test.com","password":"123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "WEAK_PASSWORD",
		},
		{
			name:           "missing email",
			body:           `{"password":"secret1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "EMAIL_REQUIRED",
		},
		{
			name:           "malformed body",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newServer(t)
			rec := do(e, http.MethodPost, "/api/auth/signup", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decode[errors.ErrorResponse](t, rec).Code)
				return
			}
			state := decode[service.AuthState](t, rec)
			require.NotNil(t, state.User)
			assert.Equal(t, "new@test.com", state.User.Email)
			assert.False(t, state.IsLoading)
		})
	}
}

func TestAuthHandler_SessionFlow(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/auth/signup", `{"email":"flow@test.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(e, http.MethodPost, "/api/auth/signup", `{"email":"FLOW@test.com","password":"other12"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_ACCOUNT", decode[errors.ErrorResponse](t, rec).Code)

	rec = do(e, http.MethodGet, "/api/auth/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[service.AuthState](t, rec)
	require.NotNil(t, state.Error)
	assert.Equal(t, "DUPLICATE_ACCOUNT", state.Error.Code)

	rec = do(e, http.MethodDelete, "/api/auth/error", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, decode[service.AuthState](t, do(e, http.MethodGet, "/api/auth/state", "")).Error)

	rec = do(e, http.MethodPut, "/api/auth/password", `{"current_password":"nope","new_password":"next123"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Current password is incorrect", decode[errors.ErrorResponse](t, rec).Error)

	rec = do(e, http.MethodPut, "/api/auth/password", `{"current_password":"secret1","new_password":"next123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.PasswordUpdatedMessage, decode[handler.MessageResponse](t, rec).Message)

	rec = do(e, http.MethodGet, "/api/auth/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "flow", decode[model.Profile](t, rec).Name)

	rec = do(e, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPost, "/api/auth/login", `{"email":"flow@test.com","password":"secret1"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[errors.ErrorResponse](t, rec).Code)

	rec = do(e, http.MethodPost, "/api/auth/login", `{"email":"flow@test.com","password":"next123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "flow@test.com", decode[service.AuthState](t, rec).User.Email)
}

func TestProjectHandler_BootstrapAndCascade(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodGet, "/api/projects", "")
	require.Equal(t, http.StatusOK, rec.Code)
	projects := decode[[]model.Project](t, rec)
	require.Len(t, projects, 2)

	rec = do(e, http.MethodGet, "/api/projects/project_1/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Task](t, rec), 3)

	rec = do(e, http.MethodDelete, "/api/projects/project_1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decode[[]model.Task](t, rec)
	require.Len(t, tasks, 1)
	assert.Equal(t, "project_2", tasks[0].ProjectID)

	state := decode[service.TaskState](t, do(e, http.MethodGet, "/api/view", ""))
	require.NotNil(t, state.CurrentProject)
	assert.Equal(t, "project_2", *state.CurrentProject)
}

func TestProjectHandler_CreateAndUpdate(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/projects", `{"description":"missing title"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[errors.ErrorResponse](t, rec).Code)

	rec = do(e, http.MethodPost, "/api/projects", `{"title":"Docs","color":"#f59e0b"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	project := decode[model.Project](t, rec)
	assert.Equal(t, service.DefaultUserID, project.OwnerID)
	assert.Equal(t, model.ProjectStatusActive, project.Status)

	rec = do(e, http.MethodPatch, "/api/projects/"+project.ID, `{"title":"Handbook"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	state := decode[service.TaskState](t, do(e, http.MethodGet, "/api/view", ""))
	require.Len(t, state.Projects, 1)
	assert.Equal(t, "Handbook", state.Projects[0].Title)
}

func TestTaskHandler_CRUD(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPost, "/api/tasks", `{"title":"Write docs","project_id":"project_1","progress":1.5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[errors.ErrorResponse](t, rec).Code)

	rec = do(e, http.MethodPost, "/api/tasks", `{"title":"Write docs","project_id":"project_1","status":"archived"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STATUS", decode[errors.ErrorResponse](t, rec).Code)

	rec = do(e, http.MethodPost, "/api/tasks", `{"title":"Write docs","project_id":"project_1","due_date":"2024-06-10T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decode[model.Task](t, rec)
	assert.Equal(t, model.TaskStatusTodo, task.Status)
	assert.Equal(t, model.TaskPriorityMedium, task.Priority)
	assert.Equal(t, service.DefaultUserID, task.CreatedBy)
	require.NotNil(t, task.DueDate)

	rec = do(e, http.MethodPatch, "/api/tasks/"+task.ID, `{"status":"done","clear_due_date":true}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodPatch, "/api/tasks/unknown", `{"status":"done"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	tasks := decode[[]model.Task](t, do(e, http.MethodGet, "/api/tasks", ""))
	require.Len(t, tasks, 1)
	assert.Equal(t, model.TaskStatusDone, tasks[0].Status)
	assert.Nil(t, tasks[0].DueDate)

	rec = do(e, http.MethodDelete, "/api/tasks/"+task.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, decode[[]model.Task](t, do(e, http.MethodGet, "/api/tasks", "")))
}

func TestTaskHandler_View(t *testing.T) {
	e := newServer(t)

	rec := do(e, http.MethodPut, "/api/view/mode", `{"view_mode":"gantt"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodPut, "/api/view/mode", `{"view_mode":"table"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_VIEW_MODE", decode[errors.ErrorResponse](t, rec).Code)

	rec = do(e, http.MethodPut, "/api/view/project", `{"project_id":"project_2"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	state := decode[service.TaskState](t, do(e, http.MethodGet, "/api/view", ""))
	assert.Equal(t, model.ViewGantt, state.ViewMode)
	require.NotNil(t, state.CurrentProject)
	assert.Equal(t, "project_2", *state.CurrentProject)
	require.NotNil(t, state.Error)

	rec = do(e, http.MethodDelete, "/api/view/error", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodPut, "/api/view/project", `{"project_id":null}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	state = decode[service.TaskState](t, do(e, http.MethodGet, "/api/view", ""))
	assert.Nil(t, state.CurrentProject)
	assert.Nil(t, state.Error)
}
