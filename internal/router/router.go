package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"taskflow/internal/handler"
)

// Handlers groups the endpoint handlers mounted by Register.
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Task    *handler.TaskHandler
	Project *handler.ProjectHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, log logrus.FieldLogger, h Handlers) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency,
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", h.Health.Health)

	api := e.Group("/api")

	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/logout", h.Auth.Logout)
	api.PUT("/auth/password", h.Auth.UpdatePassword)
	api.GET("/auth/profile", h.Auth.Profile)
	api.GET("/auth/state", h.Auth.State)
	api.DELETE("/auth/error", h.Auth.ClearError)

	api.GET("/tasks", h.Task.ListTasks)
	api.POST("/tasks", h.Task.CreateTask)
	api.PATCH("/tasks/:id", h.Task.UpdateTask)
	api.DELETE("/tasks/:id", h.Task.DeleteTask)

	api.GET("/projects", h.Project.ListProjects)
	api.POST("/projects", h.Project.CreateProject)
	api.PATCH("/projects/:id", h.Project.UpdateProject)
	api.DELETE("/projects/:id", h.Project.DeleteProject)
	api.GET("/projects/:id/tasks", h.Project.ProjectTasks)

	api.GET("/view", h.Task.State)
	api.PUT("/view/project", h.Task.SetCurrentProject)
	api.PUT("/view/mode", h.Task.SetViewMode)
	api.DELETE("/view/error", h.Task.ClearError)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
