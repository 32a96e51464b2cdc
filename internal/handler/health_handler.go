package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskflow/internal/mockdb"
)

// HealthHandler reports liveness and which persistence paths are active.
type HealthHandler struct {
	storageDriver string
	db            *mockdb.Client
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(storageDriver string, db *mockdb.Client) *HealthHandler {
	return &HealthHandler{storageDriver: storageDriver, db: db}
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Storage  string `json:"storage"`
	Database string `json:"database"`
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c echo.Context) error {
	database := "connected"
	if _, err := h.db.Auth.GetSession(); err != nil {
		database = "disabled"
	}
	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Storage:  h.storageDriver,
		Database: database,
	})
}
