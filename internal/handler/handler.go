package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskflow/internal/errors"
)

// MessageResponse is a plain acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

// bindAndValidate decodes the request body into req and runs the struct
// validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return nil
}

func storeError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
