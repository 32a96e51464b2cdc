package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskflow/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest is the body of login and signup. Field checks are left
// to the auth store so its messages reach the caller unchanged.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePasswordRequest is the body of a password change.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} service.AuthState
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authService.Login(c.Request().Context(), req.Email, req.Password); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, h.authService.State())
}

// Signup godoc
// @Summary Register a local account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 201 {object} service.AuthState
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authService.Signup(c.Request().Context(), req.Email, req.Password); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, h.authService.State())
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
}

// UpdatePassword godoc
// @Summary Change the password of the signed in user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body UpdatePasswordRequest true "Passwords"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/password [put]
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authService.UpdatePassword(c.Request().Context(), req.CurrentPassword, req.NewPassword); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: service.PasswordUpdatedMessage})
}

// Profile godoc
// @Summary Refresh and return the profile of the signed in user
// @Tags auth
// @Produce json
// @Success 200 {object} model.Profile
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	h.authService.FetchProfile(c.Request().Context())
	return c.JSON(http.StatusOK, h.authService.CurrentProfile())
}

// State godoc
// @Summary Current auth store snapshot
// @Tags auth
// @Produce json
// @Success 200 {object} service.AuthState
// @Router /auth/state [get]
func (h *AuthHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.authService.State())
}

// ClearError godoc
// @Summary Reset the auth store error
// @Tags auth
// @Success 204
// @Router /auth/error [delete]
func (h *AuthHandler) ClearError(c echo.Context) error {
	h.authService.ClearError()
	return c.NoContent(http.StatusNoContent)
}
