package errors

import (
	"errors"
	"net/http"
)

// Kind classifies a store failure.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindStorage    Kind = "storage"
	KindInternal   Kind = "internal"
)

// Error is a tagged store error. Message is the display text.
type Error struct {
	Kind    Kind   `json:"kind"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by code, so wrapped copies of a sentinel compare equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

var (
	// ErrEmailRequired is returned when the email is blank.
	ErrEmailRequired = &Error{Kind: KindValidation, Code: "EMAIL_REQUIRED", Field: "email", Message: "Email is required"}
	// ErrPasswordRequired is returned when the password is empty.
	ErrPasswordRequired = &Error{Kind: KindValidation, Code: "PASSWORD_REQUIRED", Field: "password", Message: "Password is required"}
	// ErrInvalidEmail is returned when the email is malformed.
	ErrInvalidEmail = &Error{Kind: KindValidation, Code: "INVALID_EMAIL", Field: "email", Message: "Please enter a valid email address"}
	// ErrWeakPassword is returned when a new password is too short.
	ErrWeakPassword = &Error{Kind: KindValidation, Code: "WEAK_PASSWORD", Field: "password", Message: "Password must be at least 6 characters"}
	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = &Error{Kind: KindAuth, Code: "INVALID_CREDENTIALS", Message: "Invalid email or password. Please check your credentials."}
	// ErrDuplicateAccount is returned when signing up with a registered email.
	ErrDuplicateAccount = &Error{Kind: KindConflict, Code: "DUPLICATE_ACCOUNT", Field: "email", Message: "An account with this email already exists. Please sign in instead."}
	// ErrNotAuthenticated is returned when an action needs a session.
	ErrNotAuthenticated = &Error{Kind: KindAuth, Code: "NOT_AUTHENTICATED", Message: "Not authenticated"}
	// ErrWrongPassword is returned when the current password does not match.
	ErrWrongPassword = &Error{Kind: KindAuth, Code: "WRONG_PASSWORD", Field: "current_password", Message: "Current password is incorrect"}
	// ErrUserNotFound is returned when the session user left the registry.
	ErrUserNotFound = &Error{Kind: KindNotFound, Code: "USER_NOT_FOUND", Message: "Failed to update password"}
	// ErrInvalidViewMode is returned for an unknown view mode.
	ErrInvalidViewMode = &Error{Kind: KindValidation, Code: "INVALID_VIEW_MODE", Field: "view_mode", Message: "Unknown view mode"}
	// ErrInvalidStatus is returned for an unknown task status.
	ErrInvalidStatus = &Error{Kind: KindValidation, Code: "INVALID_STATUS", Field: "status", Message: "Unknown task status"}
	// ErrInvalidPriority is returned for an unknown task priority.
	ErrInvalidPriority = &Error{Kind: KindValidation, Code: "INVALID_PRIORITY", Field: "priority", Message: "Unknown task priority"}
)

// Storage wraps a persistence failure with the action's display message.
func Storage(code, message string, err error) *Error {
	return &Error{Kind: KindStorage, Code: code, Message: message, Err: err}
}

// As returns err as *Error. Unknown errors become KindInternal with the
// given fallback message.
func As(err error, fallback string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindInternal, Code: "INTERNAL_ERROR", Message: fallback, Err: err}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Field      string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
		Field: e.Field,
	}
}

// MapErrorToHTTP maps store errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}

	var status int
	switch e.Kind {
	case KindValidation:
		status = http.StatusBadRequest
	case KindAuth:
		status = http.StatusUnauthorized
	case KindConflict:
		status = http.StatusConflict
	case KindNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}
	httpErr := NewHTTPError(status, e.Message, e.Code)
	httpErr.Field = e.Field
	return httpErr
}
