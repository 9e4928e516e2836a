package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fairpay/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// StatusForError maps ledger errors onto HTTP status codes
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, models.ErrInvalidEntryType),
		errors.Is(err, models.ErrMissingField),
		errors.Is(err, models.ErrUnknownCollection):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidFairCode):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrAlreadyClaimed),
		errors.Is(err, models.ErrNotAvailable):
		return http.StatusConflict
	case errors.Is(err, models.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// DomainErrorResponse sends err with the status StatusForError picks.
// Unknown errors are reported without their internal detail.
func DomainErrorResponse(c echo.Context, err error) error {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		return ErrorResponseHandler(c, status, "Internal server error")
	}
	return ErrorResponseHandler(c, status, err.Error())
}
