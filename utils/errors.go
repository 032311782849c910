package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError is the single error shape domain rules raise. It carries a stable
// machine-readable code alongside the human message and the HTTP status the
// boundary maps it to. Services return these unchanged; only handlers look at
// the Status field.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NotFoundError reports an absent entity.
func NotFoundError(code, message string) *APIError {
	return &APIError{Code: code, Message: message, Status: http.StatusNotFound}
}

// ForbiddenError reports an authenticated caller lacking the right to act.
func ForbiddenError(code, message string) *APIError {
	return &APIError{Code: code, Message: message, Status: http.StatusForbidden}
}

// ValidationError reports malformed input.
func ValidationError(code, message string) *APIError {
	return &APIError{Code: code, Message: message, Status: http.StatusBadRequest}
}

// ConflictError reports a violated state precondition.
func ConflictError(code, message string) *APIError {
	return &APIError{Code: code, Message: message, Status: http.StatusConflict}
}

// ErrorResponse defines the structure of error responses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Code:    "INTERNAL_ERROR",
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RespondError maps a service error to the proper HTTP response. APIErrors
// keep their code and status; anything else becomes an opaque 500.
func RespondError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, ErrorResponse{Code: apiErr.Code, Message: apiErr.Message})
		return
	}
	GetLogger().Error("Unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    "INTERNAL_ERROR",
		Message: "Internal Server Error",
	})
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, code, message string) {
	GetLogger().Warn(message, zap.String("code", code))
	c.JSON(status, ErrorResponse{Code: code, Message: message})
}
