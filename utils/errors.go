package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiError is an error carrying an HTTP status and a machine-readable code.
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
}

// Error implements the error interface.
func (e *ApiError) Error() string {
	return e.Message
}

// NewApiError creates an ApiError.
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateNotFoundError builds a 404 for a missing resource.
func CreateNotFoundError(resource string) *ApiError {
	return NewApiError(resource+" not found", http.StatusNotFound, "RESOURCE_NOT_FOUND")
}

// CreateUnauthorizedError builds a 401.
func CreateUnauthorizedError() *ApiError {
	return NewApiError("unauthorized access", http.StatusUnauthorized, "UNAUTHORIZED")
}

// CreateForbiddenError builds a 403.
func CreateForbiddenError() *ApiError {
	return NewApiError("insufficient permissions", http.StatusForbidden, "FORBIDDEN")
}

// CreateBadRequestError builds a 400.
func CreateBadRequestError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "BAD_REQUEST")
}

// HandleError logs the error and writes the matching JSON response.
func HandleError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	errorMessage := err.Error()
	Logger.Error().
		Str("path", c.Request.URL.Path).
		Str("method", c.Request.Method).
		Msg("api error: " + errorMessage)

	if apiErr, ok := err.(*ApiError); ok {
		response := gin.H{"error": apiErr.Message}
		if apiErr.ErrorCode != "" {
			response["code"] = apiErr.ErrorCode
		}
		c.JSON(apiErr.StatusCode, response)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   errorMessage,
		"success": false,
	})
}

// SuccessResponse writes a standard success envelope.
func SuccessResponse(c *gin.Context, data interface{}, message string, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := gin.H{"success": true}
	if data != nil {
		response["data"] = data
	}
	if message != "" {
		response["message"] = message
	}

	c.JSON(code, response)
}

// ErrorResponse writes a standard error envelope.
func ErrorResponse(c *gin.Context, message string, statusCode int) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
