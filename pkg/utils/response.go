package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard error response format
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response format
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationErrorResponse represents a validation error with field-specific details
type ValidationErrorResponse struct {
	Error  string                 `json:"error"`
	Fields map[string]interface{} `json:"fields,omitempty"`
}

// ErrorJSON sends a JSON error response with the specified HTTP status code
func ErrorJSON(ctx *gin.Context, statusCode int, err error) {
	ctx.JSON(statusCode, ErrorResponse{Error: err.Error()})
}

// ValidationErrorJSON sends a validation error response with field details
func ValidationErrorJSON(ctx *gin.Context, message string, fields map[string]interface{}) {
	ctx.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  message,
		Fields: fields,
	})
}

// SuccessJSON sends a JSON success response with optional data
func SuccessJSON(ctx *gin.Context, statusCode int, message string, data interface{}) {
	ctx.JSON(statusCode, SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// UnauthorizedJSON sends an unauthorized error response
func UnauthorizedJSON(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized access"})
}

// ForbiddenJSON sends a forbidden error response
func ForbiddenJSON(ctx *gin.Context) {
	ctx.JSON(http.StatusForbidden, ErrorResponse{Error: "Access forbidden"})
}

// NotFoundJSON sends a not found error response
func NotFoundJSON(ctx *gin.Context, resource string) {
	ctx.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// BadRequestJSON sends a bad request error response
func BadRequestJSON(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// InternalErrorJSON sends an internal server error response
func InternalErrorJSON(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}
