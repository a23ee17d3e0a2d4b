// Package api defines the response types shared by every HTTP handler.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body returned for every rejected request, so clients
// can branch on statusCode uniformly regardless of the error kind.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// NewErrorResponse builds the standard error body for the current request.
func NewErrorResponse(c *gin.Context, status int, message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: status,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       c.Request.URL.Path,
		Method:     c.Request.Method,
		Message:    message,
		Error:      http.StatusText(status),
	}
}

// Error writes the standard error body with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, NewErrorResponse(c, status, message))
}

// AbortWithError writes the standard error body and aborts the handler chain.
// Middleware uses this so no downstream handler runs after a rejection.
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, NewErrorResponse(c, status, message))
}
