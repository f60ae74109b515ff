package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the error envelope every endpoint returns.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Error: "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response. Details are logged
// server-side; only pass client-safe values through.
func JSONError(c *gin.Context, status int, message string, details any) {
	Logger := GetLogger()
	Logger.Warn(message, zap.Int("status", status), zap.Any("details", details))
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}
