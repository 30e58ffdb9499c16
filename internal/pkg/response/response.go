package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes the standard envelope with a null error. Data is omitted
// when nil so message-only responses stay flat.
func Success(c *gin.Context, statusCode int, message string, data any) {
	body := gin.H{
		"success": true,
		"error":   nil,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(statusCode, body)
}

// Error writes the envelope with a machine-readable error code.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   code,
		"message": message,
	})
}

// Internal surfaces an unexpected fault as a 500 with the fault message in
// the error field, and records it on the context for the error logger.
func Internal(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
		"message": "Internal server error",
	})
}
