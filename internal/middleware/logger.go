package middleware

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorLogger recovers panics and logs failed requests. Responses with a
// 5xx status are additionally appended to errorLog when one is configured,
// so server faults survive process restarts.
func ErrorLogger(errorLog io.Writer) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(c, errorLog, start, "panic", err.Error())
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   err.Error(),
					"message": "Internal server error",
				})
				c.Abort()
				return
			}

			if c.Writer.Status() < http.StatusInternalServerError {
				return
			}

			message := fmt.Sprintf("status=%d", c.Writer.Status())
			if len(c.Errors) > 0 {
				message = c.Errors.Last().Error()
			}
			logRequestError(c, errorLog, start, "http_error", message)
		}()

		c.Next()
	}
}

func logRequestError(c *gin.Context, errorLog io.Writer, start time.Time, errType, message string) {
	line := fmt.Sprintf(
		"request_error type=%s status=%d method=%s path=%s query=%s client_ip=%s latency=%s error=%q",
		errType,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.Request.URL.RawQuery,
		c.ClientIP(),
		time.Since(start),
		message,
	)
	log.Print(line)
	if errorLog != nil {
		fmt.Fprintf(errorLog, "%s %s\n", time.Now().Format(time.RFC3339), line)
	}
}
