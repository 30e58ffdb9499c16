package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestErrorLoggerWrites5xxToSink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var sink bytes.Buffer

	r := gin.New()
	r.Use(ErrorLogger(&sink))
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("store unreachable"))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	require.Contains(t, sink.String(), "request_error")
	require.Contains(t, sink.String(), "store unreachable")

	sink.Reset()
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	require.Empty(t, sink.String())
}

func TestErrorLoggerRecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var sink bytes.Buffer

	r := gin.New()
	r.Use(ErrorLogger(&sink))
	r.GET("/panic", func(c *gin.Context) {
		panic("lost the plot")
	})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	require.Contains(t, resp.Body.String(), "Internal server error")
	require.Contains(t, sink.String(), "lost the plot")
}
