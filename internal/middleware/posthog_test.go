package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestViewName(t *testing.T) {
	assert.Equal(t, "stats", viewName("/api/v1/stats/:period"))
	assert.Equal(t, "dashboard", viewName("/api/v1/dashboard"))
	assert.Equal(t, "/health", viewName("/health"))
}

func TestHasFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"?type=all&category=all", false},
		{"?horizonDays=10", false},
		{"?search=uber", true},
		{"?dateFrom=2025-03-01", true},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/v1/timeline"+tt.query, nil)
		assert.Equal(t, tt.want, hasFilter(c), tt.query)
	}
}

func TestPosthogMiddleware_Uninitialized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PosthogMiddleware(nil))
	r.GET("/api/v1/dashboard", func(c *gin.Context) { c.Status(204) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/dashboard", nil))

	assert.Equal(t, 204, w.Code)
}
