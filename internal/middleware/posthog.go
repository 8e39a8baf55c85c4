package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/meufluxo/internal/utils"
	"github.com/gin-gonic/gin"
)

// ViewEvent is the PostHog event recorded for every successful view request.
const ViewEvent = "insights_view_requested"

// filterParams are the query parameters that narrow a view.
var filterParams = []string{"search", "type", "category", "dateFrom", "dateTo"}

// PosthogMiddleware records which insight views are used and with what kind of filter.
// Only authenticated, successful requests under an API route are tracked.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		route := c.FullPath()
		if !strings.HasPrefix(route, "/api/") {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		props := map[string]any{
			"view":        viewName(route),
			"route":       route,
			"status_code": c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"filtered":    hasFilter(c),
		}
		for _, p := range c.Params {
			props[p.Key] = p.Value
		}
		for _, key := range []string{"horizonDays", "windowDays", "period"} {
			if v := c.Query(key); v != "" {
				props[key] = v
			}
		}
		posthogClient.Enqueue(userID, ViewEvent, props)
	}
}

// viewName turns "/api/v1/stats/:period" into "stats".
func viewName(route string) string {
	parts := strings.Split(strings.Trim(route, "/"), "/")
	if len(parts) < 3 {
		return route
	}
	return parts[2]
}

func hasFilter(c *gin.Context) bool {
	for _, key := range filterParams {
		if v := c.Query(key); v != "" && v != "all" {
			return true
		}
	}
	return false
}
