package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/firm_enquiries_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// domainEvents names the requests product analytics cares about, keyed by
// method and route template.
var domainEvents = map[string]string{
	"POST /api/v1/enquiries":                  "enquiry_created",
	"PATCH /api/v1/enquiries/:enquiryID":      "enquiry_updated",
	"PUT /api/v1/enquiries/:enquiryID":        "enquiry_updated",
	"POST /api/v1/payments":                   "payment_created",
	"PATCH /api/v1/payments/:paymentID":       "payment_updated",
	"PUT /api/v1/payments/:paymentID":         "payment_updated",
	"GET /api/v1/analytics/kpi-metrics":       "kpi_metrics_viewed",
	"GET /api/v1/analytics/pipeline-forecast": "pipeline_forecast_viewed",
}

// eventName maps a request to its analytics event. Routes without a domain
// event become e.g. "get_api_v1_enquiries_enquiryid".
func eventName(method, route string) string {
	if name, ok := domainEvents[method+" "+route]; ok {
		return name
	}
	trimmed := strings.TrimPrefix(route, "/")
	return strings.ToLower(method + "_" + strings.NewReplacer("/", "_", ":", "").Replace(trimmed))
}

// PosthogMiddleware reports successful authenticated requests to PostHog.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists || c.FullPath() == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		for _, param := range c.Params {
			props[param.Key] = param.Value
		}

		posthogClient.Enqueue(userID, eventName(c.Request.Method, c.FullPath()), props)
	}
}
