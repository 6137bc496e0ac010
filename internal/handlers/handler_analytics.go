package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/firm_enquiries_app/internal/core/ports/services"
	"github.com/SscSPs/firm_enquiries_app/internal/dto"
	"github.com/SscSPs/firm_enquiries_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type analyticsHandler struct {
	analytics portssvc.EnquiryAnalyticsSvc
}

// RegisterAnalyticsRoutes registers the read-only analytics views.
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, analytics portssvc.EnquiryAnalyticsSvc) {
	h := &analyticsHandler{analytics: analytics}

	group := rg.Group("/analytics")
	{
		group.GET("/status-summary", h.statusSummary)
		group.GET("/kpi-metrics", h.kpiMetrics)
		group.GET("/pipeline-forecast", h.pipelineForecast)
	}
}

// statusSummary godoc
// @Summary Enquiry count per status
// @Tags analytics
// @Produce  json
// @Success 200 {array} dto.StatusCountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /analytics/status-summary [get]
func (h *analyticsHandler) statusSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.analytics.StatusSummary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute status summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusSummaryResponse(summary))
}

// kpiMetrics godoc
// @Summary Headline enquiry metrics
// @Tags analytics
// @Produce  json
// @Success 200 {object} dto.KPIMetricsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /analytics/kpi-metrics [get]
func (h *analyticsHandler) kpiMetrics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	kpis, err := h.analytics.KPIMetrics(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute KPI metrics")
		return
	}

	c.JSON(http.StatusOK, dto.ToKPIMetricsResponse(kpis))
}

// pipelineForecast godoc
// @Summary Probability-weighted value of the open pipeline
// @Tags analytics
// @Produce  json
// @Success 200 {array} dto.PipelineStageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /analytics/pipeline-forecast [get]
func (h *analyticsHandler) pipelineForecast(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stages, err := h.analytics.PipelineForecast(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to compute pipeline forecast")
		return
	}

	c.JSON(http.StatusOK, dto.ToPipelineForecastResponse(stages))
}
