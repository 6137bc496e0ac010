package dto

import (
	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/SscSPs/firm_enquiries_app/internal/utils"
)

// StatusCountResponse is one bucket of the status summary.
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// KPIMetricsResponse represents the KPI metrics response
type KPIMetricsResponse struct {
	TotalEnquiries     int     `json:"totalEnquiries"`
	ConvertedEnquiries int     `json:"convertedEnquiries"`
	ConversionRate     float64 `json:"conversionRate"`
	ThisMonthEnquiries int     `json:"thisMonthEnquiries"`
	TotalRevenue       string  `json:"totalRevenue"`
}

// PipelineStageResponse represents one status row of the pipeline forecast
type PipelineStageResponse struct {
	Status        string  `json:"status"`
	Count         int     `json:"count"`
	TotalValue    string  `json:"totalValue"`
	Probability   float64 `json:"probability"`
	WeightedValue string  `json:"weightedValue"`
}

// ToStatusSummaryResponse converts the domain status summary
func ToStatusSummaryResponse(summary []domain.StatusCount) []StatusCountResponse {
	res := make([]StatusCountResponse, len(summary))
	for i, s := range summary {
		res[i] = StatusCountResponse{Status: string(s.Status), Count: s.Count}
	}
	return res
}

// ToKPIMetricsResponse converts domain.KPIMetrics
func ToKPIMetricsResponse(m *domain.KPIMetrics) KPIMetricsResponse {
	return KPIMetricsResponse{
		TotalEnquiries:     m.TotalEnquiries,
		ConvertedEnquiries: m.ConvertedEnquiries,
		ConversionRate:     m.ConversionRate,
		ThisMonthEnquiries: m.ThisMonthEnquiries,
		TotalRevenue:       utils.FormatMoney(m.TotalRevenue),
	}
}

// ToPipelineForecastResponse converts the domain forecast
func ToPipelineForecastResponse(stages []domain.PipelineStage) []PipelineStageResponse {
	res := make([]PipelineStageResponse, len(stages))
	for i, s := range stages {
		res[i] = PipelineStageResponse{
			Status:        string(s.Status),
			Count:         s.Count,
			TotalValue:    utils.FormatMoney(s.TotalValue),
			Probability:   s.Probability.InexactFloat64(),
			WeightedValue: utils.FormatMoney(s.WeightedValue),
		}
	}
	return res
}
