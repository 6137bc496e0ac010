package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// StageProbability is the win probability assigned to each status by the
// pipeline forecast. Every weight lies in [0,1].
var StageProbability = map[EnquiryStatus]decimal.Decimal{
	StatusPending:      decimal.RequireFromString("0.2"),
	StatusContacted:    decimal.RequireFromString("0.5"),
	StatusProposalSent: decimal.RequireFromString("0.75"),
	StatusConverted:    decimal.NewFromInt(1),
	StatusLost:         decimal.Zero,
}

// ProbabilityFor returns the weight for a status; unknown statuses weigh zero.
func ProbabilityFor(status EnquiryStatus) decimal.Decimal {
	if p, ok := StageProbability[status]; ok {
		return p
	}
	return decimal.Zero
}

// StatusCount is one bucket of the status distribution.
type StatusCount struct {
	Status EnquiryStatus `json:"status"`
	Count  int           `json:"count"`
}

// KPIMetrics summarises the enquiry book.
type KPIMetrics struct {
	TotalEnquiries     int             `json:"totalEnquiries"`
	ConvertedEnquiries int             `json:"convertedEnquiries"`
	ConversionRate     float64         `json:"conversionRate"` // percent, [0,100]
	ThisMonthEnquiries int             `json:"thisMonthEnquiries"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
}

// PipelineStage is the forecast for one non-terminal status.
type PipelineStage struct {
	Status        EnquiryStatus   `json:"status"`
	Count         int             `json:"count"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	Probability   decimal.Decimal `json:"probability"`
	WeightedValue decimal.Decimal `json:"weightedValue"`
}

// SummarizeStatuses groups enquiries by status. Known statuses come first in
// pipeline order; anything else found in storage follows in first-seen order.
// Statuses with no enquiries are omitted.
func SummarizeStatuses(enquiries []Enquiry) []StatusCount {
	counts := make(map[EnquiryStatus]int)
	var unknown []EnquiryStatus
	for _, e := range enquiries {
		if _, seen := counts[e.CurrentStatus]; !seen && !e.CurrentStatus.Valid() {
			unknown = append(unknown, e.CurrentStatus)
		}
		counts[e.CurrentStatus]++
	}

	summary := make([]StatusCount, 0, len(counts))
	for _, status := range append(append([]EnquiryStatus{}, EnquiryStatuses...), unknown...) {
		if n := counts[status]; n > 0 {
			summary = append(summary, StatusCount{Status: status, Count: n})
		}
	}
	return summary
}

// ComputeKPIMetrics derives the headline numbers. now decides which month is
// "this month"; totalRevenue sums amountPaid over payments of converted enquiries.
func ComputeKPIMetrics(enquiries []Enquiry, payments []Payment, now time.Time) KPIMetrics {
	metrics := KPIMetrics{TotalEnquiries: len(enquiries), TotalRevenue: decimal.Zero}

	converted := make(map[int64]bool)
	for _, e := range enquiries {
		if e.CurrentStatus == StatusConverted {
			metrics.ConvertedEnquiries++
			converted[e.ID] = true
		}
		if e.DateOfEnquiry.Year() == now.Year() && e.DateOfEnquiry.Month() == now.Month() {
			metrics.ThisMonthEnquiries++
		}
	}

	for _, p := range payments {
		if converted[p.EnquiryID] && p.AmountPaid != nil {
			metrics.TotalRevenue = metrics.TotalRevenue.Add(*p.AmountPaid)
		}
	}

	metrics.ConversionRate = conversionRate(metrics.ConvertedEnquiries, metrics.TotalEnquiries)
	return metrics
}

func conversionRate(converted, total int) float64 {
	if total <= 0 {
		return 0
	}
	rate := float64(converted) / float64(total) * 100
	rate = math.Round(rate*100) / 100
	return math.Max(0, math.Min(100, rate))
}

// ForecastPipeline weights the open pipeline. Each enquiry contributes its
// estimatedValue, or the totalAmount of its payment when no estimate exists.
func ForecastPipeline(enquiries []Enquiry, payments []Payment) []PipelineStage {
	paymentTotals := make(map[int64]decimal.Decimal, len(payments))
	for _, p := range payments {
		if _, ok := paymentTotals[p.EnquiryID]; !ok {
			paymentTotals[p.EnquiryID] = p.TotalAmount
		}
	}

	stages := make(map[EnquiryStatus]*PipelineStage)
	var order []EnquiryStatus
	for _, e := range enquiries {
		if e.CurrentStatus.IsTerminal() {
			continue
		}
		stage, ok := stages[e.CurrentStatus]
		if !ok {
			stage = &PipelineStage{
				Status:      e.CurrentStatus,
				TotalValue:  decimal.Zero,
				Probability: ProbabilityFor(e.CurrentStatus),
			}
			stages[e.CurrentStatus] = stage
			order = append(order, e.CurrentStatus)
		}
		stage.Count++
		switch {
		case e.EstimatedValue != nil:
			stage.TotalValue = stage.TotalValue.Add(*e.EstimatedValue)
		default:
			if total, ok := paymentTotals[e.ID]; ok {
				stage.TotalValue = stage.TotalValue.Add(total)
			}
		}
	}

	forecast := make([]PipelineStage, 0, len(stages))
	for _, status := range EnquiryStatuses {
		if stage, ok := stages[status]; ok {
			forecast = append(forecast, finishStage(stage))
		}
	}
	for _, status := range order {
		if !status.Valid() {
			forecast = append(forecast, finishStage(stages[status]))
		}
	}
	return forecast
}

func finishStage(stage *PipelineStage) PipelineStage {
	stage.WeightedValue = stage.TotalValue.Mul(stage.Probability)
	return *stage
}
