package analytics

import (
	"strings"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

// ParseTimeRange normalizes a query value. Unknown or empty values map to 12m.
func ParseTimeRange(value string) domain.TimeRange {
	switch r := domain.TimeRange(strings.ToLower(strings.TrimSpace(value))); r {
	case domain.TimeRange3M, domain.TimeRange6M:
		return r
	default:
		return domain.TimeRange12M
	}
}

// FilterRange keeps the trailing 3 or 6 points of the series. 12m and any
// unrecognized range keep the whole series. The input is not modified.
func FilterRange(series []domain.MonthlyPoint, r domain.TimeRange) []domain.MonthlyPoint {
	start := 0
	if n := r.Months(); n > 0 && n < len(series) {
		start = len(series) - n
	}

	filtered := make([]domain.MonthlyPoint, len(series)-start)
	copy(filtered, series[start:])

	return filtered
}

func Summarize(series []domain.MonthlyPoint) domain.SalesSummary {
	var summary domain.SalesSummary

	for _, point := range series {
		summary.TotalSales += point.Sales
		summary.TotalReturns += point.Returns
	}

	if summary.TotalSales > 0 {
		summary.ReturnRate = float64(summary.TotalReturns) / float64(summary.TotalSales) * 100
	}

	return summary
}
