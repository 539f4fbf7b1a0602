package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

// ComputeMonthlySeries buckets sales by calendar month and returns the
// buckets in chronological order. Months without sales are not filled in.
func ComputeMonthlySeries(sales []domain.Sale, estimator ReturnsEstimator) []domain.MonthlyPoint {
	if estimator == nil {
		estimator = FixedRateEstimator{Rate: DefaultReturnRate}
	}

	buckets := make(map[time.Time]*domain.MonthlyPoint)
	var months []time.Time

	for _, sale := range sales {
		month := time.Date(sale.Date.Year(), sale.Date.Month(), 1, 0, 0, 0, 0, time.UTC)

		point, ok := buckets[month]
		if !ok {
			point = &domain.MonthlyPoint{
				Name:  month.Format("Jan"),
				Month: month.Format(domain.CostMonthLayout),
			}
			buckets[month] = point
			months = append(months, month)
		}

		point.Sales += sale.Quantity
		point.Returns += estimator.EstimateReturns(sale)
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	series := make([]domain.MonthlyPoint, 0, len(months))
	for _, month := range months {
		series = append(series, *buckets[month])
	}

	return series
}
