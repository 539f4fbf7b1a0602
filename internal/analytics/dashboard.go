package analytics

import "github.com/vfg2006/seller-dashboard-api/internal/domain"

// ComputeDashboard runs every aggregator over one snapshot. The monthly series
// and its summary are limited to r.
func ComputeDashboard(dataset domain.Dataset, estimator ReturnsEstimator, r domain.TimeRange) domain.Dashboard {
	monthly := FilterRange(ComputeMonthlySeries(dataset.Sales, estimator), r)

	return domain.Dashboard{
		Range:         r,
		Overview:      ComputeOverview(dataset.Products, dataset.Sales),
		CostBreakdown: ComputeCostBreakdown(dataset.Costs),
		CategoryCosts: ComputeCategoryCosts(dataset.Products),
		Monthly:       monthly,
		Summary:       Summarize(monthly),
	}
}
