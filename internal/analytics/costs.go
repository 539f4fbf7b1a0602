package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

// LatestCostRecord returns the record with the greatest month. When several
// records share that month the first one in input order wins.
func LatestCostRecord(costs []domain.CostRecord) (domain.CostRecord, bool) {
	if len(costs) == 0 {
		return domain.CostRecord{}, false
	}

	latest := costs[0]
	for _, record := range costs[1:] {
		if record.Month.After(latest.Month) {
			latest = record
		}
	}

	return latest, true
}

// ComputeCostBreakdown expresses every expense line of the most recent month
// as a share of that month's total, keeping the record's line order.
func ComputeCostBreakdown(costs []domain.CostRecord) []domain.DerivedMetric {
	latest, ok := LatestCostRecord(costs)
	if !ok {
		return emptyMetrics()
	}

	amounts := make([]decimal.Decimal, len(latest.Lines))
	total := decimal.Zero
	for i, line := range latest.Lines {
		amounts[i] = decimal.NewFromFloat(line.Amount)
		total = total.Add(amounts[i])
	}

	metrics := make([]domain.DerivedMetric, 0, len(latest.Lines))
	for i, line := range latest.Lines {
		metrics = append(metrics, domain.DerivedMetric{
			Name:  Humanize(line.Name),
			Value: percentOf(amounts[i], total),
		})
	}

	return metrics
}

// ComputeCategoryCosts groups product cost by category in first-seen order
// and returns each category's share of the grand total.
func ComputeCategoryCosts(products []domain.Product) []domain.DerivedMetric {
	var categories []string
	totals := make(map[string]decimal.Decimal)
	grandTotal := decimal.Zero

	for _, product := range products {
		cost := decimal.NewFromFloat(product.Cost)

		current, seen := totals[product.Category]
		if !seen {
			categories = append(categories, product.Category)
		}
		totals[product.Category] = current.Add(cost)
		grandTotal = grandTotal.Add(cost)
	}

	if grandTotal.IsZero() {
		return emptyMetrics()
	}

	metrics := make([]domain.DerivedMetric, 0, len(categories))
	for _, category := range categories {
		metrics = append(metrics, domain.DerivedMetric{
			Name:  category,
			Value: percentOf(totals[category], grandTotal),
		})
	}

	return metrics
}
