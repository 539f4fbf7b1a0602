package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

func TestComputeOverview(t *testing.T) {
	overview := ComputeOverview(
		[]domain.Product{{ID: "1"}, {ID: "2"}},
		[]domain.Sale{{Quantity: 3, Revenue: 0.1}, {Quantity: 4, Revenue: 0.2}},
	)

	assert.Equal(t, 2, overview.TotalProducts)
	assert.Equal(t, 7, overview.TotalSales)
	assert.Equal(t, 0.3, overview.Revenue)

	empty := ComputeOverview(nil, []domain.Sale{{Quantity: 1}})
	assert.Equal(t, 0, empty.TotalProducts)
	assert.Equal(t, 1, empty.TotalSales)
}

func TestComputeDashboard(t *testing.T) {
	dataset := domain.Dataset{
		Products: []domain.Product{
			{ID: "1", Category: "Electronics", Cost: 100},
			{ID: "2", Category: "Books", Cost: 50},
		},
		Sales: []domain.Sale{
			sale(2024, time.January, 5, 10, 100),
			sale(2024, time.February, 5, 20, 200),
			sale(2024, time.March, 5, 30, 300),
			sale(2024, time.April, 5, 40, 400),
		},
		Costs: []domain.CostRecord{{
			Month: month(2024, time.April),
			Lines: []domain.CostLine{{Name: "shipping", Amount: 1}},
		}},
	}

	dashboard := ComputeDashboard(dataset, FixedRateEstimator{Rate: 0.1}, domain.TimeRange3M)

	assert.Equal(t, domain.TimeRange3M, dashboard.Range)
	assert.Equal(t, 2, dashboard.Overview.TotalProducts)
	assert.Equal(t, 100, dashboard.Overview.TotalSales)
	assert.Equal(t, []domain.DerivedMetric{{Name: "Shipping", Value: 100}}, dashboard.CostBreakdown)
	assert.Equal(t, []domain.DerivedMetric{{Name: "Electronics", Value: 67}, {Name: "Books", Value: 33}}, dashboard.CategoryCosts)

	require.Len(t, dashboard.Monthly, 3)
	assert.Equal(t, "Feb", dashboard.Monthly[0].Name)
	assert.Equal(t, domain.SalesSummary{TotalSales: 90, TotalReturns: 9, ReturnRate: 10}, dashboard.Summary)
}

func TestComputeDashboard_EmptyDataset(t *testing.T) {
	dashboard := ComputeDashboard(domain.Dataset{}, nil, domain.TimeRange12M)

	assert.Equal(t, domain.Overview{}, dashboard.Overview)
	assert.Equal(t, []domain.DerivedMetric{}, dashboard.CostBreakdown)
	assert.Equal(t, []domain.DerivedMetric{}, dashboard.CategoryCosts)
	assert.Empty(t, dashboard.Monthly)
	assert.Equal(t, domain.SalesSummary{}, dashboard.Summary)
}
