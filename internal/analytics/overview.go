package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

// ComputeOverview counts products and sums sold units and revenue.
func ComputeOverview(products []domain.Product, sales []domain.Sale) domain.Overview {
	revenue := decimal.Zero
	units := 0

	for _, sale := range sales {
		units += sale.Quantity
		revenue = revenue.Add(decimal.NewFromFloat(sale.Revenue))
	}

	return domain.Overview{
		TotalProducts: len(products),
		TotalSales:    units,
		Revenue:       revenue.InexactFloat64(),
	}
}
