package dashboarding

import (
	"context"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

const (
	CollectionProducts = "products"
	CollectionSales    = "sales"
	CollectionCosts    = "costs"
)

// RecordStore is the read-only source of business records.
type RecordStore interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	ListCosts(ctx context.Context) ([]domain.CostRecord, error)
	Ping(ctx context.Context) error
}

// Dashboarder serves the derived dashboard views. Every view is computed from
// a snapshot; the returned SnapshotMeta tells whether that snapshot is degraded.
type Dashboarder interface {
	Dashboard(ctx context.Context, r domain.TimeRange) (*domain.Dashboard, domain.SnapshotMeta, error)
	Overview(ctx context.Context) (domain.Overview, domain.SnapshotMeta, error)
	CostBreakdown(ctx context.Context) ([]domain.DerivedMetric, domain.SnapshotMeta, error)
	CategoryCosts(ctx context.Context) ([]domain.DerivedMetric, domain.SnapshotMeta, error)
	MonthlySales(ctx context.Context, r domain.TimeRange) ([]domain.MonthlyPoint, domain.SnapshotMeta, error)
	SalesSummary(ctx context.Context, r domain.TimeRange) (domain.SalesSummary, domain.SnapshotMeta, error)

	// Snapshot exposes the raw records behind the views.
	Snapshot(ctx context.Context) (*domain.Dataset, error)
	Refresh(ctx context.Context) (domain.SnapshotMeta, error)
	Status(ctx context.Context) domain.StoreStatus
}
