package dashboarding

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/seller-dashboard-api/internal/analytics"
	"github.com/vfg2006/seller-dashboard-api/internal/config"
	"github.com/vfg2006/seller-dashboard-api/internal/domain"
	"github.com/vfg2006/seller-dashboard-api/pkg/log"
)

const snapshotKey = "snapshot"

// Service loads record snapshots and derives the dashboard views from them.
//
// A snapshot is kept for CacheTTL. Degraded snapshots are served but never
// cached, so the next request retries the failing collection.
type Service struct {
	store        RecordStore
	estimator    analytics.ReturnsEstimator
	driver       string
	fetchTimeout time.Duration
	cacheTTL     time.Duration
	now          func() time.Time

	loads    singleflight.Group
	mu       sync.RWMutex
	snapshot *domain.Dataset
}

func NewService(store RecordStore, estimator analytics.ReturnsEstimator, cfg config.RecordStore) *Service {
	if estimator == nil {
		estimator = analytics.FixedRateEstimator{Rate: analytics.DefaultReturnRate}
	}

	return &Service{
		store:        store,
		estimator:    estimator,
		driver:       cfg.Driver,
		fetchTimeout: cfg.FetchTimeout,
		cacheTTL:     cfg.CacheTTL,
		now:          time.Now,
	}
}

func (s *Service) Dashboard(ctx context.Context, r domain.TimeRange) (*domain.Dashboard, domain.SnapshotMeta, error) {
	dataset, err := s.Snapshot(ctx)
	if err != nil {
		return nil, domain.SnapshotMeta{}, err
	}

	dashboard := analytics.ComputeDashboard(*dataset, s.estimator, r)
	return &dashboard, dataset.SnapshotMeta, nil
}

func (s *Service) Overview(ctx context.Context) (domain.Overview, domain.SnapshotMeta, error) {
	dataset, err := s.Snapshot(ctx)
	if err != nil {
		return domain.Overview{}, domain.SnapshotMeta{}, err
	}

	return analytics.ComputeOverview(dataset.Products, dataset.Sales), dataset.SnapshotMeta, nil
}

func (s *Service) CostBreakdown(ctx context.Context) ([]domain.DerivedMetric, domain.SnapshotMeta, error) {
	dataset, err := s.Snapshot(ctx)
	if err != nil {
		return nil, domain.SnapshotMeta{}, err
	}

	return analytics.ComputeCostBreakdown(dataset.Costs), dataset.SnapshotMeta, nil
}

func (s *Service) CategoryCosts(ctx context.Context) ([]domain.DerivedMetric, domain.SnapshotMeta, error) {
	dataset, err := s.Snapshot(ctx)
	if err != nil {
		return nil, domain.SnapshotMeta{}, err
	}

	return analytics.ComputeCategoryCosts(dataset.Products), dataset.SnapshotMeta, nil
}

func (s *Service) MonthlySales(ctx context.Context, r domain.TimeRange) ([]domain.MonthlyPoint, domain.SnapshotMeta, error) {
	dataset, err := s.Snapshot(ctx)
	if err != nil {
		return nil, domain.SnapshotMeta{}, err
	}

	series := analytics.ComputeMonthlySeries(dataset.Sales, s.estimator)
	return analytics.FilterRange(series, r), dataset.SnapshotMeta, nil
}

func (s *Service) SalesSummary(ctx context.Context, r domain.TimeRange) (domain.SalesSummary, domain.SnapshotMeta, error) {
	series, meta, err := s.MonthlySales(ctx, r)
	if err != nil {
		return domain.SalesSummary{}, domain.SnapshotMeta{}, err
	}

	return analytics.Summarize(series), meta, nil
}

// Snapshot returns the cached dataset while it is fresh, loading a new one otherwise.
func (s *Service) Snapshot(ctx context.Context) (*domain.Dataset, error) {
	if dataset := s.cached(); dataset != nil {
		return dataset, nil
	}

	return s.share(ctx, func(loadCtx context.Context) *domain.Dataset {
		if dataset := s.cached(); dataset != nil {
			return dataset
		}

		return s.load(loadCtx)
	})
}

// Refresh loads a new snapshot bypassing the cache. A degraded result does not
// replace the current snapshot.
func (s *Service) Refresh(ctx context.Context) (domain.SnapshotMeta, error) {
	dataset, err := s.share(ctx, s.load)
	if err != nil {
		return domain.SnapshotMeta{}, err
	}

	return dataset.SnapshotMeta, nil
}

func (s *Service) Status(ctx context.Context) domain.StoreStatus {
	logger := log.ForContext(ctx)

	pingCtx, cancel := s.fetchContext(ctx)
	defer cancel()

	if err := s.store.Ping(pingCtx); err != nil {
		logger.WithError(err).WithField("driver", s.driver).Warn("dashboarding: record store unreachable")
		return domain.StoreStatus{
			Status:  domain.StoreDisconnected,
			Message: "Record store is unreachable",
			Driver:  s.driver,
		}
	}

	return domain.StoreStatus{
		Status:  domain.StoreConnected,
		Message: "Backend is running",
		Driver:  s.driver,
	}
}

func (s *Service) cached() *domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil || s.cacheTTL <= 0 {
		return nil
	}
	if s.now().Sub(s.snapshot.FetchedAt) >= s.cacheTTL {
		return nil
	}

	return s.snapshot
}

// share runs one load for every concurrent caller. The load is detached from
// the caller that started it and bounded only by the fetch timeout, so a
// caller going away never fails the others; each caller stops waiting when
// its own ctx is done.
func (s *Service) share(ctx context.Context, load func(context.Context) *domain.Dataset) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loadCtx := context.WithoutCancel(ctx)
	results := s.loads.DoChan(snapshotKey, func() (interface{}, error) {
		return load(loadCtx), nil
	})

	select {
	case <-ctx.Done():
		log.ForContext(ctx).WithError(ctx.Err()).Info("dashboarding: caller left before snapshot load finished")
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}

		return result.Val.(*domain.Dataset), nil
	}
}

func (s *Service) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.fetchTimeout > 0 {
		return context.WithTimeout(ctx, s.fetchTimeout)
	}

	return context.WithCancel(ctx)
}

// load fetches the three collections in parallel. A failing collection is
// logged and replaced by an empty one, so load itself never fails.
func (s *Service) load(ctx context.Context) *domain.Dataset {
	logger := log.ForContext(ctx)

	fetchCtx, cancel := s.fetchContext(ctx)
	defer cancel()

	var (
		g        errgroup.Group
		products []domain.Product
		sales    []domain.Sale
		costs    []domain.CostRecord
		failures [3]*DataError
	)

	g.Go(func() error {
		var err error
		if products, err = s.store.ListProducts(fetchCtx); err != nil {
			failures[0] = &DataError{Collection: CollectionProducts, Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if sales, err = s.store.ListSales(fetchCtx); err != nil {
			failures[1] = &DataError{Collection: CollectionSales, Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if costs, err = s.store.ListCosts(fetchCtx); err != nil {
			failures[2] = &DataError{Collection: CollectionCosts, Err: err}
		}
		return nil
	})

	// the group only fans out: a failed fetch degrades its collection and
	// never cancels the siblings, so Wait has no error to report
	_ = g.Wait()

	dataset := &domain.Dataset{
		Products: products,
		Sales:    sales,
		Costs:    costs,
	}
	dataset.FetchedAt = s.now()

	for _, failure := range failures {
		if failure == nil {
			continue
		}

		logger.WithError(failure.Err).WithField("collection", failure.Collection).
			Error("dashboarding: fetch failed, serving empty collection")
		dataset.Degraded = append(dataset.Degraded, failure.Collection)

		switch failure.Collection {
		case CollectionProducts:
			dataset.Products = nil
		case CollectionSales:
			dataset.Sales = nil
		case CollectionCosts:
			dataset.Costs = nil
		}
	}

	if dataset.Products == nil {
		dataset.Products = []domain.Product{}
	}
	if dataset.Sales == nil {
		dataset.Sales = []domain.Sale{}
	}
	if dataset.Costs == nil {
		dataset.Costs = []domain.CostRecord{}
	}

	if !dataset.IsDegraded() {
		s.mu.Lock()
		s.snapshot = dataset
		s.mu.Unlock()
	}

	logger.WithFields(log.Fields{
		"products": len(dataset.Products),
		"sales":    len(dataset.Sales),
		"costs":    len(dataset.Costs),
		"degraded": dataset.IsDegraded(),
	}).Debug("dashboarding: snapshot loaded")

	return dataset
}
