package handler

import (
	"net/http"

	"github.com/vfg2006/seller-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/seller-dashboard-api/internal/scheduler"
	"github.com/vfg2006/seller-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/seller-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/seller-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/status",
			Method:  http.MethodGet,
			Handler: GetStatus(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
		{
			Path:    "/v1/costs/breakdown",
			Method:  http.MethodGet,
			Handler: GetCostBreakdown(service),
		},
		{
			Path:    "/v1/costs/categories",
			Method:  http.MethodGet,
			Handler: GetCategoryCosts(service),
		},
		{
			Path:    "/v1/sales/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlySales(service),
		},
		{
			Path:    "/v1/sales/summary",
			Method:  http.MethodGet,
			Handler: GetSalesSummary(service),
		},
	}
}

// RecordFeed exposes the raw collections under the paths the http record
// store driver reads, so one instance can feed another.
func RecordFeed(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/api/status",
			Method:  http.MethodGet,
			Handler: GetStatus(service),
		},
		{
			Path:    "/api/data/products",
			Method:  http.MethodGet,
			Handler: ListRecords(service, dashboarding.CollectionProducts),
		},
		{
			Path:    "/api/data/sales",
			Method:  http.MethodGet,
			Handler: ListRecords(service, dashboarding.CollectionSales),
		},
		{
			Path:    "/api/data/costs",
			Method:  http.MethodGet,
			Handler: ListRecords(service, dashboarding.CollectionCosts),
		},
	}
}

func Insights(service insighting.Asker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/ask",
			Method:      http.MethodPost,
			Handler:     AskInsight(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireJSON()},
		},
	}
}

func Refresh(syncer scheduler.Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/refresh",
			Method:  http.MethodPost,
			Handler: RunRefresh(syncer),
		},
		{
			Path:    "/v1/refresh/status",
			Method:  http.MethodGet,
			Handler: GetRefreshStatus(syncer),
		},
	}
}
