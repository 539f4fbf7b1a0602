package handler

import (
	"net/http"

	"github.com/vfg2006/seller-dashboard-api/internal/analytics"
	"github.com/vfg2006/seller-dashboard-api/internal/domain"
	"github.com/vfg2006/seller-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/seller-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/seller-dashboard-api/pkg/log"
	"github.com/vfg2006/seller-dashboard-api/pkg/utils"
)

const loadFailedMessage = "Failed to load seller data"

func rangeFromQuery(r *http.Request) domain.TimeRange {
	return analytics.ParseTimeRange(r.URL.Query().Get("range"))
}

// GetDashboard returns every view computed from one snapshot.
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		timeRange := rangeFromQuery(r)

		dashboard, meta, err := service.Dashboard(r.Context(), timeRange)
		if err != nil {
			logger.WithError(err).WithField("range", timeRange).Error("dashboard: failed to build dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, loadFailedMessage, nil)
			return
		}

		dashboard.Summary.ReturnRate = utils.RoundWithOneDecimalPlace(dashboard.Summary.ReturnRate)

		markDegraded(w, logger, meta)
		writeJSON(w, logger, http.StatusOK, dashboard)
	})
}

func GetOverview(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		overview, meta, err := service.Overview(r.Context())
		if err != nil {
			logger.WithError(err).Error("overview: failed to compute overview")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, loadFailedMessage, nil)
			return
		}

		markDegraded(w, logger, meta)
		writeJSON(w, logger, http.StatusOK, overview)
	})
}

func GetCostBreakdown(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		breakdown, meta, err := service.CostBreakdown(r.Context())
		if err != nil {
			logger.WithError(err).Error("costs: failed to compute cost breakdown")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, loadFailedMessage, nil)
			return
		}

		markDegraded(w, logger, meta)
		writeJSON(w, logger, http.StatusOK, breakdown)
	})
}

func GetCategoryCosts(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		categories, meta, err := service.CategoryCosts(r.Context())
		if err != nil {
			logger.WithError(err).Error("costs: failed to compute category costs")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, loadFailedMessage, nil)
			return
		}

		markDegraded(w, logger, meta)
		writeJSON(w, logger, http.StatusOK, categories)
	})
}

// GetMonthlySales returns the monthly series trimmed to the requested range.
func GetMonthlySales(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		timeRange := rangeFromQuery(r)

		series, meta, err := service.MonthlySales(r.Context(), timeRange)
		if err != nil {
			logger.WithError(err).WithField("range", timeRange).Error("sales: failed to compute monthly series")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, loadFailedMessage, nil)
			return
		}

		markDegraded(w, logger, meta)
		writeJSON(w, logger, http.StatusOK, series)
	})
}

// GetSalesSummary returns totals for the range with the return rate rounded
// to one decimal place.
func GetSalesSummary(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		timeRange := rangeFromQuery(r)

		summary, meta, err := service.SalesSummary(r.Context(), timeRange)
		if err != nil {
			logger.WithError(err).WithField("range", timeRange).Error("sales: failed to compute summary")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, loadFailedMessage, nil)
			return
		}

		summary.ReturnRate = utils.RoundWithOneDecimalPlace(summary.ReturnRate)

		markDegraded(w, logger, meta)
		writeJSON(w, logger, http.StatusOK, summary)
	})
}
