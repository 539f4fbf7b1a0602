package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
	"github.com/vfg2006/seller-dashboard-api/internal/scheduler"
	"github.com/vfg2006/seller-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/seller-dashboard-api/pkg/log"
)

const (
	refreshSuccess = "success"
	refreshPartial = "partial"
)

// RunRefresh reloads the snapshot synchronously and reports which
// collections, if any, could not be fetched.
func RunRefresh(syncer scheduler.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("refresh: manual refresh requested")

		meta, err := syncer.RunSync(r.Context())
		if err != nil {
			if errors.Is(err, scheduler.ErrSyncInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "A refresh is already running", nil)
				return
			}

			logger.WithError(err).Error("refresh: manual refresh failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to refresh data", nil)
			return
		}

		result := domain.RefreshResult{
			Status:      refreshSuccess,
			RefreshedAt: meta.FetchedAt,
			Degraded:    meta.Degraded,
		}
		if result.RefreshedAt.IsZero() {
			result.RefreshedAt = time.Now()
		}
		if meta.IsDegraded() {
			result.Status = refreshPartial
		}

		markDegraded(w, logger, meta)
		writeJSON(w, logger, http.StatusOK, result)
	})
}

func GetRefreshStatus(syncer scheduler.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, syncer.GetStatus())
	})
}
