package handler

import (
	"net/http"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
	"github.com/vfg2006/seller-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/seller-dashboard-api/pkg/log"
)

// GetStatus reports whether the record store answers. A disconnected store
// is returned with 503 so probes can act on the status code alone.
func GetStatus(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := service.Status(r.Context())

		code := http.StatusOK
		if status.Status != domain.StoreConnected {
			code = http.StatusServiceUnavailable
		}

		writeJSON(w, logger, code, status)
	})
}
