package handler

import (
	"net/http"
	"slices"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
	"github.com/vfg2006/seller-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/seller-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/seller-dashboard-api/pkg/log"
)

// ListRecords serves one raw collection of the current snapshot, in the same
// shape the http record feed consumes. A collection that failed to load is
// answered with 503 instead of an empty array, so a downstream feed does not
// take it for real data.
func ListRecords(service dashboarding.Dashboarder, collection string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("collection", collection)

		dataset, err := service.Snapshot(r.Context())
		if err != nil {
			logger.WithError(err).Error("data: failed to load snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, loadFailedMessage, nil)
			return
		}

		if slices.Contains(dataset.Degraded, collection) {
			logger.Warn("data: collection unavailable in current snapshot")
			w.Header().Set(DegradedHeader, "true")
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Collection is temporarily unavailable", map[string]string{
				"collection": collection,
			})
			return
		}

		writeJSON(w, logger, http.StatusOK, collectionOf(dataset, collection))
	})
}

func collectionOf(dataset *domain.Dataset, collection string) any {
	switch collection {
	case dashboarding.CollectionProducts:
		return dataset.Products
	case dashboarding.CollectionSales:
		return dataset.Sales
	default:
		return dataset.Costs
	}
}
