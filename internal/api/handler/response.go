package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
	"github.com/vfg2006/seller-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DegradedHeader is set when a response was computed from a snapshot with
// at least one collection replaced by an empty one.
const DegradedHeader = "X-Data-Degraded"

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("handler: failed to encode response")
	}
}

func markDegraded(w http.ResponseWriter, logger log.Logger, meta domain.SnapshotMeta) {
	if !meta.IsDegraded() {
		return
	}

	w.Header().Set(DegradedHeader, "true")
	logger.WithField("degraded", meta.Degraded).Warn("handler: serving degraded snapshot")
}
