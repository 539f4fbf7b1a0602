package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
	"github.com/vfg2006/seller-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/seller-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/seller-dashboard-api/pkg/log"
)

func AskInsight(service insighting.Asker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.InsightQuestion
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithError(err).Warn("insights: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		answer, err := service.Ask(r.Context(), input.Question)
		if err != nil {
			switch {
			case errors.Is(err, insighting.ErrEmptyQuestion):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Question is required", nil)
			case errors.Is(err, insighting.ErrInsightUnavailable):
				logger.WithError(err).Error("insights: insight service unavailable")
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "Insight service is unavailable", nil)
			default:
				logger.WithError(err).Error("insights: failed to answer question")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to answer question", nil)
			}
			return
		}

		writeJSON(w, logger, http.StatusOK, answer)
	})
}
