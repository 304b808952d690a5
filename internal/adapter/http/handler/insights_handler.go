package handler

import (
	"context"
	"net/http"

	"github.com/iho/flowtrack/internal/adapter/http/dto"
	"github.com/iho/flowtrack/internal/adapter/http/middleware"
	"github.com/iho/flowtrack/internal/domain"
	"github.com/iho/flowtrack/internal/usecase"
)

// InsightsService defines the behavior needed by InsightsHandler.
type InsightsService interface {
	Insights(ctx context.Context, input usecase.InsightsInput) (*domain.Insights, error)
}

// InsightsHandler handles insights HTTP requests.
type InsightsHandler struct {
	insightsUC InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsUC InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsUC: insightsUC}
}

// Get computes the insights aggregate for the requested window.
// Missing or malformed dates coerce to the current month rather than
// erroring, so dashboards always render.
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	input := usecase.InsightsInput{
		UserID:    userID,
		AccountID: r.URL.Query().Get("accountId"),
		Start:     parseDateQuery(r, "startDate"),
		End:       parseDateQuery(r, "endDate"),
	}

	insights, err := h.insightsUC.Insights(r.Context(), input)
	if err != nil {
		writeDomainError(w, err, "failed to compute insights")
		return
	}

	writeJSON(w, http.StatusOK, dto.InsightsFromDomain(insights))
}
