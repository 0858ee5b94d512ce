package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bytewerk/leadboard/internal/infra/http/middleware"
	"github.com/bytewerk/leadboard/internal/usecase"
)

type AnalyticsHandler struct {
	Service *usecase.AnalyticsService
}

func NewAnalyticsHandler(service *usecase.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: service}
}

// Overview serves the dashboard aggregate. On any provider failure the
// dashboard gets an explicit error body and renders its "no data" state;
// partial aggregates are never sent.
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		writeError(w, http.StatusServiceUnavailable, "Analytics is not configured")
		return
	}

	overview, err := h.Service.Overview(r.Context())
	if err != nil {
		middleware.RecordIntegrationError("ga4")
		slog.Error("analytics fetch failed", "error", err)
		writeError(w, http.StatusBadGateway, "Analytics data unavailable")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}
