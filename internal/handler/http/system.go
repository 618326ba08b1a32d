package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-advisor/internal/utils"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetRoot(r.Context()), http.StatusOK)
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetInfo(r.Context()), http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	body, err := h.services.HealthService.CheckDatabase(r.Context())
	if err != nil {
		utils.WriteJSON(w, body, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, body, http.StatusOK)
}

func (h *Handler) metricsHandler() http.Handler {
	if h.metrics == nil {
		return http.NotFoundHandler()
	}
	return h.metrics.Handler()
}
