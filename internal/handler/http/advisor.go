package http

import (
	"net/http"

	"github.com/MKhiriev/go-finance-advisor/internal/utils"
	"github.com/MKhiriev/go-finance-advisor/models"
)

func (h *Handler) financeAdvice(w http.ResponseWriter, r *http.Request) {
	var request models.FinanceAdviceRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.FinanceAdvisorService.GetAdvice(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) riskAssessment(w http.ResponseWriter, r *http.Request) {
	var request models.RiskAssessmentRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.FinanceAdvisorService.AssessRiskProfile(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) explainConcept(w http.ResponseWriter, r *http.Request) {
	var request models.ConceptExplanationRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.FinanceAdvisorService.ExplainConcept(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) advisorHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.FinanceAdvisorService.Health(r.Context()), http.StatusOK)
}

func (h *Handler) advisorCapabilities(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.FinanceAdvisorService.Capabilities(r.Context()), http.StatusOK)
}
