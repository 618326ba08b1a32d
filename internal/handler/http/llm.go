package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-finance-advisor/internal/utils"
	"github.com/MKhiriev/go-finance-advisor/models"
)

func (h *Handler) chatCompletion(w http.ResponseWriter, r *http.Request) {
	var request models.ChatCompletionRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.LLMService.CreateChatCompletion(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) embeddings(w http.ResponseWriter, r *http.Request) {
	var request models.EmbeddingRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.LLMService.CreateEmbeddings(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) generateImage(w http.ResponseWriter, r *http.Request) {
	var request models.ImageGenerationRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.LLMService.CreateImage(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) moderate(w http.ResponseWriter, r *http.Request) {
	var request models.ModerationRequest
	if err := h.decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.LLMService.ModerateContent(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) listModels(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.LLMService.ListModels(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) getModel(w http.ResponseWriter, r *http.Request) {
	model, err := h.services.LLMService.GetModel(r.Context(), chi.URLParam(r, "modelID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, model, http.StatusOK)
}

func (h *Handler) llmHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.LLMService.Health(r.Context()), http.StatusOK)
}
