package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

type ContactHandler struct {
	LogUC *usecase.LogContactUseCase
	Repo  entity.ContactRepository
}

func NewContactHandler(logUC *usecase.LogContactUseCase, repo entity.ContactRepository) *ContactHandler {
	return &ContactHandler{LogUC: logUC, Repo: repo}
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Repo.FindAll(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *ContactHandler) ListForLead(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	records, err := h.Repo.FindByLead(r.Context(), leadID)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.LogContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	record, err := h.LogUC.Execute(r.Context(), input)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}
