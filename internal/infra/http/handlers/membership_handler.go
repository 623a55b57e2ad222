package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

// MembershipHandler serves one collection (saved or prospection); both
// collections share the same contract, so the router mounts two instances.
type MembershipHandler struct {
	Collection string
	TrackUC    *usecase.TrackLeadUseCase
	Repo       entity.MembershipRepository
}

func NewMembershipHandler(collection string, trackUC *usecase.TrackLeadUseCase, repo entity.MembershipRepository) *MembershipHandler {
	return &MembershipHandler{
		Collection: collection,
		TrackUC:    trackUC,
		Repo:       repo,
	}
}

func (h *MembershipHandler) List(w http.ResponseWriter, r *http.Request) {
	memberships, err := h.Repo.FindByCollection(r.Context(), h.Collection)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, memberships)
}

func (h *MembershipHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input usecase.TrackLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	membership, err := h.TrackUC.Execute(r.Context(), h.Collection, input)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, membership)
}

// Remove deletes every membership for the lead in this collection. Removing
// a lead that was never a member is still a success.
func (h *MembershipHandler) Remove(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "leadId")

	if err := h.Repo.DeleteByLead(r.Context(), h.Collection, leadID); err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
