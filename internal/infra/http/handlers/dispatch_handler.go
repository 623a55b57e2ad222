package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-leads/internal/usecase"
)

type DispatchHandler struct {
	SendUC *usecase.SendMessageUseCase
	Repo   entity.DispatchJobRepository
}

func NewDispatchHandler(sendUC *usecase.SendMessageUseCase, repo entity.DispatchJobRepository) *DispatchHandler {
	return &DispatchHandler{SendUC: sendUC, Repo: repo}
}

// SendEmail enqueues an email dispatch and attempts delivery before
// responding: the returned job is always terminal, never pending.
func (h *DispatchHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, entity.ChannelEmail)
}

// SendMail does the same for a physical letter.
func (h *DispatchHandler) SendMail(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, entity.ChannelPostal)
}

func (h *DispatchHandler) send(w http.ResponseWriter, r *http.Request, channel string) {
	var input usecase.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	input.Channel = channel

	job, err := h.SendUC.Execute(r.Context(), input)
	if err != nil {
		writeFailure(w, err)
		return
	}

	middleware.RecordDispatchAttempt(job.Channel, job.Status)
	writeJSON(w, http.StatusOK, job)
}

func (h *DispatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// Attempt is the explicit retry entry point. On a job that already reached
// sent or failed it is a no-op that returns the terminal state.
func (h *DispatchHandler) Attempt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	job, err := h.SendUC.Attempt(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}

	middleware.RecordDispatchAttempt(job.Channel, job.Status)
	writeJSON(w, http.StatusOK, job)
}
