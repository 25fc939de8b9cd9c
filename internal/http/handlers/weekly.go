package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/just-nibble/standup-service/internal/http/dtos"
	"github.com/just-nibble/standup-service/internal/usecases"
	"github.com/just-nibble/standup-service/pkg/response"
)

const weeklyListLimit = 20

type WeeklyHandler struct {
	reports usecases.ReportUsecase
}

func NewWeeklyHandler(reports usecases.ReportUsecase) *WeeklyHandler {
	return &WeeklyHandler{reports: reports}
}

// List returns the user's newest weekly reports
func (h *WeeklyHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	weeklies, err := h.reports.ListWeeklies(r.Context(), user.ID, weeklyListLimit)
	if err != nil {
		writeError(w, err, "Weekly not found", "Failed to fetch weeklys")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.MultiWeeklyResponse{Weeklys: dtos.FromWeeklies(weeklies)})
}

// Get returns one weekly report by id
func (h *WeeklyHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := parseID(w, r, "Weekly not found")
	if !ok {
		return
	}

	weekly, err := h.reports.GetWeekly(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, err, "Weekly not found", "Failed to fetch weekly")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.SingleWeeklyResponse{Weekly: dtos.FromWeekly(*weekly)})
}

// Delete removes one weekly report
func (h *WeeklyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := parseID(w, r, "Weekly not found")
	if !ok {
		return
	}

	if err := h.reports.DeleteWeekly(r.Context(), user.ID, id); err != nil {
		writeError(w, err, "Weekly not found", "Failed to delete weekly")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.SuccessResponse{Success: true})
}

// Generate produces and upserts one weekly summary. Regenerating the same
// week replaces the stored content.
func (h *WeeklyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	if user.AccessToken == "" || user.Email == "" {
		response.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.GenerateWeeklyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	weekly, err := h.reports.GenerateWeekly(r.Context(), *user, req.WeekStart, req.Source, req.Organization)
	if err != nil {
		writeError(w, err, "Weekly not found", "Failed to generate weekly")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.SingleWeeklyResponse{Weekly: dtos.FromWeekly(*weekly)})
}
