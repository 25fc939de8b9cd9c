package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/just-nibble/standup-service/internal/http/dtos"
	"github.com/just-nibble/standup-service/internal/usecases"
	"github.com/just-nibble/standup-service/pkg/response"
)

const dailyListLimit = 50

type DailyHandler struct {
	reports usecases.ReportUsecase
}

func NewDailyHandler(reports usecases.ReportUsecase) *DailyHandler {
	return &DailyHandler{reports: reports}
}

// List returns the user's newest daily reports
func (h *DailyHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	dailies, err := h.reports.ListDailies(r.Context(), user.ID, dailyListLimit)
	if err != nil {
		writeError(w, err, "Daily not found", "Failed to fetch dailys")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.MultiDailyResponse{Dailys: dtos.FromDailies(dailies)})
}

// Get returns one daily report by id
func (h *DailyHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := parseID(w, r, "Daily not found")
	if !ok {
		return
	}

	daily, err := h.reports.GetDaily(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, err, "Daily not found", "Failed to fetch daily")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.SingleDailyResponse{Daily: dtos.FromDaily(*daily)})
}

// Delete removes one daily report
func (h *DailyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := parseID(w, r, "Daily not found")
	if !ok {
		return
	}

	if err := h.reports.DeleteDaily(r.Context(), user.ID, id); err != nil {
		writeError(w, err, "Daily not found", "Failed to delete daily")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.SuccessResponse{Success: true})
}

// Generate produces a summary for each requested date. Content is returned
// to the caller, not persisted.
func (h *DailyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	if user.AccessToken == "" || user.Email == "" {
		response.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dtos.GenerateDailyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dailies, err := h.reports.GenerateDailies(r.Context(), *user, req.Dates, req.Organization)
	if err != nil {
		writeError(w, err, "Daily not found", "Failed to generate daily")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.GenerateDailyResponse{Dailys: dailies})
}
