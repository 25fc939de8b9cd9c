package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/just-nibble/standup-service/internal/http/dtos"
	"github.com/just-nibble/standup-service/internal/usecases"
	"github.com/just-nibble/standup-service/pkg/response"
)

type OrganizationHandler struct {
	orgs usecases.OrganizationUsecase
}

func NewOrganizationHandler(orgs usecases.OrganizationUsecase) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs}
}

// ListRemote returns the organizations visible to the user on GitHub
func (h *OrganizationHandler) ListRemote(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	if user.AccessToken == "" {
		response.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orgs, err := h.orgs.ListRemote(r.Context(), *user)
	if err != nil {
		writeError(w, err, "Organization not found", "Failed to fetch organizations")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.OrganizationsResponse{Organizations: orgs})
}

// ListTracked returns the user's persisted tracked subset
func (h *OrganizationHandler) ListTracked(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	orgs, err := h.orgs.ListTracked(r.Context(), user.ID)
	if err != nil {
		writeError(w, err, "Organization not found", "Failed to fetch organizations")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.OrganizationsResponse{Organizations: orgs})
}

// SaveTracked replaces the user's tracked subset
func (h *OrganizationHandler) SaveTracked(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dtos.SaveOrganizationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.orgs.SaveTracked(r.Context(), user.ID, req.ToDomain()); err != nil {
		writeError(w, err, "Organization not found", "Failed to save organizations")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.SuccessResponse{Success: true})
}
