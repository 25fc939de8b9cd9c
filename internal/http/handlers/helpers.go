package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/just-nibble/standup-service/internal/auth"
	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/just-nibble/standup-service/pkg/errcodes"
	"github.com/just-nibble/standup-service/pkg/response"
)

// currentUser pulls the session user off the context. The auth middleware
// guarantees it is present on every /api route; the guard stays for routes
// wired without it.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		response.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}

func parseID(w http.ResponseWriter, r *http.Request, notFoundMsg string) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(w, http.StatusNotFound, notFoundMsg)
		return 0, false
	}
	return uint(id), true
}

// writeError maps usecase errors onto the API's status codes. Validation
// messages reach the client; anything unexpected is logged and replaced
// with the generic message.
func writeError(w http.ResponseWriter, err error, notFoundMsg, genericMsg string) {
	switch {
	case errors.Is(err, errcodes.ErrValidation):
		response.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, errcodes.ErrNoRecordFound):
		response.ErrorResponse(w, http.StatusNotFound, notFoundMsg)
	default:
		log.Error().Err(err).Msg(genericMsg)
		response.ErrorResponse(w, http.StatusInternalServerError, genericMsg)
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), errcodes.ErrValidation.Error()+": ")
	if msg == "" {
		return "Invalid request"
	}
	return msg
}
