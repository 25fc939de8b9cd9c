package handlers

import (
	"net/http"

	"github.com/just-nibble/standup-service/internal/http/dtos"
	"github.com/just-nibble/standup-service/internal/usecases"
	"github.com/just-nibble/standup-service/pkg/response"
)

type StatsHandler struct {
	stats usecases.StatsUsecase
}

func NewStatsHandler(stats usecases.StatsUsecase) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview returns monthly counts, the current streak and recent dailies
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	overview, err := h.stats.Overview(r.Context(), user.ID)
	if err != nil {
		writeError(w, err, "Stats not found", "Failed to fetch stats")
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.StatsResponse{
		DailysThisMonth:  overview.DailysThisMonth,
		WeeklysThisMonth: overview.WeeklysThisMonth,
		Streak:           overview.Streak,
		RecentDailys:     dtos.FromDailies(overview.RecentDailys),
	})
}
