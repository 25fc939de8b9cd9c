package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/just-nibble/standup-service/internal/http/handlers"
	"github.com/just-nibble/standup-service/internal/usecases"
)

func TestStatsOverview(t *testing.T) {
	stats := new(MockStatsUsecase)
	stats.On("Overview", mock.Anything, uint(1)).Return(&usecases.Overview{
		DailysThisMonth:  4,
		WeeklysThisMonth: 1,
		Streak:           3,
		RecentDailys: []domain.DailyReport{
			{ID: 8, UserID: 1, Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Content: "Short preview"},
		},
	}, nil)

	h := handlers.NewStatsHandler(stats)
	rec := serve(t, http.MethodGet, "/api/stats", "/api/stats", nil, testUser(), h.Overview)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dailysThisMonth":4`)
	assert.Contains(t, rec.Body.String(), `"weeklysThisMonth":1`)
	assert.Contains(t, rec.Body.String(), `"streak":3`)
	assert.Contains(t, rec.Body.String(), "Short preview")
	stats.AssertExpectations(t)
}

func TestStatsOverviewUnauthenticated(t *testing.T) {
	h := handlers.NewStatsHandler(new(MockStatsUsecase))
	rec := serve(t, http.MethodGet, "/api/stats", "/api/stats", nil, nil, h.Overview)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}
