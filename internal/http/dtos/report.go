package dtos

import (
	"time"

	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/just-nibble/standup-service/internal/usecases"
)

const dateLayout = "2006-01-02"

type Daily struct {
	ID        uint      `json:"id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type MultiDailyResponse struct {
	Dailys []Daily `json:"dailys"`
}

type SingleDailyResponse struct {
	Daily Daily `json:"daily"`
}

type GenerateDailyRequest struct {
	Dates        []string `json:"dates"`
	Organization string   `json:"organization"`
}

type GenerateDailyResponse struct {
	Dailys []usecases.GeneratedDaily `json:"dailys"`
}

type Weekly struct {
	ID        uint      `json:"id"`
	WeekStart string    `json:"weekStart"`
	WeekEnd   string    `json:"weekEnd"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type MultiWeeklyResponse struct {
	Weeklys []Weekly `json:"weeklys"`
}

type SingleWeeklyResponse struct {
	Weekly Weekly `json:"weekly"`
}

type GenerateWeeklyRequest struct {
	WeekStart    string `json:"weekStart"`
	Source       string `json:"source"`
	Organization string `json:"organization"`
}

type StatsResponse struct {
	DailysThisMonth  int64   `json:"dailysThisMonth"`
	WeeklysThisMonth int64   `json:"weeklysThisMonth"`
	Streak           int     `json:"streak"`
	RecentDailys     []Daily `json:"recentDailys"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func FromDaily(d domain.DailyReport) Daily {
	return Daily{
		ID:        d.ID,
		Date:      d.Date.Format(dateLayout),
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDailies(reports []domain.DailyReport) []Daily {
	out := make([]Daily, 0, len(reports))
	for _, d := range reports {
		out = append(out, FromDaily(d))
	}
	return out
}

func FromWeekly(w domain.WeeklyReport) Weekly {
	return Weekly{
		ID:        w.ID,
		WeekStart: w.WeekStart.Format(dateLayout),
		WeekEnd:   w.WeekEnd.Format(dateLayout),
		Content:   w.Content,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func FromWeeklies(reports []domain.WeeklyReport) []Weekly {
	out := make([]Weekly, 0, len(reports))
	for _, w := range reports {
		out = append(out, FromWeekly(w))
	}
	return out
}
