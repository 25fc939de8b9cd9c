package usecases

import (
	"context"
	"time"

	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/just-nibble/standup-service/internal/repository"
)

const recentDailyLimit = 5
const previewLength = 150

// Overview is the dashboard aggregate: monthly counts, the current streak
// and the most recent dailies.
type Overview struct {
	DailysThisMonth  int64
	WeeklysThisMonth int64
	Streak           int
	RecentDailys     []domain.DailyReport
}

type StatsUsecase interface {
	Overview(ctx context.Context, userID uint) (*Overview, error)
}

type statsUsecase struct {
	dailyStore  repository.DailyReportStore
	weeklyStore repository.WeeklyReportStore
	now         func() time.Time
}

func NewStatsUsecase(dailyStore repository.DailyReportStore, weeklyStore repository.WeeklyReportStore) StatsUsecase {
	return &statsUsecase{
		dailyStore:  dailyStore,
		weeklyStore: weeklyStore,
		now:         time.Now,
	}
}

func (u *statsUsecase) Overview(ctx context.Context, userID uint) (*Overview, error) {
	now := u.now().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	dailyCount, err := u.dailyStore.CountCreatedSince(ctx, userID, startOfMonth)
	if err != nil {
		return nil, err
	}
	weeklyCount, err := u.weeklyStore.CountCreatedSince(ctx, userID, startOfMonth)
	if err != nil {
		return nil, err
	}
	recent, err := u.dailyStore.ListByUser(ctx, userID, recentDailyLimit)
	if err != nil {
		return nil, err
	}
	dates, err := u.dailyStore.ListDatesDesc(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range recent {
		recent[i].Content = Preview(recent[i].Content)
	}

	return &Overview{
		DailysThisMonth:  dailyCount,
		WeeklysThisMonth: weeklyCount,
		Streak:           ComputeStreak(dates, now),
		RecentDailys:     recent,
	}, nil
}

// Preview truncates report content for list views.
func Preview(content string) string {
	if len(content) <= previewLength {
		return content
	}
	return content[:previewLength] + "..."
}

// ComputeStreak counts consecutive days with a daily report, walking
// backwards from today. A missing report for today does not break the
// streak as long as yesterday has one; any older gap ends it. Dates must
// be sorted newest first.
func ComputeStreak(dates []time.Time, today time.Time) int {
	today = midnight(today)

	streak := 0
	check := today
	for _, d := range dates {
		d = midnight(d)
		switch {
		case d.Equal(check):
			streak++
			check = check.AddDate(0, 0, -1)
		case d.Before(check):
			yesterday := today.AddDate(0, 0, -1)
			if streak == 0 && d.Equal(yesterday) {
				streak++
				check = yesterday.AddDate(0, 0, -1)
				continue
			}
			return streak
		}
	}
	return streak
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
