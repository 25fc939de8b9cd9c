package repository

import (
	"context"
	"time"

	"github.com/just-nibble/standup-service/internal/domain"
)

// DailyReportStore defines database operations on daily reports
type DailyReportStore interface {
	Create(ctx context.Context, report domain.DailyReport) (*domain.DailyReport, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]domain.DailyReport, error)
	ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]domain.DailyReport, error)
	GetByID(ctx context.Context, userID, id uint) (*domain.DailyReport, error)
	Delete(ctx context.Context, userID, id uint) error
	CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error)
	ListDatesDesc(ctx context.Context, userID uint) ([]time.Time, error)
}

// WeeklyReportStore defines database operations on weekly reports
type WeeklyReportStore interface {
	// Upsert replaces content and week end for an existing (user, week
	// start) pair, or inserts a new row. Atomic: a second generation for
	// the same week never creates a duplicate.
	Upsert(ctx context.Context, report domain.WeeklyReport) (*domain.WeeklyReport, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]domain.WeeklyReport, error)
	GetByID(ctx context.Context, userID, id uint) (*domain.WeeklyReport, error)
	Delete(ctx context.Context, userID, id uint) error
	CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error)
}

// OrganizationStore defines database operations on tracked organizations
type OrganizationStore interface {
	ListActiveByUser(ctx context.Context, userID uint) ([]domain.Organization, error)
	// ReplaceTrackedSet deactivates every link for the user, then upserts
	// and reactivates a link per submitted organization, all in one
	// transaction.
	ReplaceTrackedSet(ctx context.Context, userID uint, orgs []domain.Organization) error
}

// UserStore defines database operations on users
type UserStore interface {
	UpsertByGithubID(ctx context.Context, user domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
}

// SessionStore defines database operations on login sessions
type SessionStore interface {
	Create(ctx context.Context, session domain.Session) (*domain.Session, error)
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
