package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/standup-service/internal/domain"
)

// DailyReportStore mock
type DailyReportStore struct {
	mock.Mock
}

func (m *DailyReportStore) Create(ctx context.Context, report domain.DailyReport) (*domain.DailyReport, error) {
	args := m.Called(ctx, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *DailyReportStore) ListByUser(ctx context.Context, userID uint, limit int) ([]domain.DailyReport, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReport), args.Error(1)
}

func (m *DailyReportStore) ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]domain.DailyReport, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReport), args.Error(1)
}

func (m *DailyReportStore) GetByID(ctx context.Context, userID, id uint) (*domain.DailyReport, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *DailyReportStore) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *DailyReportStore) CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DailyReportStore) ListDatesDesc(ctx context.Context, userID uint) ([]time.Time, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

// WeeklyReportStore mock
type WeeklyReportStore struct {
	mock.Mock
}

func (m *WeeklyReportStore) Upsert(ctx context.Context, report domain.WeeklyReport) (*domain.WeeklyReport, error) {
	args := m.Called(ctx, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyReport), args.Error(1)
}

func (m *WeeklyReportStore) ListByUser(ctx context.Context, userID uint, limit int) ([]domain.WeeklyReport, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeeklyReport), args.Error(1)
}

func (m *WeeklyReportStore) GetByID(ctx context.Context, userID, id uint) (*domain.WeeklyReport, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyReport), args.Error(1)
}

func (m *WeeklyReportStore) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *WeeklyReportStore) CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

// OrganizationStore mock
type OrganizationStore struct {
	mock.Mock
}

func (m *OrganizationStore) ListActiveByUser(ctx context.Context, userID uint) ([]domain.Organization, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *OrganizationStore) ReplaceTrackedSet(ctx context.Context, userID uint, orgs []domain.Organization) error {
	args := m.Called(ctx, userID, orgs)
	return args.Error(0)
}

// UserStore mock
type UserStore struct {
	mock.Mock
}

func (m *UserStore) UpsertByGithubID(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// SessionStore mock
type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Create(ctx context.Context, session domain.Session) (*domain.Session, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *SessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *SessionStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
