package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/just-nibble/standup-service/internal/usecases"
)

type MockReportUsecase struct {
	mock.Mock
}

func (m *MockReportUsecase) GenerateDailies(ctx context.Context, user domain.User, dates []string, org string) ([]usecases.GeneratedDaily, error) {
	args := m.Called(ctx, user, dates, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecases.GeneratedDaily), args.Error(1)
}

func (m *MockReportUsecase) GenerateWeekly(ctx context.Context, user domain.User, weekStart, source, org string) (*domain.WeeklyReport, error) {
	args := m.Called(ctx, user, weekStart, source, org)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyReport), args.Error(1)
}

func (m *MockReportUsecase) ListDailies(ctx context.Context, userID uint, limit int) ([]domain.DailyReport, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReport), args.Error(1)
}

func (m *MockReportUsecase) GetDaily(ctx context.Context, userID, id uint) (*domain.DailyReport, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockReportUsecase) DeleteDaily(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockReportUsecase) ListWeeklies(ctx context.Context, userID uint, limit int) ([]domain.WeeklyReport, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeeklyReport), args.Error(1)
}

func (m *MockReportUsecase) GetWeekly(ctx context.Context, userID, id uint) (*domain.WeeklyReport, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklyReport), args.Error(1)
}

func (m *MockReportUsecase) DeleteWeekly(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type MockStatsUsecase struct {
	mock.Mock
}

func (m *MockStatsUsecase) Overview(ctx context.Context, userID uint) (*usecases.Overview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecases.Overview), args.Error(1)
}

type MockOrganizationUsecase struct {
	mock.Mock
}

func (m *MockOrganizationUsecase) ListRemote(ctx context.Context, user domain.User) ([]domain.Organization, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrganizationUsecase) ListTracked(ctx context.Context, userID uint) ([]domain.Organization, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}

func (m *MockOrganizationUsecase) SaveTracked(ctx context.Context, userID uint, orgs []domain.Organization) error {
	args := m.Called(ctx, userID, orgs)
	return args.Error(0)
}
