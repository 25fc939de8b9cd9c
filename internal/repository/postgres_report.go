package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/just-nibble/standup-service/pkg/errcodes"
)

// GormDailyReportStore is a GORM-based implementation of DailyReportStore
type GormDailyReportStore struct {
	db *gorm.DB
}

// NewGormDailyReportStore initializes a new GormDailyReportStore
func NewGormDailyReportStore(db *gorm.DB) DailyReportStore {
	return &GormDailyReportStore{db: db}
}

func (s *GormDailyReportStore) Create(ctx context.Context, report domain.DailyReport) (*domain.DailyReport, error) {
	row := DailyReport{
		UserID:  report.UserID,
		Date:    report.Date,
		Content: report.Content,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	d := row.ToDomain()
	return &d, nil
}

func (s *GormDailyReportStore) ListByUser(ctx context.Context, userID uint, limit int) ([]domain.DailyReport, error) {
	var rows []DailyReport
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainDailies(rows), nil
}

func (s *GormDailyReportStore) ListByUserBetween(ctx context.Context, userID uint, from, to time.Time) ([]domain.DailyReport, error) {
	var rows []DailyReport
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainDailies(rows), nil
}

func (s *GormDailyReportStore) GetByID(ctx context.Context, userID, id uint) (*domain.DailyReport, error) {
	var row DailyReport
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcodes.ErrNoRecordFound
	}
	if err != nil {
		return nil, err
	}
	d := row.ToDomain()
	return &d, nil
}

func (s *GormDailyReportStore) Delete(ctx context.Context, userID, id uint) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&DailyReport{}).Error
}

func (s *GormDailyReportStore) CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&DailyReport{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (s *GormDailyReportStore) ListDatesDesc(ctx context.Context, userID uint) ([]time.Time, error) {
	var dates []time.Time
	err := s.db.WithContext(ctx).
		Model(&DailyReport{}).
		Where("user_id = ?", userID).
		Order("date DESC").
		Pluck("date", &dates).Error
	return dates, err
}

func toDomainDailies(rows []DailyReport) []domain.DailyReport {
	out := make([]domain.DailyReport, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}

// GormWeeklyReportStore is a GORM-based implementation of WeeklyReportStore
type GormWeeklyReportStore struct {
	db *gorm.DB
}

// NewGormWeeklyReportStore initializes a new GormWeeklyReportStore
func NewGormWeeklyReportStore(db *gorm.DB) WeeklyReportStore {
	return &GormWeeklyReportStore{db: db}
}

func (s *GormWeeklyReportStore) Upsert(ctx context.Context, report domain.WeeklyReport) (*domain.WeeklyReport, error) {
	row := WeeklyReport{
		UserID:    report.UserID,
		WeekStart: report.WeekStart,
		WeekEnd:   report.WeekEnd,
		Content:   report.Content,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "week_start"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "week_end", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller gets the surviving row's id on the update path
	var saved WeeklyReport
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND week_start = ?", report.UserID, report.WeekStart).
		First(&saved).Error
	if err != nil {
		return nil, err
	}
	w := saved.ToDomain()
	return &w, nil
}

func (s *GormWeeklyReportStore) ListByUser(ctx context.Context, userID uint, limit int) ([]domain.WeeklyReport, error) {
	var rows []WeeklyReport
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("week_start DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.WeeklyReport, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

func (s *GormWeeklyReportStore) GetByID(ctx context.Context, userID, id uint) (*domain.WeeklyReport, error) {
	var row WeeklyReport
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcodes.ErrNoRecordFound
	}
	if err != nil {
		return nil, err
	}
	w := row.ToDomain()
	return &w, nil
}

func (s *GormWeeklyReportStore) Delete(ctx context.Context, userID, id uint) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&WeeklyReport{}).Error
}

func (s *GormWeeklyReportStore) CountCreatedSince(ctx context.Context, userID uint, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&WeeklyReport{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}
