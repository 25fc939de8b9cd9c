package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/just-nibble/standup-service/pkg/errcodes"
)

// GormUserStore is a GORM-based implementation of UserStore
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore initializes a new GormUserStore
func NewGormUserStore(db *gorm.DB) UserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) UpsertByGithubID(ctx context.Context, user domain.User) (*domain.User, error) {
	row := User{
		GithubID:    user.GithubID,
		Login:       user.Login,
		Name:        user.Name,
		Email:       user.Email,
		AvatarURL:   user.AvatarURL,
		AccessToken: user.AccessToken,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "github_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"login", "name", "email", "avatar_url", "access_token", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, err
	}

	var saved User
	if err := s.db.WithContext(ctx).Where("github_id = ?", user.GithubID).First(&saved).Error; err != nil {
		return nil, err
	}
	return saved.ToDomain(), nil
}

func (s *GormUserStore) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var row User
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcodes.ErrNoRecordFound
	}
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// GormSessionStore is a GORM-based implementation of SessionStore
type GormSessionStore struct {
	db *gorm.DB
}

// NewGormSessionStore initializes a new GormSessionStore
func NewGormSessionStore(db *gorm.DB) SessionStore {
	return &GormSessionStore{db: db}
}

func (s *GormSessionStore) Create(ctx context.Context, session domain.Session) (*domain.Session, error) {
	row := Session{
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

func (s *GormSessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var row Session
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errcodes.ErrNoRecordFound
	}
	if err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

func (s *GormSessionStore) Delete(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&Session{}).Error
}
