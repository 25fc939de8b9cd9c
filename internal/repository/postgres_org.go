package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/just-nibble/standup-service/internal/domain"
)

// GormOrganizationStore is a GORM-based implementation of OrganizationStore
type GormOrganizationStore struct {
	db *gorm.DB
}

// NewGormOrganizationStore initializes a new GormOrganizationStore
func NewGormOrganizationStore(db *gorm.DB) OrganizationStore {
	return &GormOrganizationStore{db: db}
}

func (s *GormOrganizationStore) ListActiveByUser(ctx context.Context, userID uint) ([]domain.Organization, error) {
	var links []UserOrganization
	err := s.db.WithContext(ctx).
		Preload("Organization").
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	orgs := make([]domain.Organization, 0, len(links))
	for i := range links {
		orgs = append(orgs, links[i].Organization.ToDomain())
	}
	return orgs, nil
}

func (s *GormOrganizationStore) ReplaceTrackedSet(ctx context.Context, userID uint, orgs []domain.Organization) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Deactivate everything first; the selected set is reactivated
		// below. Running inside one transaction so a crash cannot leave
		// the user with an empty tracked set.
		err := tx.Model(&UserOrganization{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error
		if err != nil {
			return err
		}

		for _, org := range orgs {
			name := org.Name
			if name == "" {
				name = org.Description
			}
			if name == "" {
				name = org.Login
			}
			row := Organization{
				GithubID:  org.ID,
				Login:     org.Login,
				Name:      name,
				AvatarURL: org.AvatarURL,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "github_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"login", "name", "avatar_url", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}

			var saved Organization
			if err := tx.Where("github_id = ?", org.ID).First(&saved).Error; err != nil {
				return err
			}

			link := UserOrganization{
				UserID:         userID,
				OrganizationID: saved.ID,
				IsActive:       true,
			}
			err = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "organization_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"is_active", "updated_at"}),
			}).Create(&link).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
