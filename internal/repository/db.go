package repository

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection pool and migrates the schema. The
// returned handle is shared process-wide.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&User{},
		&Session{},
		&Organization{},
		&UserOrganization{},
		&DailyReport{},
		&WeeklyReport{},
		&QueueJob{},
	); err != nil {
		return nil, err
	}

	log.Info().Msg("database migrated")
	return db, nil
}
