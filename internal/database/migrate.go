package database

import (
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates the uuid extension the id defaults rely on, then runs
// the gorm auto-migration for every model.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Match{},
		&models.MatchRequest{},
		&models.Notification{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migration complete")
	return nil
}
