package models

import (
	"log"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables for all models.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&Source{},
		&Sticker{},
		&BrewDownload{},
	); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
