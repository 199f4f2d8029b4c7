package db

import (
	"fmt"

	"github.com/avandyck/daypack/internal/models"
	"gorm.io/gorm"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.DailyEntry{},
		&models.Idea{},
		&models.WeeklyOutcome{},
		&models.Todo{},
		&models.DecisionGate{},
		&models.Contact{},
		&models.Discovery{},
		&models.Expense{},
	}
}

// AutoMigrate creates or updates all entity tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}
