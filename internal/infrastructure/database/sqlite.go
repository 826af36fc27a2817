package database

import (
	"fmt"
	"log"

	"github.com/nivaranatech/opsdesk-api/internal/config"
	"github.com/nivaranatech/opsdesk-api/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the settings database. Settings are the only
// durable state; the entity collections are rebuilt from seed data on
// every start.
func NewSQLiteDB(cfg *config.SettingsConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}

	log.Printf("Settings database ready at %s", cfg.DBPath)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for the durable entities
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Setting{})
}
