package database

import (
	"strings"

	"gde/config"
	"gde/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// Connect opens the database connection. A postgres DSN or URL selects the
// Postgres driver, anything else is treated as a SQLite file path (local dev).
// Schema migration is a separate, explicit step; see Migrate.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") ||
		strings.HasPrefix(cfg.DatabaseURL, "postgresql://") ||
		strings.HasPrefix(cfg.DatabaseURL, "host=") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	Database = DbInstance{Db: db}
	return nil
}

// Migrate creates or updates the schema for every entity. It is idempotent
// and must run once before the server starts taking traffic.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Instrument{},
		&models.Course{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.MarketplaceItem{},
		&models.ScheduleItem{},
	)
}
