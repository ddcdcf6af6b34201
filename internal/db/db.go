package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"argus-backend/config"
	"argus-backend/internal/model"
)

// Init initializes the database connection and runs migrations.
//
// TranslateError is required: the reservation and vote guards rely on the
// driver's duplicate-key errors surfacing as gorm.ErrDuplicatedKey.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// Migrate creates or updates the schema for every entity. The composite
// unique indexes on reservations and votes carry the conflict guarantees, so
// migration must succeed before the API accepts writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Condominium{},
		&model.User{},
		&model.CommonArea{},
		&model.Reservation{},
		&model.Occurrence{},
		&model.Announcement{},
		&model.VotingSession{},
		&model.Vote{},
	)
}
