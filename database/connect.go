package database

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jamapi/models"
)

// Connect opens the Postgres connection, tunes the pool and migrates the
// schema. TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey and can be mapped to conflict errors.
func Connect(databaseURL string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database connection established")
	return db, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Jam{},
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Winner{},
		&models.Infraction{},
		&models.JamSpecificDetail{},
	)
}
