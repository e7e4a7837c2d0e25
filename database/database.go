package database

import (
	"fmt"

	"quarters-app/internal/domain/catalog"
	"quarters-app/internal/domain/collection"
	"quarters-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and migrates the domain models. The returned
// handle is passed explicitly to every component that needs it.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for all domain models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&catalog.Series{},
		&catalog.Quarter{},
		&collection.CollectionEntry{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
