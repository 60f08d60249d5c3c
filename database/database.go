package database

import (
	"fmt"

	"artmarket-app/internal/domain/purchases"
	"artmarket-app/internal/domain/reviews"
	"artmarket-app/internal/domain/users"
	"artmarket-app/internal/domain/works"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and migrates the schema. The returned handle is
// passed explicitly into route registration; there is no package-level DB.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&works.Artwork{},
		&reviews.Review{},
		&purchases.Purchase{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
