package database

import (
	"fmt"

	"campora/internal/amenities"
	"campora/internal/listings"
	"campora/internal/policies"
	"campora/internal/reservations"
	"campora/internal/reviews"
	"campora/internal/users"
)

// migrate runs auto-migration for all models
func (db *DB) migrate() error {
	db.logger.Info("Running database migrations...")

	// Ensure uuid generation is available before any model uses it
	if err := db.PostgreSQL.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	models := []interface{}{
		&users.User{},
		&amenities.Amenity{},
		&listings.Listing{},
		&listings.ListingImage{},
		&policies.CancellationPolicy{},
		&reservations.Reservation{},
		&reservations.Payment{},
		&policies.Refund{},
		&reviews.Review{},
	}

	for _, model := range models {
		if err := db.PostgreSQL.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	if err := db.applyConstraints(); err != nil {
		return fmt.Errorf("failed to apply constraints: %w", err)
	}

	db.logger.Info("Database migrations completed successfully")
	return nil
}
