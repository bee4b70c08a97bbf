package database

import "fmt"

// applyConstraints adds constraints and indexes that AutoMigrate cannot express
func (db *DB) applyConstraints() error {
	statements := []string{
		// A reviewer gets exactly one review per reservation
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_reviews_unique_reservation
			ON reviews (reservation_id)`,

		// Overlap queries scan active holds for one listing ordered by date
		`CREATE INDEX IF NOT EXISTS idx_reservations_listing_dates
			ON reservations (listing_id, start_date, end_date)
			WHERE status IN ('PENDING', 'APPROVED')`,

		// Owner history listing
		`CREATE INDEX IF NOT EXISTS idx_reservations_user_created
			ON reservations (user_id, created_at DESC)`,

		// Completion sweeper scans approved stays past their end date
		`CREATE INDEX IF NOT EXISTS idx_reservations_status_end_date
			ON reservations (status, end_date)`,

		// Public browse filters by kind and status
		`CREATE INDEX IF NOT EXISTS idx_listings_kind_status
			ON listings (kind, status)`,

		// Date ranges are half-open and must be non-empty
		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'chk_reservations_date_order'
			) THEN
				ALTER TABLE reservations
					ADD CONSTRAINT chk_reservations_date_order CHECK (end_date > start_date);
			END IF;
		END $$`,

		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'chk_reservations_quantity_positive'
			) THEN
				ALTER TABLE reservations
					ADD CONSTRAINT chk_reservations_quantity_positive CHECK (quantity > 0);
			END IF;
		END $$`,

		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'chk_listings_capacity_positive'
			) THEN
				ALTER TABLE listings
					ADD CONSTRAINT chk_listings_capacity_positive CHECK (capacity > 0);
			END IF;
		END $$`,

		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'chk_reviews_rating_range'
			) THEN
				ALTER TABLE reviews
					ADD CONSTRAINT chk_reviews_rating_range CHECK (rating BETWEEN 1 AND 5);
			END IF;
		END $$`,
	}

	for _, stmt := range statements {
		if err := db.PostgreSQL.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to execute constraint statement: %w", err)
		}
	}

	return nil
}
