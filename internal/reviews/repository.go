package reviews

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

var ErrReviewNotFound = errors.New("review not found")

// Repository defines the review data access interface
type Repository interface {
	Create(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id string) (*Review, error)
	ListByListing(ctx context.Context, listingID string, query *ListQuery) ([]Review, int64, error)
	ExistsForReservation(ctx context.Context, reservationID string) (bool, error)
	RatingSummary(ctx context.Context, listingID string) (float64, int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new review repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, review *Review) error {
	err := r.db.WithContext(ctx).Create(review).Error
	// A concurrent create can slip past the existence pre-check; the unique
	// index on reservation_id is the arbiter
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrAlreadyReviewed
	}
	return err
}

func (r *repository) Delete(ctx context.Context, id string) (*Review, error) {
	var review Review
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *repository) ListByListing(ctx context.Context, listingID string, query *ListQuery) ([]Review, int64, error) {
	db := r.db.WithContext(ctx).Model(&Review{}).Where("listing_id = ?", listingID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var result []Review
	offset := (query.Page - 1) * query.Limit
	err := db.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&result).Error

	return result, total, err
}

func (r *repository) ExistsForReservation(ctx context.Context, reservationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Review{}).
		Where("reservation_id = ?", reservationID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) RatingSummary(ctx context.Context, listingID string) (float64, int64, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("listing_id = ?", listingID).
		Scan(&row).Error
	return row.Average, row.Count, err
}
