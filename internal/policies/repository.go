package policies

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPolicyNotFound = errors.New("cancellation policy not found")

// Repository defines the policy data access interface
type Repository interface {
	UpsertPolicy(ctx context.Context, policy *CancellationPolicy) error
	GetPolicyByListing(ctx context.Context, listingID string) (*CancellationPolicy, error)
	CreateRefund(ctx context.Context, tx *gorm.DB, refund *Refund) error
	GetRefundsByReservation(ctx context.Context, reservationID string) ([]Refund, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new policy repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) UpsertPolicy(ctx context.Context, policy *CancellationPolicy) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "listing_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"type", "fixed_fee", "percentage", "free_cancel_hours", "updated_at",
			}),
		}).
		Create(policy).Error
}

func (r *repository) GetPolicyByListing(ctx context.Context, listingID string) (*CancellationPolicy, error) {
	var policy CancellationPolicy
	err := r.db.WithContext(ctx).Where("listing_id = ?", listingID).First(&policy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}
	return &policy, nil
}

// CreateRefund writes a refund record, joining the caller's transaction when
// one is supplied so the refund lands atomically with the cancellation.
func (r *repository) CreateRefund(ctx context.Context, tx *gorm.DB, refund *Refund) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Create(refund).Error
}

func (r *repository) GetRefundsByReservation(ctx context.Context, reservationID string) ([]Refund, error) {
	var refunds []Refund
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("created_at DESC").
		Find(&refunds).Error
	return refunds, err
}
