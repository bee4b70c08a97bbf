package reservations

import (
	"context"
	"errors"
	"time"

	"campora/internal/listings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrCapacityExceeded    = errors.New("not enough capacity for the requested dates")
	ErrInvalidTransition   = errors.New("invalid reservation status transition")
	ErrListingNotBookable  = errors.New("listing is not open for reservations")
)

// Repository defines the reservation ledger data access interface
type Repository interface {
	// CreateWithCapacityCheck inserts a reservation inside a transaction that
	// locks the listing row and verifies the capacity invariant first.
	CreateWithCapacityCheck(ctx context.Context, reservation *Reservation) error

	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListByUser(ctx context.Context, userID string, query *ListQuery) ([]Reservation, int64, error)
	AdminList(ctx context.Context, query *AdminListQuery) ([]Reservation, int64, error)

	// ApproveWithPayment moves PENDING to APPROVED and settles the simulated
	// payment in one transaction.
	ApproveWithPayment(ctx context.Context, id string, transactionID string) (*Reservation, error)
	Reject(ctx context.Context, id string, reason string) (*Reservation, error)

	// Cancel moves PENDING|APPROVED to CANCELLED, refunds a completed payment,
	// and invokes settle inside the same transaction.
	Cancel(ctx context.Context, id string, settle func(tx *gorm.DB, r *Reservation) error) (*Reservation, error)

	// CompleteDue marks APPROVED reservations whose end date has passed as
	// COMPLETED and returns them.
	CompleteDue(ctx context.Context, now time.Time) ([]Reservation, error)

	// DailyDemand sums held quantity per day for a listing over [from, to).
	DailyDemand(ctx context.Context, listingID string, from, to time.Time) (map[string]int, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new reservation repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

const dateLayout = "2006-01-02"

func (r *repository) CreateWithCapacityCheck(ctx context.Context, reservation *Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the listing row so concurrent bookings for the same listing
		// serialize on the capacity check
		var listing listings.Listing
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", reservation.ListingID).
			First(&listing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return listings.ErrListingNotFound
			}
			return err
		}

		if !listing.IsBookable() {
			return ErrListingNotBookable
		}

		var held []Reservation
		err = tx.
			Where("listing_id = ?", reservation.ListingID).
			Where("status IN ?", []Status{StatusPending, StatusApproved}).
			Where("start_date < ? AND end_date > ?", reservation.EndDate, reservation.StartDate).
			Find(&held).Error
		if err != nil {
			return err
		}

		if peak := peakDailyDemand(held, reservation.StartDate, reservation.EndDate); peak+reservation.Quantity > listing.Capacity {
			return ErrCapacityExceeded
		}

		return tx.Create(reservation).Error
	})
}

// peakDailyDemand returns the highest single-day held quantity over the
// half-open window [from, to). The invariant is per-day: two stays that touch
// only at the boundary never contend.
func peakDailyDemand(held []Reservation, from, to time.Time) int {
	peak := 0
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		demand := 0
		for _, h := range held {
			if h.StartDate.Before(day.AddDate(0, 0, 1)) && h.EndDate.After(day) {
				demand += h.Quantity
			}
		}
		if demand > peak {
			peak = demand
		}
	}
	return peak
}

func (r *repository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Payment").
		Where("id = ?", id).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string, query *ListQuery) ([]Reservation, int64, error) {
	db := r.db.WithContext(ctx).Model(&Reservation{}).Where("user_id = ?", userID)
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var result []Reservation
	offset := (query.Page - 1) * query.Limit
	err := db.
		Preload("Listing").
		Preload("Payment").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&result).Error

	return result, total, err
}

func (r *repository) AdminList(ctx context.Context, query *AdminListQuery) ([]Reservation, int64, error) {
	db := r.db.WithContext(ctx).Model(&Reservation{})
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.ListingID != "" {
		db = db.Where("listing_id = ?", query.ListingID)
	}
	if query.UserID != "" {
		db = db.Where("user_id = ?", query.UserID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var result []Reservation
	offset := (query.Page - 1) * query.Limit
	err := db.
		Preload("Listing").
		Preload("Payment").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&result).Error

	return result, total, err
}

func (r *repository) ApproveWithPayment(ctx context.Context, id string, transactionID string) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&reservation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if !reservation.Status.CanTransitionTo(StatusApproved) {
			return ErrInvalidTransition
		}

		reservation.Status = StatusApproved
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}

		payment := &Payment{
			ReservationID: reservation.ID,
			Amount:        reservation.TotalAmount,
			Status:        PaymentPending,
			Method:        "SIMULATED",
		}
		payment.MarkCompleted(transactionID)
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		reservation.Payment = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) Reject(ctx context.Context, id string, reason string) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&reservation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if !reservation.Status.CanTransitionTo(StatusRejected) {
			return ErrInvalidTransition
		}

		reservation.Status = StatusRejected
		reservation.RejectReason = reason
		return tx.Save(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) Cancel(ctx context.Context, id string, settle func(tx *gorm.DB, res *Reservation) error) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&reservation).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if !reservation.Status.CanBeCancelledByOwner() {
			return ErrInvalidTransition
		}

		now := time.Now()
		reservation.Status = StatusCancelled
		reservation.CancelledAt = &now
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}

		var payment Payment
		err = tx.Where("reservation_id = ?", reservation.ID).First(&payment).Error
		if err == nil && payment.Status == PaymentCompleted {
			payment.MarkRefunded()
			if err := tx.Save(&payment).Error; err != nil {
				return err
			}
			reservation.Payment = &payment
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if settle != nil {
			return settle(tx, &reservation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) CompleteDue(ctx context.Context, now time.Time) ([]Reservation, error) {
	var due []Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ? AND end_date <= ?", StatusApproved, now).
			Find(&due).Error
		if err != nil {
			return err
		}
		if len(due) == 0 {
			return nil
		}

		ids := make([]string, len(due))
		for i := range due {
			ids[i] = due[i].ID.String()
			due[i].Status = StatusCompleted
		}

		return tx.Model(&Reservation{}).
			Where("id IN ?", ids).
			Update("status", StatusCompleted).Error
	})
	return due, err
}

func (r *repository) DailyDemand(ctx context.Context, listingID string, from, to time.Time) (map[string]int, error) {
	var held []Reservation
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Where("status IN ?", []Status{StatusPending, StatusApproved}).
		Where("start_date < ? AND end_date > ?", to, from).
		Find(&held).Error
	if err != nil {
		return nil, err
	}

	demand := make(map[string]int)
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		total := 0
		for _, h := range held {
			if h.StartDate.Before(day.AddDate(0, 0, 1)) && h.EndDate.After(day) {
				total += h.Quantity
			}
		}
		if total > 0 {
			demand[day.Format(dateLayout)] = total
		}
	}
	return demand, nil
}
