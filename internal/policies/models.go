package policies

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PolicyType determines how a cancellation fee is computed
type PolicyType string

const (
	PolicyNone       PolicyType = "NONE"       // full refund
	PolicyFixed      PolicyType = "FIXED"      // flat fee
	PolicyPercentage PolicyType = "PERCENTAGE" // percentage of the paid amount
)

// IsValidPolicyType reports whether the given string is a known policy type
func IsValidPolicyType(t string) bool {
	switch PolicyType(t) {
	case PolicyNone, PolicyFixed, PolicyPercentage:
		return true
	default:
		return false
	}
}

// CancellationPolicy is the per-listing rule for cancellation fees
type CancellationPolicy struct {
	ID        uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	ListingID uuid.UUID  `json:"listing_id" gorm:"type:uuid;uniqueIndex;not null"`
	Type      PolicyType `json:"type" gorm:"not null;default:'NONE'"`

	// FixedFee applies when Type is FIXED; Percentage (0-100) when PERCENTAGE.
	FixedFee   float64 `json:"fixed_fee" gorm:"not null;default:0"`
	Percentage float64 `json:"percentage" gorm:"not null;default:0"`

	// FreeCancelHours is the window before the start date during which
	// cancellation is free regardless of type. Zero means no free window.
	FreeCancelHours int `json:"free_cancel_hours" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CancellationPolicy) TableName() string {
	return "cancellation_policies"
}

// CalculateFee computes the cancellation fee for a paid amount given the
// time remaining until the reservation starts. The fee never exceeds the
// paid amount.
func (p *CancellationPolicy) CalculateFee(paidAmount float64, startDate, now time.Time) float64 {
	if paidAmount <= 0 {
		return 0
	}
	if p.FreeCancelHours > 0 {
		if startDate.Sub(now) >= time.Duration(p.FreeCancelHours)*time.Hour {
			return 0
		}
	}

	var fee float64
	switch p.Type {
	case PolicyFixed:
		fee = p.FixedFee
	case PolicyPercentage:
		fee = paidAmount * p.Percentage / 100
	default:
		return 0
	}

	if fee > paidAmount {
		fee = paidAmount
	}
	return roundToCents(fee)
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// RefundStatus is the lifecycle state of a refund record
type RefundStatus string

const (
	RefundPending  RefundStatus = "PENDING"
	RefundRefunded RefundStatus = "REFUNDED"
)

// Refund records money returned for a cancelled reservation
type Refund struct {
	ID            uuid.UUID    `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	ReservationID uuid.UUID    `json:"reservation_id" gorm:"type:uuid;not null;index"`
	PaymentID     uuid.UUID    `json:"payment_id" gorm:"type:uuid;not null"`
	Amount        float64      `json:"amount" gorm:"not null"`
	Fee           float64      `json:"fee" gorm:"not null;default:0"`
	Status        RefundStatus `json:"status" gorm:"not null;default:'PENDING'"`
	TransactionID string       `json:"transaction_id"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (Refund) TableName() string {
	return "refunds"
}

// MarkRefunded records the simulated refund settlement
func (r *Refund) MarkRefunded(transactionID string) {
	r.Status = RefundRefunded
	r.TransactionID = transactionID
}
