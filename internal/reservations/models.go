package reservations

import (
	"fmt"
	"strings"
	"time"

	"campora/internal/listings"

	"github.com/google/uuid"
)

// Reservation is one entry in the ledger: a claim on some quantity of a
// listing over a half-open date range [StartDate, EndDate). Campsite stays,
// activity seats, and equipment rentals all live in this one table.
type Reservation struct {
	ID              uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	ReferenceNumber string    `json:"reference_number" gorm:"uniqueIndex;not null"`

	UserID    uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index"`
	ListingID uuid.UUID         `json:"listing_id" gorm:"type:uuid;not null;index"`
	Listing   *listings.Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`

	StartDate time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate   time.Time `json:"end_date" gorm:"type:date;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`

	// Price snapshot at booking time; listing price changes never reprice
	// existing reservations.
	UnitPrice   float64 `json:"unit_price" gorm:"not null"`
	TotalAmount float64 `json:"total_amount" gorm:"not null"`

	Status       Status     `json:"status" gorm:"not null;default:'PENDING';index"`
	RejectReason string     `json:"reject_reason,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`

	Payment *Payment `json:"payment,omitempty" gorm:"foreignKey:ReservationID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// Nights returns the number of billable days in the range
func (r *Reservation) Nights() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// GenerateReferenceNumber builds a human-readable booking reference
func GenerateReferenceNumber() string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("RSV-%s-%s", time.Now().Format("20060102"), suffix)
}

// PaymentStatus is the lifecycle state of a payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment records the simulated charge for a reservation. It is created and
// settled when an admin approves the reservation.
type Payment struct {
	ID            uuid.UUID     `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	ReservationID uuid.UUID     `json:"reservation_id" gorm:"type:uuid;uniqueIndex;not null"`
	Amount        float64       `json:"amount" gorm:"not null"`
	Status        PaymentStatus `json:"status" gorm:"not null;default:'PENDING'"`
	Method        string        `json:"method" gorm:"not null;default:'SIMULATED'"`
	TransactionID string        `json:"transaction_id"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// MarkCompleted settles the payment with a transaction reference
func (p *Payment) MarkCompleted(transactionID string) {
	now := time.Now()
	p.Status = PaymentCompleted
	p.TransactionID = transactionID
	p.PaidAt = &now
}

// MarkRefunded flags the payment as returned to the customer
func (p *Payment) MarkRefunded() {
	p.Status = PaymentRefunded
}

// GenerateTransactionID builds a simulated payment gateway reference
func GenerateTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.New().String()[:13])
}
