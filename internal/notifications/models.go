package notifications

import (
	"fmt"
	"time"

	"campora/internal/reservations"

	"github.com/google/uuid"
)

// NotificationType identifies what kind of email to render
type NotificationType string

const (
	TypeWelcome              NotificationType = "WELCOME"
	TypeReservationCreated   NotificationType = "RESERVATION_CREATED"
	TypeReservationApproved  NotificationType = "RESERVATION_APPROVED"
	TypeReservationRejected  NotificationType = "RESERVATION_REJECTED"
	TypeReservationCancelled NotificationType = "RESERVATION_CANCELLED"
)

// EmailNotification is the message published to the notification topic and
// consumed by the email workers
type EmailNotification struct {
	ID             string                 `json:"id"`
	Type           NotificationType       `json:"type"`
	RecipientEmail string                 `json:"recipient_email"`
	RecipientName  string                 `json:"recipient_name"`
	Subject        string                 `json:"subject"`
	Data           map[string]interface{} `json:"data"`
	CreatedAt      time.Time              `json:"created_at"`
	Attempts       int                    `json:"attempts"`
}

func newNotification(t NotificationType, email, name, subject string, data map[string]interface{}) *EmailNotification {
	return &EmailNotification{
		ID:             uuid.New().String(),
		Type:           t,
		RecipientEmail: email,
		RecipientName:  name,
		Subject:        subject,
		Data:           data,
		CreatedAt:      time.Now(),
	}
}

// NewWelcomeNotification builds the post-registration email
func NewWelcomeNotification(email, name string) *EmailNotification {
	return newNotification(TypeWelcome, email, name, "Welcome to Campora", map[string]interface{}{
		"name": name,
	})
}

func reservationData(r *reservations.Reservation) map[string]interface{} {
	data := map[string]interface{}{
		"reference_number": r.ReferenceNumber,
		"start_date":       r.StartDate.Format("2006-01-02"),
		"end_date":         r.EndDate.Format("2006-01-02"),
		"quantity":         r.Quantity,
		"total_amount":     fmt.Sprintf("%.2f", r.TotalAmount),
	}
	if r.Listing != nil {
		data["listing_name"] = r.Listing.Name
		data["listing_kind"] = string(r.Listing.Kind)
	}
	return data
}

// NewReservationCreatedNotification builds the booking confirmation request email
func NewReservationCreatedNotification(email, name string, r *reservations.Reservation) *EmailNotification {
	return newNotification(TypeReservationCreated, email, name,
		fmt.Sprintf("Reservation %s received", r.ReferenceNumber), reservationData(r))
}

// NewReservationApprovedNotification builds the approval email
func NewReservationApprovedNotification(email, name string, r *reservations.Reservation) *EmailNotification {
	data := reservationData(r)
	if r.Payment != nil {
		data["transaction_id"] = r.Payment.TransactionID
	}
	return newNotification(TypeReservationApproved, email, name,
		fmt.Sprintf("Reservation %s confirmed", r.ReferenceNumber), data)
}

// NewReservationRejectedNotification builds the rejection email
func NewReservationRejectedNotification(email, name string, r *reservations.Reservation) *EmailNotification {
	data := reservationData(r)
	data["reason"] = r.RejectReason
	return newNotification(TypeReservationRejected, email, name,
		fmt.Sprintf("Reservation %s could not be confirmed", r.ReferenceNumber), data)
}

// NewReservationCancelledNotification builds the cancellation email
func NewReservationCancelledNotification(email, name string, r *reservations.Reservation, refundAmount float64) *EmailNotification {
	data := reservationData(r)
	data["refund_amount"] = fmt.Sprintf("%.2f", refundAmount)
	return newNotification(TypeReservationCancelled, email, name,
		fmt.Sprintf("Reservation %s cancelled", r.ReferenceNumber), data)
}
