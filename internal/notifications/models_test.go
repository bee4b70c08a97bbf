package notifications

import (
	"testing"
	"time"

	"campora/internal/listings"
	"campora/internal/reservations"

	"github.com/stretchr/testify/assert"
)

func sampleReservation() *reservations.Reservation {
	return &reservations.Reservation{
		ReferenceNumber: "RSV-20260715-ABCD1234",
		StartDate:       time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC),
		Quantity:        2,
		TotalAmount:     239.94,
		Listing: &listings.Listing{
			Name: "Pine Ridge Campsite",
			Kind: listings.KindCampsite,
		},
	}
}

func TestNewWelcomeNotification(t *testing.T) {
	n := NewWelcomeNotification("jordan@example.com", "Jordan")

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, TypeWelcome, n.Type)
	assert.Equal(t, "jordan@example.com", n.RecipientEmail)
	assert.Equal(t, "Jordan", n.RecipientName)
	assert.Equal(t, "Jordan", n.Data["name"])
	assert.False(t, n.CreatedAt.IsZero())
	assert.Zero(t, n.Attempts)
}

func TestNewReservationCreatedNotification(t *testing.T) {
	res := sampleReservation()
	n := NewReservationCreatedNotification("jordan@example.com", "Jordan", res)

	assert.Equal(t, TypeReservationCreated, n.Type)
	assert.Contains(t, n.Subject, res.ReferenceNumber)
	assert.Equal(t, "RSV-20260715-ABCD1234", n.Data["reference_number"])
	assert.Equal(t, "2026-07-15", n.Data["start_date"])
	assert.Equal(t, "2026-07-18", n.Data["end_date"])
	assert.Equal(t, 2, n.Data["quantity"])
	assert.Equal(t, "239.94", n.Data["total_amount"])
	assert.Equal(t, "Pine Ridge Campsite", n.Data["listing_name"])
	assert.Equal(t, "CAMPSITE", n.Data["listing_kind"])
}

func TestNewReservationApprovedNotificationIncludesTransaction(t *testing.T) {
	res := sampleReservation()
	res.Payment = &reservations.Payment{TransactionID: "TXN-ABC123DEF4567"}

	n := NewReservationApprovedNotification("jordan@example.com", "Jordan", res)

	assert.Equal(t, TypeReservationApproved, n.Type)
	assert.Equal(t, "TXN-ABC123DEF4567", n.Data["transaction_id"])
}

func TestNewReservationRejectedNotificationIncludesReason(t *testing.T) {
	res := sampleReservation()
	res.RejectReason = "Site closed for maintenance"

	n := NewReservationRejectedNotification("jordan@example.com", "Jordan", res)

	assert.Equal(t, TypeReservationRejected, n.Type)
	assert.Equal(t, "Site closed for maintenance", n.Data["reason"])
}

func TestNewReservationCancelledNotificationIncludesRefund(t *testing.T) {
	res := sampleReservation()

	n := NewReservationCancelledNotification("jordan@example.com", "Jordan", res, 214.94)

	assert.Equal(t, TypeReservationCancelled, n.Type)
	assert.Equal(t, "214.94", n.Data["refund_amount"])
}

func TestReservationDataWithoutListing(t *testing.T) {
	res := sampleReservation()
	res.Listing = nil

	data := reservationData(res)

	assert.NotContains(t, data, "listing_name")
	assert.NotContains(t, data, "listing_kind")
}
