package reservations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalAmount(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		nights    int
		quantity  int
		want      float64
	}{
		{"one night one unit", 45.00, 1, 1, 45.00},
		{"multi night multi unit", 45.00, 3, 2, 270.00},
		{"fractional price rounds to cents", 19.99, 3, 3, 179.91},
		{"repeating fraction", 33.33, 3, 1, 99.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, totalAmount(tt.unitPrice, tt.nights, tt.quantity), 0.001)
		})
	}
}

func TestGenerateReferenceNumber(t *testing.T) {
	ref := GenerateReferenceNumber()
	parts := strings.Split(ref, "-")

	assert.Len(t, parts, 3)
	assert.Equal(t, "RSV", parts[0])
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 8)
	assert.Equal(t, strings.ToUpper(ref), ref)

	// References must be unique across calls
	assert.NotEqual(t, ref, GenerateReferenceNumber())
}

func TestGenerateTransactionID(t *testing.T) {
	txn := GenerateTransactionID()
	assert.True(t, strings.HasPrefix(txn, "TXN-"))
	assert.NotEqual(t, txn, GenerateTransactionID())
}

func TestReservationNights(t *testing.T) {
	r := &Reservation{
		StartDate: day("2026-09-01"),
		EndDate:   day("2026-09-05"),
	}
	assert.Equal(t, 4, r.Nights())
}
