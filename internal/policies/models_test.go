package policies

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFee(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	startSoon := now.Add(12 * time.Hour)
	startLater := now.Add(96 * time.Hour)

	t.Run("none policy charges nothing", func(t *testing.T) {
		p := &CancellationPolicy{Type: PolicyNone}
		assert.Equal(t, 0.0, p.CalculateFee(200, startSoon, now))
	})

	t.Run("fixed fee applies", func(t *testing.T) {
		p := &CancellationPolicy{Type: PolicyFixed, FixedFee: 25}
		assert.Equal(t, 25.0, p.CalculateFee(200, startSoon, now))
	})

	t.Run("fixed fee capped at paid amount", func(t *testing.T) {
		p := &CancellationPolicy{Type: PolicyFixed, FixedFee: 500}
		assert.Equal(t, 200.0, p.CalculateFee(200, startSoon, now))
	})

	t.Run("percentage fee applies", func(t *testing.T) {
		p := &CancellationPolicy{Type: PolicyPercentage, Percentage: 10}
		assert.Equal(t, 20.0, p.CalculateFee(200, startSoon, now))
	})

	t.Run("percentage rounds to cents", func(t *testing.T) {
		p := &CancellationPolicy{Type: PolicyPercentage, Percentage: 15}
		assert.Equal(t, 29.99, p.CalculateFee(199.90, startSoon, now))
	})

	t.Run("free cancel window waives the fee", func(t *testing.T) {
		p := &CancellationPolicy{Type: PolicyFixed, FixedFee: 25, FreeCancelHours: 48}
		assert.Equal(t, 0.0, p.CalculateFee(200, startLater, now))
	})

	t.Run("inside the free window the fee applies", func(t *testing.T) {
		p := &CancellationPolicy{Type: PolicyFixed, FixedFee: 25, FreeCancelHours: 48}
		assert.Equal(t, 25.0, p.CalculateFee(200, startSoon, now))
	})

	t.Run("nothing paid means nothing charged", func(t *testing.T) {
		p := &CancellationPolicy{Type: PolicyPercentage, Percentage: 50}
		assert.Equal(t, 0.0, p.CalculateFee(0, startSoon, now))
	})
}

func TestRefundMarkRefunded(t *testing.T) {
	refund := &Refund{Status: RefundPending}
	refund.MarkRefunded("REF-ABC123")

	assert.Equal(t, RefundRefunded, refund.Status)
	assert.Equal(t, "REF-ABC123", refund.TransactionID)
}

func TestIsValidPolicyType(t *testing.T) {
	assert.True(t, IsValidPolicyType("NONE"))
	assert.True(t, IsValidPolicyType("FIXED"))
	assert.True(t, IsValidPolicyType("PERCENTAGE"))
	assert.False(t, IsValidPolicyType("fixed"))
	assert.False(t, IsValidPolicyType("FLAT"))
}
