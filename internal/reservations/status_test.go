package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"approved to cancelled", StatusApproved, StatusCancelled, true},
		{"approved to completed", StatusApproved, StatusCompleted, true},
		{"approved to rejected", StatusApproved, StatusRejected, false},
		{"approved to pending", StatusApproved, StatusPending, false},
		{"rejected is terminal", StatusRejected, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusApproved, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestStatusCountsTowardCapacity(t *testing.T) {
	assert.True(t, StatusPending.CountsTowardCapacity())
	assert.True(t, StatusApproved.CountsTowardCapacity())
	assert.False(t, StatusRejected.CountsTowardCapacity())
	assert.False(t, StatusCancelled.CountsTowardCapacity())
	assert.False(t, StatusCompleted.CountsTowardCapacity())
}

func TestStatusCanBeCancelledByOwner(t *testing.T) {
	assert.True(t, StatusPending.CanBeCancelledByOwner())
	assert.True(t, StatusApproved.CanBeCancelledByOwner())
	assert.False(t, StatusCompleted.CanBeCancelledByOwner())
	assert.False(t, StatusRejected.CanBeCancelledByOwner())
	assert.False(t, StatusCancelled.CanBeCancelledByOwner())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("PENDING"))
	assert.True(t, IsValidStatus("COMPLETED"))
	assert.False(t, IsValidStatus("pending"))
	assert.False(t, IsValidStatus("CONFIRMED"))
	assert.False(t, IsValidStatus(""))
}
