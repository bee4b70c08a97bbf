package reservations

// Status is the ledger state of a reservation.
//
//	PENDING ──(admin approve)──▶ APPROVED ──(end date passes)──▶ COMPLETED
//	   │                            │
//	   ├──(admin reject)──▶ REJECTED
//	   └──────(owner cancel)────────┴──▶ CANCELLED
//
// COMPLETED, CANCELLED and REJECTED are terminal.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// IsValidStatus reports whether the given string is a known reservation status
func IsValidStatus(status string) bool {
	switch Status(status) {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CountsTowardCapacity reports whether the reservation holds inventory.
// Pending holds count so an approval can never be blocked by demand that
// arrived after the request.
func (s Status) CountsTowardCapacity() bool {
	return s == StatusPending || s == StatusApproved
}

// CanTransitionTo reports whether the state machine allows the move
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusApproved || target == StatusRejected || target == StatusCancelled
	case StatusApproved:
		return target == StatusCancelled || target == StatusCompleted
	default:
		return false
	}
}

// CanBeCancelledByOwner reports whether the owner may still cancel
func (s Status) CanBeCancelledByOwner() bool {
	return s == StatusPending || s == StatusApproved
}
