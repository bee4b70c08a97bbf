package listings

// Status is the lifecycle state of a listing
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

// IsValidStatus reports whether the given string is a known listing status
func IsValidStatus(status string) bool {
	switch Status(status) {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a listing status change is allowed.
// Archived listings stay archived; drafts and published listings may move
// freely between draft and published, or be archived.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return false
	}
	switch s {
	case StatusDraft:
		return target == StatusPublished || target == StatusArchived
	case StatusPublished:
		return target == StatusDraft || target == StatusArchived
	case StatusArchived:
		return false
	default:
		return false
	}
}
