package policies

// UpsertPolicyRequest is the admin payload for setting a listing's
// cancellation policy
type UpsertPolicyRequest struct {
	Type            string  `json:"type" binding:"required,oneof=NONE FIXED PERCENTAGE"`
	FixedFee        float64 `json:"fixed_fee" binding:"omitempty,gte=0"`
	Percentage      float64 `json:"percentage" binding:"omitempty,gte=0,lte=100"`
	FreeCancelHours int     `json:"free_cancel_hours" binding:"omitempty,gte=0"`
}
