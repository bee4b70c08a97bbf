package reservations

// QuoteRequest asks for a price breakdown without creating a reservation
type QuoteRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateReservationRequest is the payload for placing a reservation
type CreateReservationRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// RejectRequest carries the admin's rejection reason
type RejectRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}

// ListQuery captures reservation list filters
type ListQuery struct {
	Page   int    `form:"page,default=1" binding:"omitempty,gt=0"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED COMPLETED"`
}

// AdminListQuery captures admin reservation list filters
type AdminListQuery struct {
	Page      int    `form:"page,default=1" binding:"omitempty,gt=0"`
	Limit     int    `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	Status    string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED COMPLETED"`
	ListingID string `form:"listing_id" binding:"omitempty,uuid"`
	UserID    string `form:"user_id" binding:"omitempty,uuid"`
}
