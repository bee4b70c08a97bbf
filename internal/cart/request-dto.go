package cart

// AddItemRequest is the payload for adding an item to the cart
type AddItemRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CheckoutItemResult reports the per-item outcome of a checkout
type CheckoutItemResult struct {
	ItemID          string `json:"item_id"`
	ListingID       string `json:"listing_id"`
	ReservationID   string `json:"reservation_id,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	Status          string `json:"status"` // "CREATED" or "FAILED"
	Error           string `json:"error,omitempty"`
}

// CheckoutResponse summarizes a checkout run
type CheckoutResponse struct {
	Results   []CheckoutItemResult `json:"results"`
	Created   int                  `json:"created"`
	Failed    int                  `json:"failed"`
	TotalPaid float64              `json:"total_amount"`
}
