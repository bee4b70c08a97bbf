package reservations

// QuoteResponse is the price breakdown for a prospective reservation
type QuoteResponse struct {
	ListingID   string  `json:"listing_id"`
	ListingName string  `json:"listing_name"`
	Kind        string  `json:"kind"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Nights      int     `json:"nights"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalAmount float64 `json:"total_amount"`
}

// CancellationResponse reports the outcome of a cancellation
type CancellationResponse struct {
	Reservation  *Reservation `json:"reservation"`
	Fee          float64      `json:"fee"`
	RefundAmount float64      `json:"refund_amount"`
	PolicyType   string       `json:"policy_type"`
}

// PaginatedReservationsResponse wraps a reservation list page
type PaginatedReservationsResponse struct {
	Reservations []Reservation `json:"reservations"`
	Total        int64         `json:"total"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
	TotalPages   int           `json:"total_pages"`
}
