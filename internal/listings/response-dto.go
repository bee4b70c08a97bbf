package listings

// RatingSummary is the aggregated review score for a listing
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ListingDetailResponse is a listing with its rating summary attached
type ListingDetailResponse struct {
	Listing
	Rating *RatingSummary `json:"rating,omitempty"`
}

// PaginatedListingsResponse wraps a browse page
type PaginatedListingsResponse struct {
	Listings   []Listing `json:"listings"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}

// DayAvailability is the remaining bookable quantity for one day
type DayAvailability struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Available int    `json:"available"`
}

// AvailabilityResponse is the per-day availability window for a listing
type AvailabilityResponse struct {
	ListingID string            `json:"listing_id"`
	Capacity  int               `json:"capacity"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	Days      []DayAvailability `json:"days"`
}
