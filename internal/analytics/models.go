package analytics

// DashboardResponse is the admin overview
type DashboardResponse struct {
	Listings     ListingStats     `json:"listings"`
	Reservations ReservationStats `json:"reservations"`
	Revenue      RevenueStats     `json:"revenue"`
	TotalUsers   int64            `json:"total_users"`
}

// ListingStats summarizes the catalog
type ListingStats struct {
	Total     int64            `json:"total"`
	Published int64            `json:"published"`
	ByKind    map[string]int64 `json:"by_kind"`
}

// ReservationStats summarizes ledger states
type ReservationStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
	Last30   int64            `json:"last_30_days"`
	Upcoming int64            `json:"upcoming"`
}

// RevenueStats summarizes settled payments
type RevenueStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalRefunded  float64 `json:"total_refunded"`
	NetRevenue     float64 `json:"net_revenue"`
	PaymentsCount  int64   `json:"payments_count"`
	AverageBooking float64 `json:"average_booking_value"`
}

// MonthlyRevenue is one month's settled revenue
type MonthlyRevenue struct {
	Month    string  `json:"month"` // YYYY-MM
	Revenue  float64 `json:"revenue"`
	Payments int64   `json:"payments"`
}

// ListingOccupancy is the booked share of one listing's capacity over a window
type ListingOccupancy struct {
	ListingID    string  `json:"listing_id"`
	Name         string  `json:"name"`
	Kind         string  `json:"kind"`
	Capacity     int     `json:"capacity"`
	HeldUnitDays int64   `json:"held_unit_days"`
	OccupancyPct float64 `json:"occupancy_pct"`
}

// OccupancyResponse is the occupancy report over a date window
type OccupancyResponse struct {
	From     string             `json:"from"`
	To       string             `json:"to"`
	Days     int                `json:"days"`
	Listings []ListingOccupancy `json:"listings"`
}

// DailyReservationStat is one day's reservation counts
type DailyReservationStat struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Created   int64  `json:"created"`
	Approved  int64  `json:"approved"`
	Cancelled int64  `json:"cancelled"`
}
