package analytics

import (
	"context"
	"time"

	"campora/internal/listings"
	"campora/internal/reservations"
	"campora/internal/users"

	"gorm.io/gorm"
)

// Repository runs the aggregate queries backing admin dashboards
type Repository interface {
	ListingStats(ctx context.Context) (*ListingStats, error)
	ReservationStats(ctx context.Context, now time.Time) (*ReservationStats, error)
	RevenueStats(ctx context.Context) (*RevenueStats, error)
	CountUsers(ctx context.Context) (int64, error)
	MonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenue, error)
	Occupancy(ctx context.Context, from, to time.Time) ([]ListingOccupancy, error)
	DailyReservationStats(ctx context.Context, days int) ([]DailyReservationStat, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new analytics repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListingStats(ctx context.Context) (*ListingStats, error) {
	stats := &ListingStats{ByKind: make(map[string]int64)}

	if err := r.db.WithContext(ctx).Model(&listings.Listing{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&listings.Listing{}).
		Where("status = ?", listings.StatusPublished).
		Count(&stats.Published).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Kind  string
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&listings.Listing{}).
		Select("kind, COUNT(*) AS count").
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.ByKind[row.Kind] = row.Count
	}

	return stats, nil
}

func (r *repository) ReservationStats(ctx context.Context, now time.Time) (*ReservationStats, error) {
	stats := &ReservationStats{ByStatus: make(map[string]int64)}

	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&reservations.Reservation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
	}

	if err := r.db.WithContext(ctx).Model(&reservations.Reservation{}).
		Where("created_at >= ?", now.AddDate(0, 0, -30)).
		Count(&stats.Last30).Error; err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&reservations.Reservation{}).
		Where("status = ? AND start_date > ?", reservations.StatusApproved, now).
		Count(&stats.Upcoming).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *repository) RevenueStats(ctx context.Context) (*RevenueStats, error) {
	var stats RevenueStats

	var paid struct {
		Total float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&reservations.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("status IN ?", []reservations.PaymentStatus{reservations.PaymentCompleted, reservations.PaymentRefunded}).
		Scan(&paid).Error
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = paid.Total
	stats.PaymentsCount = paid.Count

	err = r.db.WithContext(ctx).
		Table("refunds").
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", "REFUNDED").
		Scan(&stats.TotalRefunded).Error
	if err != nil {
		return nil, err
	}

	stats.NetRevenue = stats.TotalRevenue - stats.TotalRefunded
	if stats.PaymentsCount > 0 {
		stats.AverageBooking = stats.TotalRevenue / float64(stats.PaymentsCount)
	}

	return &stats, nil
}

func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&users.User{}).Count(&count).Error
	return count, err
}

func (r *repository) MonthlyRevenue(ctx context.Context, months int) ([]MonthlyRevenue, error) {
	var rows []MonthlyRevenue
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(date_trunc('month', paid_at), 'YYYY-MM') AS month,
		       COALESCE(SUM(amount), 0) AS revenue,
		       COUNT(*) AS payments
		FROM payments
		WHERE status IN ('COMPLETED', 'REFUNDED')
		  AND paid_at >= date_trunc('month', NOW()) - make_interval(months => ?)
		GROUP BY 1
		ORDER BY 1 ASC
	`, months-1).Scan(&rows).Error
	return rows, err
}

func (r *repository) Occupancy(ctx context.Context, from, to time.Time) ([]ListingOccupancy, error) {
	days := int(to.Sub(from).Hours() / 24)
	if days <= 0 {
		return nil, nil
	}

	var rows []ListingOccupancy
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.id AS listing_id,
		       l.name,
		       l.kind,
		       l.capacity,
		       COALESCE(SUM(
		           GREATEST(0, LEAST(r.end_date, ?::date) - GREATEST(r.start_date, ?::date)) * r.quantity
		       ), 0) AS held_unit_days
		FROM listings l
		LEFT JOIN reservations r
		  ON r.listing_id = l.id
		 AND r.status IN ('PENDING', 'APPROVED')
		 AND r.start_date < ?::date
		 AND r.end_date > ?::date
		WHERE l.status = 'PUBLISHED'
		GROUP BY l.id, l.name, l.kind, l.capacity
		ORDER BY held_unit_days DESC
	`, to.Format("2006-01-02"), from.Format("2006-01-02"),
		to.Format("2006-01-02"), from.Format("2006-01-02")).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		available := int64(rows[i].Capacity) * int64(days)
		if available > 0 {
			rows[i].OccupancyPct = float64(rows[i].HeldUnitDays) / float64(available) * 100
		}
	}

	return rows, nil
}

func (r *repository) DailyReservationStats(ctx context.Context, days int) ([]DailyReservationStat, error) {
	var rows []DailyReservationStat
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(created_at::date, 'YYYY-MM-DD') AS date,
		       COUNT(*) AS created,
		       COUNT(*) FILTER (WHERE status = 'APPROVED') AS approved,
		       COUNT(*) FILTER (WHERE status = 'CANCELLED') AS cancelled
		FROM reservations
		WHERE created_at >= NOW() - make_interval(days => ?)
		GROUP BY 1
		ORDER BY 1 ASC
	`, days).Scan(&rows).Error
	return rows, err
}
