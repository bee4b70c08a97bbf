package analytics

import (
	"context"
	"fmt"
	"time"

	"campora/internal/shared/constants"
	"campora/pkg/cache"
	"campora/pkg/logger"
)

// Service defines the analytics business logic interface
type Service interface {
	Dashboard(ctx context.Context) (*DashboardResponse, error)
	Revenue(ctx context.Context, months int) ([]MonthlyRevenue, error)
	Occupancy(ctx context.Context) (*OccupancyResponse, error)
	DailyReservations(ctx context.Context, days int) ([]DailyReservationStat, error)
}

type service struct {
	repo   Repository
	cache  cache.Service
	logger *logger.Logger
}

// NewService creates a new analytics service
func NewService(repo Repository, cacheService cache.Service, appLogger *logger.Logger) Service {
	return &service{
		repo:   repo,
		cache:  cacheService,
		logger: appLogger,
	}
}

const occupancyWindowDays = 30

func (s *service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var dashboard DashboardResponse
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_ANALYTICS_DASHBOARD, constants.TTL_ANALYTICS_DASHBOARD,
		func() (interface{}, error) {
			now := time.Now()

			listingStats, err := s.repo.ListingStats(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to load listing stats: %w", err)
			}
			reservationStats, err := s.repo.ReservationStats(ctx, now)
			if err != nil {
				return nil, fmt.Errorf("failed to load reservation stats: %w", err)
			}
			revenueStats, err := s.repo.RevenueStats(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to load revenue stats: %w", err)
			}
			totalUsers, err := s.repo.CountUsers(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to count users: %w", err)
			}

			return &DashboardResponse{
				Listings:     *listingStats,
				Reservations: *reservationStats,
				Revenue:      *revenueStats,
				TotalUsers:   totalUsers,
			}, nil
		}, &dashboard)
	if err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (s *service) Revenue(ctx context.Context, months int) ([]MonthlyRevenue, error) {
	var result []MonthlyRevenue
	err := s.cache.GetOrSet(ctx, constants.BuildRevenueKey(months), constants.TTL_ANALYTICS_REVENUE,
		func() (interface{}, error) {
			return s.repo.MonthlyRevenue(ctx, months)
		}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) Occupancy(ctx context.Context) (*OccupancyResponse, error) {
	var result OccupancyResponse
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_ANALYTICS_OCCUPANCY, constants.TTL_ANALYTICS_OCCUPANCY,
		func() (interface{}, error) {
			from := time.Now().Truncate(24 * time.Hour)
			to := from.AddDate(0, 0, occupancyWindowDays)

			rows, err := s.repo.Occupancy(ctx, from, to)
			if err != nil {
				return nil, fmt.Errorf("failed to compute occupancy: %w", err)
			}

			return &OccupancyResponse{
				From:     from.Format("2006-01-02"),
				To:       to.Format("2006-01-02"),
				Days:     occupancyWindowDays,
				Listings: rows,
			}, nil
		}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) DailyReservations(ctx context.Context, days int) ([]DailyReservationStat, error) {
	var result []DailyReservationStat
	err := s.cache.GetOrSet(ctx, constants.BuildDailyStatsKey(days), constants.TTL_ANALYTICS_DAILY,
		func() (interface{}, error) {
			return s.repo.DailyReservationStats(ctx, days)
		}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
