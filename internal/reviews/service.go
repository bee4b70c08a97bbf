package reviews

import (
	"context"
	"errors"
	"fmt"
	"math"

	"campora/internal/reservations"
	"campora/internal/shared/constants"
	"campora/pkg/cache"
	"campora/pkg/logger"
)

var (
	ErrReservationNotCompleted = errors.New("only completed reservations can be reviewed")
	ErrAlreadyReviewed         = errors.New("reservation has already been reviewed")
	ErrWrongListing            = errors.New("reservation is for a different listing")
)

// Service defines the review business logic interface
type Service interface {
	Create(ctx context.Context, userID, listingID string, req *CreateReviewRequest) (*Review, error)
	ListByListing(ctx context.Context, listingID string, query *ListQuery) (*PaginatedReviewsResponse, error)
	AdminDelete(ctx context.Context, id string) error

	// RatingSummary satisfies the listing catalog's rating provider
	RatingSummary(ctx context.Context, listingID string) (float64, int64, error)
}

type service struct {
	repo           Repository
	reservationSvc reservations.Service
	cache          cache.Service
	logger         *logger.Logger
}

// NewService creates a new review service
func NewService(repo Repository, reservationSvc reservations.Service, cacheService cache.Service, appLogger *logger.Logger) Service {
	return &service{
		repo:           repo,
		reservationSvc: reservationSvc,
		cache:          cacheService,
		logger:         appLogger,
	}
}

func (s *service) Create(ctx context.Context, userID, listingID string, req *CreateReviewRequest) (*Review, error) {
	reservation, err := s.reservationSvc.GetByID(ctx, userID, false, req.ReservationID)
	if err != nil {
		return nil, err
	}
	if reservation.Status != reservations.StatusCompleted {
		return nil, ErrReservationNotCompleted
	}
	if reservation.ListingID.String() != listingID {
		return nil, ErrWrongListing
	}

	exists, err := s.repo.ExistsForReservation(ctx, req.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	review := &Review{
		ListingID:     reservation.ListingID,
		UserID:        reservation.UserID,
		ReservationID: reservation.ID,
		Rating:        req.Rating,
		Title:         req.Title,
		Comment:       req.Comment,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.invalidateCache(ctx)
	return review, nil
}

func (s *service) ListByListing(ctx context.Context, listingID string, query *ListQuery) (*PaginatedReviewsResponse, error) {
	var resp PaginatedReviewsResponse
	key := constants.BuildReviewsPageKey(listingID, query.Page)
	err := s.cache.GetOrSet(ctx, key, constants.TTL_REVIEWS_PAGE, func() (interface{}, error) {
		items, total, err := s.repo.ListByListing(ctx, listingID, query)
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews: %w", err)
		}

		average, _, err := s.repo.RatingSummary(ctx, listingID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute rating: %w", err)
		}

		views := make([]ReviewResponse, 0, len(items))
		for i := range items {
			view := ReviewResponse{Review: items[i]}
			if items[i].User != nil {
				view.Reviewer = &ReviewerView{
					ID:        items[i].User.ID.String(),
					FirstName: items[i].User.FirstName,
					LastName:  items[i].User.LastName,
				}
				view.User = nil
			}
			views = append(views, view)
		}

		return &PaginatedReviewsResponse{
			Reviews:       views,
			AverageRating: math.Round(average*10) / 10,
			Total:         total,
			Page:          query.Page,
			Limit:         query.Limit,
			TotalPages:    int(math.Ceil(float64(total) / float64(query.Limit))),
		}, nil
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) AdminDelete(ctx context.Context, id string) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) RatingSummary(ctx context.Context, listingID string) (float64, int64, error) {
	var summary struct {
		Average float64 `json:"average"`
		Count   int64   `json:"count"`
	}
	err := s.cache.GetOrSet(ctx, constants.BuildRatingSummaryKey(listingID), constants.TTL_RATING_SUMMARY,
		func() (interface{}, error) {
			average, count, err := s.repo.RatingSummary(ctx, listingID)
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{
				"average": math.Round(average*10) / 10,
				"count":   count,
			}, nil
		}, &summary)
	if err != nil {
		return 0, 0, err
	}
	return summary.Average, summary.Count, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_REVIEWS_ALL); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate review cache", err, nil)
	}
	// Listing details embed the rating summary
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_LISTINGS_ALL); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate listing cache", err, nil)
	}
}
