package listings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"campora/internal/amenities"
	"campora/internal/shared/config"
	"campora/internal/shared/constants"
	"campora/pkg/cache"
	"campora/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatusChange = errors.New("invalid listing status transition")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrUnknownAmenity      = errors.New("one or more amenities do not exist")
)

const dateLayout = "2006-01-02"

// DemandProvider reports reserved quantity per day for a listing. Implemented
// by the reservation ledger; injected after construction to avoid an import
// cycle.
type DemandProvider interface {
	DailyDemand(ctx context.Context, listingID string, from, to time.Time) (map[string]int, error)
}

// RatingProvider reports the aggregated review score for a listing
type RatingProvider interface {
	RatingSummary(ctx context.Context, listingID string) (average float64, count int64, err error)
}

// Service defines the listing business logic interface
type Service interface {
	// Public catalog
	Browse(ctx context.Context, kind Kind, query *BrowseQuery) (*PaginatedListingsResponse, error)
	GetDetail(ctx context.Context, id string) (*ListingDetailResponse, error)
	GetAvailability(ctx context.Context, id string, query *AvailabilityQuery) (*AvailabilityResponse, error)

	// Admin catalog
	Create(ctx context.Context, adminID string, req *CreateListingRequest) (*Listing, error)
	Update(ctx context.Context, id string, req *UpdateListingRequest) (*Listing, error)
	UpdateStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*Listing, error)
	Archive(ctx context.Context, id string) error
	AdminList(ctx context.Context, query *AdminListQuery) (*PaginatedListingsResponse, error)
	AdminGet(ctx context.Context, id string) (*Listing, error)
	AddImage(ctx context.Context, listingID, url string, position int) (*ListingImage, error)
	DeleteImage(ctx context.Context, listingID, imageID string) error

	SetDemandProvider(provider DemandProvider)
	SetRatingProvider(provider RatingProvider)
}

type service struct {
	repo        Repository
	amenityRepo amenities.Repository
	cache       cache.Service
	config      *config.Config
	logger      *logger.Logger

	demand DemandProvider
	rating RatingProvider
}

// NewService creates a new listing service
func NewService(repo Repository, amenityRepo amenities.Repository, cacheService cache.Service, cfg *config.Config, appLogger *logger.Logger) Service {
	return &service{
		repo:        repo,
		amenityRepo: amenityRepo,
		cache:       cacheService,
		config:      cfg,
		logger:      appLogger,
	}
}

func (s *service) SetDemandProvider(provider DemandProvider) {
	s.demand = provider
}

func (s *service) SetRatingProvider(provider RatingProvider) {
	s.rating = provider
}

func (s *service) Browse(ctx context.Context, kind Kind, query *BrowseQuery) (*PaginatedListingsResponse, error) {
	// Only unfiltered default-sorted pages are cached; filtered queries vary
	// too much to be worth the keyspace.
	if isCacheableBrowse(query) {
		var cached PaginatedListingsResponse
		key := constants.BuildListingListKey(string(kind), query.Page, query.Limit)
		err := s.cache.GetOrSet(ctx, key, constants.TTL_LISTINGS_LIST, func() (interface{}, error) {
			return s.browse(ctx, kind, query)
		}, &cached)
		if err != nil {
			return nil, err
		}
		return &cached, nil
	}

	return s.browse(ctx, kind, query)
}

func (s *service) browse(ctx context.Context, kind Kind, query *BrowseQuery) (*PaginatedListingsResponse, error) {
	items, total, err := s.repo.List(ctx, kind, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return paginate(items, total, query.Page, query.Limit), nil
}

func (s *service) GetDetail(ctx context.Context, id string) (*ListingDetailResponse, error) {
	var detail ListingDetailResponse
	err := s.cache.GetOrSet(ctx, constants.BuildListingDetailKey(id), constants.TTL_LISTING_DETAIL,
		func() (interface{}, error) {
			listing, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if !listing.IsBookable() {
				return nil, ErrListingNotFound
			}

			result := &ListingDetailResponse{Listing: *listing}
			if s.rating != nil {
				if avg, count, err := s.rating.RatingSummary(ctx, id); err == nil && count > 0 {
					result.Rating = &RatingSummary{Average: avg, Count: count}
				}
			}
			return result, nil
		}, &detail)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *service) GetAvailability(ctx context.Context, id string, query *AvailabilityQuery) (*AvailabilityResponse, error) {
	from, err := time.Parse(dateLayout, query.From)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	to, err := time.Parse(dateLayout, query.To)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	if !to.After(from) {
		return nil, ErrInvalidDateRange
	}
	if int(to.Sub(from).Hours()/24) > 2*s.config.Reservation.MaxStayNights {
		return nil, ErrInvalidDateRange
	}

	var result AvailabilityResponse
	key := constants.BuildAvailabilityKey(id, query.From, query.To)
	err = s.cache.GetOrSet(ctx, key, constants.TTL_AVAILABILITY, func() (interface{}, error) {
		listing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !listing.IsBookable() {
			return nil, ErrListingNotFound
		}

		demand := map[string]int{}
		if s.demand != nil {
			demand, err = s.demand.DailyDemand(ctx, id, from, to)
			if err != nil {
				return nil, fmt.Errorf("failed to compute demand: %w", err)
			}
		}

		resp := &AvailabilityResponse{
			ListingID: id,
			Capacity:  listing.Capacity,
			From:      query.From,
			To:        query.To,
		}
		for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
			date := day.Format(dateLayout)
			available := listing.Capacity - demand[date]
			if available < 0 {
				available = 0
			}
			resp.Days = append(resp.Days, DayAvailability{Date: date, Available: available})
		}
		return resp, nil
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) Create(ctx context.Context, adminID string, req *CreateListingRequest) (*Listing, error) {
	creatorID, err := uuid.Parse(adminID)
	if err != nil {
		return nil, fmt.Errorf("invalid creator id: %w", err)
	}

	listing := &Listing{
		Kind:        Kind(req.Kind),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Capacity:    req.Capacity,
		UnitPrice:   req.UnitPrice,
		Status:      StatusDraft,
		CreatedBy:   creatorID,
	}

	if len(req.AmenityIDs) > 0 {
		items, err := s.resolveAmenities(ctx, req.AmenityIDs)
		if err != nil {
			return nil, err
		}
		listing.Amenities = items
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	s.logger.LogListingCreated(ctx, listing.ID.String(), adminID)
	s.invalidateCache(ctx)
	return listing, nil
}

func (s *service) Update(ctx context.Context, id string, req *UpdateListingRequest) (*Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		listing.Name = *req.Name
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.Latitude != nil {
		listing.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		listing.Longitude = req.Longitude
	}
	if req.Capacity != nil {
		listing.Capacity = *req.Capacity
	}
	if req.UnitPrice != nil {
		listing.UnitPrice = *req.UnitPrice
	}

	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	if req.AmenityIDs != nil {
		items, err := s.resolveAmenities(ctx, *req.AmenityIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceAmenities(ctx, listing, items); err != nil {
			return nil, fmt.Errorf("failed to replace amenities: %w", err)
		}
		listing.Amenities = items
	}

	s.invalidateCache(ctx)
	return listing, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req *UpdateStatusRequest) (*Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target := Status(req.Status)
	if !listing.Status.CanTransitionTo(target) {
		return nil, ErrInvalidStatusChange
	}

	if err := s.repo.SetStatus(ctx, id, target); err != nil {
		return nil, err
	}

	listing.Status = target
	s.invalidateCache(ctx)
	return listing, nil
}

func (s *service) Archive(ctx context.Context, id string) error {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.Status == StatusArchived {
		return ErrInvalidStatusChange
	}
	if err := s.repo.SetStatus(ctx, id, StatusArchived); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) AdminList(ctx context.Context, query *AdminListQuery) (*PaginatedListingsResponse, error) {
	items, total, err := s.repo.AdminList(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return paginate(items, total, query.Page, query.Limit), nil
}

func (s *service) AdminGet(ctx context.Context, id string) (*Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) AddImage(ctx context.Context, listingID, url string, position int) (*ListingImage, error) {
	listing, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	image := &ListingImage{
		ListingID: listing.ID,
		URL:       url,
		Position:  position,
	}
	if err := s.repo.AddImage(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	s.invalidateCache(ctx)
	return image, nil
}

func (s *service) DeleteImage(ctx context.Context, listingID, imageID string) error {
	if err := s.repo.DeleteImage(ctx, listingID, imageID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) resolveAmenities(ctx context.Context, ids []string) ([]amenities.Amenity, error) {
	items, err := s.amenityRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch amenities: %w", err)
	}
	if len(items) != len(uniqueStrings(ids)) {
		return nil, ErrUnknownAmenity
	}
	return items, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_LISTINGS_ALL); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate listing cache", err, nil)
	}
}

func isCacheableBrowse(query *BrowseQuery) bool {
	return query.Search == "" &&
		query.Location == "" &&
		query.MinPrice == 0 &&
		query.MaxPrice == 0 &&
		query.Amenity == "" &&
		(query.Sort == "" || query.Sort == "created_at_desc")
}

func paginate(items []Listing, total int64, page, limit int) *PaginatedListingsResponse {
	return &PaginatedListingsResponse{
		Listings:   items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
