package amenities

import (
	"context"
	"errors"
	"fmt"

	"campora/internal/shared/constants"
	"campora/pkg/cache"
	"campora/pkg/logger"
)

var ErrSlugAlreadyExists = errors.New("amenity with this name already exists")

// Service defines the amenity business logic interface
type Service interface {
	Create(ctx context.Context, req *CreateAmenityRequest) (*Amenity, error)
	Update(ctx context.Context, id string, req *UpdateAmenityRequest) (*Amenity, error)
	Delete(ctx context.Context, id string) error
	GetBySlug(ctx context.Context, slug string) (*Amenity, error)
	List(ctx context.Context) ([]Amenity, error)
}

type service struct {
	repo   Repository
	cache  cache.Service
	logger *logger.Logger
}

// NewService creates a new amenity service
func NewService(repo Repository, cacheService cache.Service, appLogger *logger.Logger) Service {
	return &service{
		repo:   repo,
		cache:  cacheService,
		logger: appLogger,
	}
}

func (s *service) Create(ctx context.Context, req *CreateAmenityRequest) (*Amenity, error) {
	slug := Slugify(req.Name)

	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return nil, ErrSlugAlreadyExists
	}

	amenity := &Amenity{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Icon:        req.Icon,
	}

	if err := s.repo.Create(ctx, amenity); err != nil {
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}

	s.invalidateCache(ctx)
	return amenity, nil
}

func (s *service) Update(ctx context.Context, id string, req *UpdateAmenityRequest) (*Amenity, error) {
	amenity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		slug := Slugify(*req.Name)
		if slug != amenity.Slug {
			exists, err := s.repo.SlugExists(ctx, slug)
			if err != nil {
				return nil, fmt.Errorf("failed to check slug: %w", err)
			}
			if exists {
				return nil, ErrSlugAlreadyExists
			}
		}
		amenity.Name = *req.Name
		amenity.Slug = slug
	}
	if req.Description != nil {
		amenity.Description = *req.Description
	}
	if req.Icon != nil {
		amenity.Icon = *req.Icon
	}

	if err := s.repo.Update(ctx, amenity); err != nil {
		return nil, fmt.Errorf("failed to update amenity: %w", err)
	}

	s.invalidateCache(ctx)
	return amenity, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Amenity, error) {
	var amenity Amenity
	err := s.cache.GetOrSet(ctx, constants.BuildAmenityBySlugKey(slug), constants.TTL_AMENITY_DETAIL,
		func() (interface{}, error) {
			return s.repo.GetBySlug(ctx, slug)
		}, &amenity)
	if err != nil {
		return nil, err
	}
	return &amenity, nil
}

func (s *service) List(ctx context.Context) ([]Amenity, error) {
	var result []Amenity
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_AMENITIES_ACTIVE, constants.TTL_AMENITIES_ACTIVE,
		func() (interface{}, error) {
			return s.repo.List(ctx)
		}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_AMENITIES_ALL); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate amenity cache", err, nil)
	}
	// Listing pages embed amenity data
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_LISTINGS_ALL); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate listing cache", err, nil)
	}
}
