package listings

import (
	"context"
	"errors"

	"campora/internal/amenities"

	"gorm.io/gorm"
)

var ErrListingNotFound = errors.New("listing not found")

// Repository defines the listing data access interface
type Repository interface {
	Create(ctx context.Context, listing *Listing) error
	Update(ctx context.Context, listing *Listing) error
	GetByID(ctx context.Context, id string) (*Listing, error)
	List(ctx context.Context, kind Kind, query *BrowseQuery) ([]Listing, int64, error)
	AdminList(ctx context.Context, query *AdminListQuery) ([]Listing, int64, error)
	SetStatus(ctx context.Context, id string, status Status) error
	ReplaceAmenities(ctx context.Context, listing *Listing, items []amenities.Amenity) error
	AddImage(ctx context.Context, image *ListingImage) error
	DeleteImage(ctx context.Context, listingID, imageID string) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new listing repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, listing *Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *repository) Update(ctx context.Context, listing *Listing) error {
	return r.db.WithContext(ctx).
		Omit("Amenities", "Images").
		Save(listing).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Listing, error) {
	var listing Listing
	err := r.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *repository) List(ctx context.Context, kind Kind, query *BrowseQuery) ([]Listing, int64, error) {
	db := r.db.WithContext(ctx).Model(&Listing{}).
		Where("kind = ?", kind).
		Where("status = ?", StatusPublished)
	db = applyBrowseFilters(db, query)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var result []Listing
	offset := (query.Page - 1) * query.Limit
	err := db.
		Preload("Amenities").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order(sortClause(query.Sort)).
		Offset(offset).
		Limit(query.Limit).
		Find(&result).Error

	return result, total, err
}

func (r *repository) AdminList(ctx context.Context, query *AdminListQuery) ([]Listing, int64, error) {
	db := r.db.WithContext(ctx).Model(&Listing{})
	if query.Kind != "" {
		db = db.Where("kind = ?", query.Kind)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR location ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var result []Listing
	offset := (query.Page - 1) * query.Limit
	err := db.
		Preload("Images").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&result).Error

	return result, total, err
}

func (r *repository) SetStatus(ctx context.Context, id string, status Status) error {
	result := r.db.WithContext(ctx).
		Model(&Listing{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (r *repository) ReplaceAmenities(ctx context.Context, listing *Listing, items []amenities.Amenity) error {
	return r.db.WithContext(ctx).
		Model(listing).
		Association("Amenities").
		Replace(items)
}

func (r *repository) AddImage(ctx context.Context, image *ListingImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *repository) DeleteImage(ctx context.Context, listingID, imageID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND listing_id = ?", imageID, listingID).
		Delete(&ListingImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

// applyBrowseFilters applies the public browse filters to a listings query
func applyBrowseFilters(db *gorm.DB, query *BrowseQuery) *gorm.DB {
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if query.Location != "" {
		db = db.Where("location ILIKE ?", "%"+query.Location+"%")
	}
	if query.MinPrice > 0 {
		db = db.Where("unit_price >= ?", query.MinPrice)
	}
	if query.MaxPrice > 0 {
		db = db.Where("unit_price <= ?", query.MaxPrice)
	}
	if query.Amenity != "" {
		db = db.Where(`id IN (
			SELECT la.listing_id FROM listing_amenities la
			JOIN amenities a ON a.id = la.amenity_id
			WHERE a.slug = ?
		)`, query.Amenity)
	}
	return db
}

func sortClause(sort string) string {
	switch sort {
	case "created_at_asc":
		return "created_at ASC"
	case "price_asc":
		return "unit_price ASC"
	case "price_desc":
		return "unit_price DESC"
	case "name_asc":
		return "name ASC"
	default:
		return "created_at DESC"
	}
}
