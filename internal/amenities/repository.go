package amenities

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrAmenityNotFound = errors.New("amenity not found")

// Repository defines the amenity data access interface
type Repository interface {
	Create(ctx context.Context, amenity *Amenity) error
	Update(ctx context.Context, amenity *Amenity) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Amenity, error)
	GetBySlug(ctx context.Context, slug string) (*Amenity, error)
	GetByIDs(ctx context.Context, ids []string) ([]Amenity, error)
	List(ctx context.Context) ([]Amenity, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new amenity repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, amenity *Amenity) error {
	return r.db.WithContext(ctx).Create(amenity).Error
}

func (r *repository) Update(ctx context.Context, amenity *Amenity) error {
	return r.db.WithContext(ctx).Save(amenity).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Amenity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAmenityNotFound
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Amenity, error) {
	var amenity Amenity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&amenity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, err
	}
	return &amenity, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Amenity, error) {
	var amenity Amenity
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&amenity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, err
	}
	return &amenity, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []string) ([]Amenity, error) {
	var result []Amenity
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&result).Error
	return result, err
}

func (r *repository) List(ctx context.Context) ([]Amenity, error) {
	var result []Amenity
	err := r.db.WithContext(ctx).Order("name ASC").Find(&result).Error
	return result, err
}

func (r *repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Amenity{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
