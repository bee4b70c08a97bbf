package listings

import (
	"time"

	"campora/internal/amenities"

	"github.com/google/uuid"
)

// Kind discriminates the three bookable inventory types. They share one
// catalog and one reservation ledger; pricing semantics differ per kind
// (per night, per person-day, per item-day) but the math is identical.
type Kind string

const (
	KindCampsite  Kind = "CAMPSITE"
	KindActivity  Kind = "ACTIVITY"
	KindEquipment Kind = "EQUIPMENT"
)

// Listing is a bookable inventory item: a campsite pitch, a guided
// activity, or a rentable piece of equipment
type Listing struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Kind        Kind      `json:"kind" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Location    string    `json:"location" gorm:"index"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`

	// Capacity is the number of units bookable for any one day: pitches for a
	// campsite, seats for an activity, stock on hand for equipment.
	Capacity  int     `json:"capacity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"`

	Status    Status              `json:"status" gorm:"not null;default:'DRAFT'"`
	Amenities []amenities.Amenity `json:"amenities,omitempty" gorm:"many2many:listing_amenities"`
	Images    []ListingImage      `json:"images,omitempty" gorm:"foreignKey:ListingID"`

	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Listing) TableName() string {
	return "listings"
}

// IsBookable reports whether reservations may be placed against the listing
func (l *Listing) IsBookable() bool {
	return l.Status == StatusPublished
}

// ListingImage is an uploaded photo attached to a listing
type ListingImage struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	ListingID uuid.UUID `json:"listing_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}

func (ListingImage) TableName() string {
	return "listing_images"
}

// KindFromPath maps a public route segment to a listing kind
func KindFromPath(segment string) (Kind, bool) {
	switch segment {
	case "campsites":
		return KindCampsite, true
	case "activities":
		return KindActivity, true
	case "equipment":
		return KindEquipment, true
	default:
		return "", false
	}
}

// IsValidKind reports whether the given string is a known listing kind
func IsValidKind(kind string) bool {
	switch Kind(kind) {
	case KindCampsite, KindActivity, KindEquipment:
		return true
	default:
		return false
	}
}
