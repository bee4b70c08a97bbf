package amenities

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Amenity is a filterable feature attached to listings, e.g. "WiFi",
// "Pet Friendly", "Lake Access"
type Amenity struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Amenity) TableName() string {
	return "amenities"
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a display name into a url-safe slug
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
