package reviews

import (
	"time"

	"campora/internal/users"

	"github.com/google/uuid"
)

// Review is feedback left for a listing after a completed reservation.
// One review per reservation, enforced by a unique index.
type Review struct {
	ID            uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	ListingID     uuid.UUID `json:"listing_id" gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ReservationID uuid.UUID `json:"reservation_id" gorm:"type:uuid;not null"`

	Rating  int    `json:"rating" gorm:"not null"`
	Title   string `json:"title"`
	Comment string `json:"comment" gorm:"type:text"`

	User *users.User `json:"user,omitempty" gorm:"foreignKey:UserID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
