package cart

import (
	"math"
	"time"
)

// CartItem is one prospective reservation held in a user's cart. Carts live
// in Redis only; nothing is persisted until checkout.
type CartItem struct {
	ID          string    `json:"id"`
	ListingID   string    `json:"listing_id"`
	ListingName string    `json:"listing_name"`
	Kind        string    `json:"kind"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Nights      int       `json:"nights"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Subtotal    float64   `json:"subtotal"`
	AddedAt     time.Time `json:"added_at"`
}

// Cart is the full cart for one user
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Recalculate refreshes the cart total from its items
func (c *Cart) Recalculate() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Subtotal
	}
	c.Total = math.Round(total*100) / 100
	c.UpdatedAt = time.Now()
}

// RemoveItem drops an item by ID, reporting whether it was present
func (c *Cart) RemoveItem(itemID string) bool {
	for i, item := range c.Items {
		if item.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.Recalculate()
			return true
		}
	}
	return false
}
