package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campora/internal/reservations"
	"campora/internal/shared/config"
	"campora/internal/shared/constants"
	"campora/pkg/cache"
	"campora/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrCartFull     = errors.New("cart item limit reached")
	ErrItemNotFound = errors.New("cart item not found")
	ErrCartEmpty    = errors.New("cart is empty")
)

// Service defines the cart business logic interface
type Service interface {
	GetCart(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, userID string, req *AddItemRequest) (*Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*Cart, error)
	ClearCart(ctx context.Context, userID string) error
	Checkout(ctx context.Context, userID string) (*CheckoutResponse, error)
}

type service struct {
	reservationSvc reservations.Service
	cache          cache.Service
	config         *config.Config
	logger         *logger.Logger
}

// NewService creates a new cart service
func NewService(reservationSvc reservations.Service, cacheService cache.Service, cfg *config.Config, appLogger *logger.Logger) Service {
	return &service{
		reservationSvc: reservationSvc,
		cache:          cacheService,
		config:         cfg,
		logger:         appLogger,
	}
}

func (s *service) GetCart(ctx context.Context, userID string) (*Cart, error) {
	cart := &Cart{UserID: userID, Items: []CartItem{}}
	err := s.cache.Get(ctx, constants.BuildCartKey(userID), cart)
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}

func (s *service) AddItem(ctx context.Context, userID string, req *AddItemRequest) (*Cart, error) {
	userCart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(userCart.Items) >= s.config.Reservation.MaxCartItems {
		return nil, ErrCartFull
	}

	// Quote validates the listing, dates and quantity, and prices the item
	quote, err := s.reservationSvc.Quote(ctx, &reservations.QuoteRequest{
		ListingID: req.ListingID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return nil, err
	}

	userCart.Items = append(userCart.Items, CartItem{
		ID:          uuid.New().String(),
		ListingID:   quote.ListingID,
		ListingName: quote.ListingName,
		Kind:        quote.Kind,
		StartDate:   quote.StartDate,
		EndDate:     quote.EndDate,
		Nights:      quote.Nights,
		Quantity:    quote.Quantity,
		UnitPrice:   quote.UnitPrice,
		Subtotal:    quote.TotalAmount,
		AddedAt:     time.Now(),
	})
	userCart.Recalculate()

	if err := s.saveCart(ctx, userCart); err != nil {
		return nil, err
	}
	return userCart, nil
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID string) (*Cart, error) {
	userCart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !userCart.RemoveItem(itemID) {
		return nil, ErrItemNotFound
	}

	if err := s.saveCart(ctx, userCart); err != nil {
		return nil, err
	}
	return userCart, nil
}

func (s *service) ClearCart(ctx context.Context, userID string) error {
	return s.cache.Delete(ctx, constants.BuildCartKey(userID))
}

// Checkout converts each cart item into a reservation. Items are independent:
// a capacity conflict on one item fails that item only, and successfully
// created items are removed from the cart.
func (s *service) Checkout(ctx context.Context, userID string) (*CheckoutResponse, error) {
	userCart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(userCart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	resp := &CheckoutResponse{}
	var remaining []CartItem

	for _, item := range userCart.Items {
		reservation, err := s.reservationSvc.Create(ctx, userID, &reservations.CreateReservationRequest{
			ListingID: item.ListingID,
			StartDate: item.StartDate,
			EndDate:   item.EndDate,
			Quantity:  item.Quantity,
		})
		if err != nil {
			resp.Failed++
			resp.Results = append(resp.Results, CheckoutItemResult{
				ItemID:    item.ID,
				ListingID: item.ListingID,
				Status:    "FAILED",
				Error:     err.Error(),
			})
			remaining = append(remaining, item)
			continue
		}

		resp.Created++
		resp.TotalPaid += reservation.TotalAmount
		resp.Results = append(resp.Results, CheckoutItemResult{
			ItemID:          item.ID,
			ListingID:       item.ListingID,
			ReservationID:   reservation.ID.String(),
			ReferenceNumber: reservation.ReferenceNumber,
			Status:          "CREATED",
		})
	}

	// Keep failed items so the user can adjust and retry
	userCart.Items = remaining
	userCart.Recalculate()
	if len(userCart.Items) == 0 {
		if err := s.ClearCart(ctx, userID); err != nil {
			s.logger.ErrorWithContext(ctx, "Failed to clear cart after checkout", err, nil)
		}
	} else if err := s.saveCart(ctx, userCart); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to save cart after checkout", err, nil)
	}

	return resp, nil
}

func (s *service) saveCart(ctx context.Context, userCart *Cart) error {
	if err := s.cache.Set(ctx, constants.BuildCartKey(userCart.UserID), userCart, s.config.Redis.CartTTL); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
