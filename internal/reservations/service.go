package reservations

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"campora/internal/listings"
	"campora/internal/policies"
	"campora/internal/shared/config"
	"campora/internal/shared/constants"
	"campora/pkg/cache"
	"campora/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateRange = errors.New("invalid reservation date range")
	ErrStayTooLong      = errors.New("reservation exceeds the maximum allowed stay")
	ErrQuantityTooLarge = errors.New("reservation exceeds the maximum allowed quantity")
	ErrNotOwner         = errors.New("reservation belongs to another user")
)

// Notifier receives reservation lifecycle events. Implemented by the
// notification service; failures are logged, never propagated.
type Notifier interface {
	ReservationCreated(ctx context.Context, reservation *Reservation)
	ReservationApproved(ctx context.Context, reservation *Reservation)
	ReservationRejected(ctx context.Context, reservation *Reservation)
	ReservationCancelled(ctx context.Context, reservation *Reservation, refundAmount float64)
}

// RealtimePublisher pushes reservation status events to connected clients
type RealtimePublisher interface {
	PublishToUser(userID string, event interface{})
}

// Service defines the reservation ledger business logic interface
type Service interface {
	Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error)
	Create(ctx context.Context, userID string, req *CreateReservationRequest) (*Reservation, error)
	GetByID(ctx context.Context, userID string, isAdmin bool, id string) (*Reservation, error)
	ListByUser(ctx context.Context, userID string, query *ListQuery) (*PaginatedReservationsResponse, error)
	Cancel(ctx context.Context, userID string, id string) (*CancellationResponse, error)

	// Admin operations
	AdminList(ctx context.Context, query *AdminListQuery) (*PaginatedReservationsResponse, error)
	Approve(ctx context.Context, id string) (*Reservation, error)
	Reject(ctx context.Context, id string, req *RejectRequest) (*Reservation, error)

	// CompleteDueReservations is invoked by the completion sweeper
	CompleteDueReservations(ctx context.Context) (int, error)

	// DailyDemand feeds the listing availability endpoint
	DailyDemand(ctx context.Context, listingID string, from, to time.Time) (map[string]int, error)

	SetNotifier(notifier Notifier)
	SetRealtimePublisher(publisher RealtimePublisher)
}

type service struct {
	repo        Repository
	listingRepo listings.Repository
	policies    policies.Service
	cache       cache.Service
	config      *config.Config
	logger      *logger.Logger

	notifier Notifier
	realtime RealtimePublisher
}

// NewService creates a new reservation service
func NewService(repo Repository, listingRepo listings.Repository, policyService policies.Service, cacheService cache.Service, cfg *config.Config, appLogger *logger.Logger) Service {
	return &service{
		repo:        repo,
		listingRepo: listingRepo,
		policies:    policyService,
		cache:       cacheService,
		config:      cfg,
		logger:      appLogger,
	}
}

func (s *service) SetNotifier(notifier Notifier) {
	s.notifier = notifier
}

func (s *service) SetRealtimePublisher(publisher RealtimePublisher) {
	s.realtime = publisher
}

func (s *service) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	listing, start, end, err := s.validateBookingInput(ctx, req.ListingID, req.StartDate, req.EndDate, req.Quantity)
	if err != nil {
		return nil, err
	}

	nights := int(end.Sub(start).Hours() / 24)
	return &QuoteResponse{
		ListingID:   listing.ID.String(),
		ListingName: listing.Name,
		Kind:        string(listing.Kind),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Nights:      nights,
		Quantity:    req.Quantity,
		UnitPrice:   listing.UnitPrice,
		TotalAmount: totalAmount(listing.UnitPrice, nights, req.Quantity),
	}, nil
}

func (s *service) Create(ctx context.Context, userID string, req *CreateReservationRequest) (*Reservation, error) {
	listing, start, end, err := s.validateBookingInput(ctx, req.ListingID, req.StartDate, req.EndDate, req.Quantity)
	if err != nil {
		return nil, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	nights := int(end.Sub(start).Hours() / 24)
	reservation := &Reservation{
		ReferenceNumber: GenerateReferenceNumber(),
		UserID:          uid,
		ListingID:       listing.ID,
		StartDate:       start,
		EndDate:         end,
		Quantity:        req.Quantity,
		UnitPrice:       listing.UnitPrice,
		TotalAmount:     totalAmount(listing.UnitPrice, nights, req.Quantity),
		Status:          StatusPending,
	}

	if err := s.repo.CreateWithCapacityCheck(ctx, reservation); err != nil {
		return nil, err
	}
	reservation.Listing = listing

	s.logger.LogReservationCreated(ctx, reservation.ID.String(), listing.ID.String(), userID)
	s.invalidateCaches(ctx)

	if s.notifier != nil {
		s.notifier.ReservationCreated(ctx, reservation)
	}
	s.publishStatusEvent(reservation, "", StatusPending)

	return reservation, nil
}

func (s *service) GetByID(ctx context.Context, userID string, isAdmin bool, id string) (*Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && reservation.UserID.String() != userID {
		return nil, ErrNotOwner
	}
	return reservation, nil
}

func (s *service) ListByUser(ctx context.Context, userID string, query *ListQuery) (*PaginatedReservationsResponse, error) {
	fetch := func() (interface{}, error) {
		items, total, err := s.repo.ListByUser(ctx, userID, query)
		if err != nil {
			return nil, fmt.Errorf("failed to list reservations: %w", err)
		}
		return paginateReservations(items, total, query.Page, query.Limit), nil
	}

	// Status-filtered pages bypass the cache; keys only encode pagination
	if query.Status != "" {
		resp, err := fetch()
		if err != nil {
			return nil, err
		}
		return resp.(*PaginatedReservationsResponse), nil
	}

	var resp PaginatedReservationsResponse
	key := constants.BuildUserReservationsKey(userID, query.Page, query.Limit)
	if err := s.cache.GetOrSet(ctx, key, constants.TTL_USER_RESERVATIONS, fetch, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) Cancel(ctx context.Context, userID string, id string) (*CancellationResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID.String() != userID {
		return nil, ErrNotOwner
	}

	var outcome *policies.CancellationOutcome
	reservation, err := s.repo.Cancel(ctx, id, func(tx *gorm.DB, res *Reservation) error {
		paidAmount := 0.0
		var paymentID uuid.UUID
		if res.Payment != nil && res.Payment.Status == PaymentRefunded {
			paidAmount = res.Payment.Amount
			paymentID = res.Payment.ID
		}

		var applyErr error
		outcome, applyErr = s.policies.ApplyCancellation(ctx, tx, res.ID, paymentID, res.ListingID.String(), paidAmount, res.StartDate)
		return applyErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.LogReservationStatusChanged(ctx, id, string(existing.Status), string(StatusCancelled))
	s.invalidateCaches(ctx)

	if s.notifier != nil {
		s.notifier.ReservationCancelled(ctx, reservation, outcome.RefundAmount)
	}
	s.publishStatusEvent(reservation, existing.Status, StatusCancelled)

	return &CancellationResponse{
		Reservation:  reservation,
		Fee:          outcome.Fee,
		RefundAmount: outcome.RefundAmount,
		PolicyType:   outcome.PolicyType,
	}, nil
}

func (s *service) AdminList(ctx context.Context, query *AdminListQuery) (*PaginatedReservationsResponse, error) {
	items, total, err := s.repo.AdminList(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return paginateReservations(items, total, query.Page, query.Limit), nil
}

func (s *service) Approve(ctx context.Context, id string) (*Reservation, error) {
	reservation, err := s.repo.ApproveWithPayment(ctx, id, GenerateTransactionID())
	if err != nil {
		return nil, err
	}

	s.logger.LogReservationStatusChanged(ctx, id, string(StatusPending), string(StatusApproved))
	s.invalidateCaches(ctx)

	if s.notifier != nil {
		s.notifier.ReservationApproved(ctx, reservation)
	}
	s.publishStatusEvent(reservation, StatusPending, StatusApproved)

	return reservation, nil
}

func (s *service) Reject(ctx context.Context, id string, req *RejectRequest) (*Reservation, error) {
	reservation, err := s.repo.Reject(ctx, id, req.Reason)
	if err != nil {
		return nil, err
	}

	s.logger.LogReservationStatusChanged(ctx, id, string(StatusPending), string(StatusRejected))
	s.invalidateCaches(ctx)

	if s.notifier != nil {
		s.notifier.ReservationRejected(ctx, reservation)
	}
	s.publishStatusEvent(reservation, StatusPending, StatusRejected)

	return reservation, nil
}

func (s *service) CompleteDueReservations(ctx context.Context) (int, error) {
	completed, err := s.repo.CompleteDue(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	for i := range completed {
		s.logger.LogReservationStatusChanged(ctx, completed[i].ID.String(), string(StatusApproved), string(StatusCompleted))
		s.publishStatusEvent(&completed[i], StatusApproved, StatusCompleted)
	}
	if len(completed) > 0 {
		s.invalidateCaches(ctx)
	}

	return len(completed), nil
}

func (s *service) DailyDemand(ctx context.Context, listingID string, from, to time.Time) (map[string]int, error) {
	return s.repo.DailyDemand(ctx, listingID, from, to)
}

// validateBookingInput checks dates, quantity and listing state, returning
// the listing and parsed bounds
func (s *service) validateBookingInput(ctx context.Context, listingID, startDate, endDate string, quantity int) (*listings.Listing, time.Time, time.Time, error) {
	var zero time.Time

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, zero, zero, ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, zero, zero, ErrInvalidDateRange
	}
	if !end.After(start) {
		return nil, zero, zero, ErrInvalidDateRange
	}

	today := time.Now().Truncate(24 * time.Hour)
	if start.Before(today) {
		return nil, zero, zero, ErrInvalidDateRange
	}

	nights := int(end.Sub(start).Hours() / 24)
	if nights > s.config.Reservation.MaxStayNights {
		return nil, zero, zero, ErrStayTooLong
	}
	if quantity > s.config.Reservation.MaxQuantity {
		return nil, zero, zero, ErrQuantityTooLarge
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, zero, zero, err
	}
	if !listing.IsBookable() {
		return nil, zero, zero, ErrListingNotBookable
	}

	return listing, start, end, nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_RESERVATIONS); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate reservation cache", err, nil)
	}
	// Availability calendars embed held quantity
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_LISTINGS_ALL); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate listing cache", err, nil)
	}
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ANALYTICS); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to invalidate analytics cache", err, nil)
	}
}

// StatusEvent is what connected websocket clients receive on a transition
type StatusEvent struct {
	Type            string `json:"type"`
	ReservationID   string `json:"reservation_id"`
	ReferenceNumber string `json:"reference_number"`
	ListingID       string `json:"listing_id"`
	From            string `json:"from,omitempty"`
	To              string `json:"to"`
	Timestamp       int64  `json:"timestamp"`
}

func (s *service) publishStatusEvent(reservation *Reservation, from, to Status) {
	if s.realtime == nil {
		return
	}
	s.realtime.PublishToUser(reservation.UserID.String(), StatusEvent{
		Type:            "reservation.status",
		ReservationID:   reservation.ID.String(),
		ReferenceNumber: reservation.ReferenceNumber,
		ListingID:       reservation.ListingID.String(),
		From:            string(from),
		To:              string(to),
		Timestamp:       time.Now().Unix(),
	})
}

func totalAmount(unitPrice float64, nights, quantity int) float64 {
	return math.Round(unitPrice*float64(nights)*float64(quantity)*100) / 100
}

func paginateReservations(items []Reservation, total int64, page, limit int) *PaginatedReservationsResponse {
	return &PaginatedReservationsResponse{
		Reservations: items,
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   int(math.Ceil(float64(total) / float64(limit))),
	}
}
