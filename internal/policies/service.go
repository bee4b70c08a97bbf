package policies

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campora/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CancellationOutcome is the result of applying a policy to a cancellation
type CancellationOutcome struct {
	Fee          float64 `json:"fee"`
	RefundAmount float64 `json:"refund_amount"`
	PolicyType   string  `json:"policy_type"`
}

// Service defines the policy business logic interface
type Service interface {
	UpsertPolicy(ctx context.Context, listingID string, req *UpsertPolicyRequest) (*CancellationPolicy, error)
	GetPolicy(ctx context.Context, listingID string) (*CancellationPolicy, error)

	// ApplyCancellation computes the fee/refund split for a cancellation and,
	// when money was paid, records a settled refund inside the caller's
	// transaction.
	ApplyCancellation(ctx context.Context, tx *gorm.DB, reservationID, paymentID uuid.UUID, listingID string, paidAmount float64, startDate time.Time) (*CancellationOutcome, error)

	GetRefunds(ctx context.Context, reservationID string) ([]Refund, error)
}

type service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new policy service
func NewService(repo Repository, appLogger *logger.Logger) Service {
	return &service{repo: repo, logger: appLogger}
}

func (s *service) UpsertPolicy(ctx context.Context, listingID string, req *UpsertPolicyRequest) (*CancellationPolicy, error) {
	lid, err := uuid.Parse(listingID)
	if err != nil {
		return nil, fmt.Errorf("invalid listing id: %w", err)
	}

	policy := &CancellationPolicy{
		ListingID:       lid,
		Type:            PolicyType(req.Type),
		FixedFee:        req.FixedFee,
		Percentage:      req.Percentage,
		FreeCancelHours: req.FreeCancelHours,
	}

	if err := s.repo.UpsertPolicy(ctx, policy); err != nil {
		return nil, fmt.Errorf("failed to save policy: %w", err)
	}
	return policy, nil
}

// GetPolicy returns the listing's policy, falling back to a full-refund
// policy when none has been configured
func (s *service) GetPolicy(ctx context.Context, listingID string) (*CancellationPolicy, error) {
	policy, err := s.repo.GetPolicyByListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, ErrPolicyNotFound) {
			lid, _ := uuid.Parse(listingID)
			return &CancellationPolicy{ListingID: lid, Type: PolicyNone}, nil
		}
		return nil, err
	}
	return policy, nil
}

func (s *service) ApplyCancellation(ctx context.Context, tx *gorm.DB, reservationID, paymentID uuid.UUID, listingID string, paidAmount float64, startDate time.Time) (*CancellationOutcome, error) {
	policy, err := s.GetPolicy(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	fee := policy.CalculateFee(paidAmount, startDate, time.Now())
	outcome := &CancellationOutcome{
		Fee:          fee,
		RefundAmount: roundToCents(paidAmount - fee),
		PolicyType:   string(policy.Type),
	}

	if paidAmount <= 0 {
		return outcome, nil
	}

	refund := &Refund{
		ReservationID: reservationID,
		PaymentID:     paymentID,
		Amount:        outcome.RefundAmount,
		Fee:           fee,
		Status:        RefundPending,
	}
	// Refunds are simulated: settle immediately with a generated reference
	refund.MarkRefunded("REF-" + uuid.New().String()[:13])

	if err := s.repo.CreateRefund(ctx, tx, refund); err != nil {
		return nil, fmt.Errorf("failed to record refund: %w", err)
	}

	return outcome, nil
}

func (s *service) GetRefunds(ctx context.Context, reservationID string) ([]Refund, error) {
	return s.repo.GetRefundsByReservation(ctx, reservationID)
}
