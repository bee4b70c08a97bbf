package policies

import (
	"context"
	"testing"
	"time"

	"campora/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRepository struct {
	policy    *CancellationPolicy
	policyErr error
	refunds   []Refund
	created   *Refund
}

func (r *stubRepository) UpsertPolicy(ctx context.Context, policy *CancellationPolicy) error {
	return nil
}

func (r *stubRepository) GetPolicyByListing(ctx context.Context, listingID string) (*CancellationPolicy, error) {
	if r.policyErr != nil {
		return nil, r.policyErr
	}
	return r.policy, nil
}

func (r *stubRepository) CreateRefund(ctx context.Context, tx *gorm.DB, refund *Refund) error {
	r.created = refund
	return nil
}

func (r *stubRepository) GetRefundsByReservation(ctx context.Context, reservationID string) ([]Refund, error) {
	return r.refunds, nil
}

func TestGetPolicyFallsBackToFullRefund(t *testing.T) {
	svc := NewService(&stubRepository{policyErr: ErrPolicyNotFound}, logger.New())

	policy, err := svc.GetPolicy(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Equal(t, PolicyNone, policy.Type)
}

func TestApplyCancellationRecordsSettledRefund(t *testing.T) {
	repo := &stubRepository{policy: &CancellationPolicy{Type: PolicyFixed, FixedFee: 20}}
	svc := NewService(repo, logger.New())

	reservationID := uuid.New()
	paymentID := uuid.New()
	startDate := time.Now().Add(12 * time.Hour)

	outcome, err := svc.ApplyCancellation(context.Background(), nil, reservationID, paymentID,
		uuid.New().String(), 100, startDate)

	require.NoError(t, err)
	assert.Equal(t, 20.0, outcome.Fee)
	assert.Equal(t, 80.0, outcome.RefundAmount)
	assert.Equal(t, string(PolicyFixed), outcome.PolicyType)

	require.NotNil(t, repo.created)
	assert.Equal(t, reservationID, repo.created.ReservationID)
	assert.Equal(t, paymentID, repo.created.PaymentID)
	assert.Equal(t, RefundRefunded, repo.created.Status)
	assert.NotEmpty(t, repo.created.TransactionID)
}

func TestApplyCancellationSkipsRefundWhenNothingPaid(t *testing.T) {
	repo := &stubRepository{policy: &CancellationPolicy{Type: PolicyFixed, FixedFee: 20}}
	svc := NewService(repo, logger.New())

	outcome, err := svc.ApplyCancellation(context.Background(), nil, uuid.New(), uuid.Nil,
		uuid.New().String(), 0, time.Now().Add(time.Hour))

	require.NoError(t, err)
	assert.Zero(t, outcome.Fee)
	assert.Zero(t, outcome.RefundAmount)
	assert.Nil(t, repo.created)
}

func TestGetRefundsDelegatesToRepository(t *testing.T) {
	want := []Refund{
		{ID: uuid.New(), Amount: 80, Fee: 20, Status: RefundRefunded},
	}
	svc := NewService(&stubRepository{refunds: want}, logger.New())

	got, err := svc.GetRefunds(context.Background(), uuid.New().String())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
