package reviews

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"campora/internal/reservations"
	"campora/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReservationService struct {
	reservations.Service

	reservation *reservations.Reservation
	err         error
}

func (s *stubReservationService) GetByID(ctx context.Context, userID string, isAdmin bool, id string) (*reservations.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.reservation, nil
}

type stubRepository struct {
	exists    bool
	createErr error
	created   *Review
}

func (r *stubRepository) Create(ctx context.Context, review *Review) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = review
	return nil
}

func (r *stubRepository) Delete(ctx context.Context, id string) (*Review, error) {
	return nil, nil
}

func (r *stubRepository) ListByListing(ctx context.Context, listingID string, query *ListQuery) ([]Review, int64, error) {
	return nil, 0, nil
}

func (r *stubRepository) ExistsForReservation(ctx context.Context, reservationID string) (bool, error) {
	return r.exists, nil
}

func (r *stubRepository) RatingSummary(ctx context.Context, listingID string) (float64, int64, error) {
	return 0, 0, nil
}

type stubCache struct{}

func (stubCache) Get(ctx context.Context, key string, dest interface{}) error { return nil }
func (stubCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (stubCache) Delete(ctx context.Context, key string) error            { return nil }
func (stubCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (stubCache) Exists(ctx context.Context, key string) bool             { return false }
func (stubCache) Ping(ctx context.Context) error                          { return nil }

func (stubCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	value, err := fetcher()
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func completedReservation(listingID uuid.UUID) *reservations.Reservation {
	return &reservations.Reservation{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ListingID: listingID,
		Status:    reservations.StatusCompleted,
	}
}

func newReviewService(reservationSvc reservations.Service, repo Repository) Service {
	return NewService(repo, reservationSvc, stubCache{}, logger.New())
}

func TestCreateReviewForCompletedReservation(t *testing.T) {
	listingID := uuid.New()
	reservation := completedReservation(listingID)
	repo := &stubRepository{}
	svc := newReviewService(&stubReservationService{reservation: reservation}, repo)

	review, err := svc.Create(context.Background(), reservation.UserID.String(), listingID.String(), &CreateReviewRequest{
		ReservationID: reservation.ID.String(),
		Rating:        5,
		Title:         "Great weekend",
	})

	require.NoError(t, err)
	assert.Equal(t, reservation.ID, review.ReservationID)
	assert.Equal(t, reservation.UserID, review.UserID)
	assert.Equal(t, listingID, review.ListingID)
	assert.Equal(t, 5, review.Rating)
	assert.NotNil(t, repo.created)
}

func TestCreateReviewRejectsUncompletedReservation(t *testing.T) {
	listingID := uuid.New()
	for _, status := range []reservations.Status{
		reservations.StatusPending,
		reservations.StatusApproved,
		reservations.StatusRejected,
		reservations.StatusCancelled,
	} {
		reservation := completedReservation(listingID)
		reservation.Status = status
		svc := newReviewService(&stubReservationService{reservation: reservation}, &stubRepository{})

		_, err := svc.Create(context.Background(), reservation.UserID.String(), listingID.String(), &CreateReviewRequest{
			ReservationID: reservation.ID.String(),
			Rating:        4,
		})

		assert.ErrorIs(t, err, ErrReservationNotCompleted, "status %s", status)
	}
}

func TestCreateReviewPassesThroughOwnershipError(t *testing.T) {
	svc := newReviewService(&stubReservationService{err: reservations.ErrNotOwner}, &stubRepository{})

	_, err := svc.Create(context.Background(), uuid.New().String(), uuid.New().String(), &CreateReviewRequest{
		ReservationID: uuid.New().String(),
		Rating:        4,
	})

	assert.ErrorIs(t, err, reservations.ErrNotOwner)
}

func TestCreateReviewRejectsWrongListing(t *testing.T) {
	reservation := completedReservation(uuid.New())
	svc := newReviewService(&stubReservationService{reservation: reservation}, &stubRepository{})

	_, err := svc.Create(context.Background(), reservation.UserID.String(), uuid.New().String(), &CreateReviewRequest{
		ReservationID: reservation.ID.String(),
		Rating:        4,
	})

	assert.ErrorIs(t, err, ErrWrongListing)
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	listingID := uuid.New()
	reservation := completedReservation(listingID)
	svc := newReviewService(&stubReservationService{reservation: reservation}, &stubRepository{exists: true})

	_, err := svc.Create(context.Background(), reservation.UserID.String(), listingID.String(), &CreateReviewRequest{
		ReservationID: reservation.ID.String(),
		Rating:        4,
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreateReviewSurfacesInsertRace(t *testing.T) {
	// The existence pre-check can miss a concurrent insert; the repository
	// maps the unique-index violation back to ErrAlreadyReviewed
	listingID := uuid.New()
	reservation := completedReservation(listingID)
	svc := newReviewService(&stubReservationService{reservation: reservation}, &stubRepository{createErr: ErrAlreadyReviewed})

	_, err := svc.Create(context.Background(), reservation.UserID.String(), listingID.String(), &CreateReviewRequest{
		ReservationID: reservation.ID.String(),
		Rating:        4,
	})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}
