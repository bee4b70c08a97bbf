package notifications

import (
	"context"
	"log/slog"

	"campora/internal/reservations"
	"campora/internal/shared/config"
	"campora/internal/users"
	"campora/pkg/logger"
)

// UserDirectory resolves recipients. Satisfied by the auth repository.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id string) (*users.User, error)
}

// Service ties together the producer, consumer and email delivery. It
// implements the reservation ledger's Notifier interface; every publish
// failure is logged and swallowed so notification trouble never fails a
// booking.
type Service struct {
	producer *Producer
	consumer *Consumer
	userDir  UserDirectory
	logger   *logger.Logger
}

// NewService wires up the notification pipeline
func NewService(cfg *config.Config, userDir UserDirectory, appLogger *logger.Logger) (*Service, error) {
	producer, err := NewProducer(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	emailService, err := NewEmailService(cfg, appLogger)
	if err != nil {
		producer.Close()
		return nil, err
	}

	consumer, err := NewConsumer(cfg, emailService, appLogger)
	if err != nil {
		producer.Close()
		return nil, err
	}

	return &Service{
		producer: producer,
		consumer: consumer,
		userDir:  userDir,
		logger:   appLogger,
	}, nil
}

// Start launches the consumer workers
func (s *Service) Start(ctx context.Context) {
	s.consumer.Start(ctx)
}

// Stop shuts down the pipeline
func (s *Service) Stop() {
	if err := s.consumer.Stop(); err != nil {
		s.logger.Error("Failed to stop notification consumer", slog.String("error", err.Error()))
	}
	if err := s.producer.Close(); err != nil {
		s.logger.Error("Failed to close notification producer", slog.String("error", err.Error()))
	}
}

// SendWelcome publishes the post-registration email
func (s *Service) SendWelcome(ctx context.Context, userID string) {
	user, err := s.userDir.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to resolve welcome recipient", err, nil)
		return
	}
	s.publish(ctx, NewWelcomeNotification(user.Email, user.FullName()))
}

// ReservationCreated implements reservations.Notifier
func (s *Service) ReservationCreated(ctx context.Context, r *reservations.Reservation) {
	if user := s.recipient(ctx, r); user != nil {
		s.publish(ctx, NewReservationCreatedNotification(user.Email, user.FullName(), r))
	}
}

// ReservationApproved implements reservations.Notifier
func (s *Service) ReservationApproved(ctx context.Context, r *reservations.Reservation) {
	if user := s.recipient(ctx, r); user != nil {
		s.publish(ctx, NewReservationApprovedNotification(user.Email, user.FullName(), r))
	}
}

// ReservationRejected implements reservations.Notifier
func (s *Service) ReservationRejected(ctx context.Context, r *reservations.Reservation) {
	if user := s.recipient(ctx, r); user != nil {
		s.publish(ctx, NewReservationRejectedNotification(user.Email, user.FullName(), r))
	}
}

// ReservationCancelled implements reservations.Notifier
func (s *Service) ReservationCancelled(ctx context.Context, r *reservations.Reservation, refundAmount float64) {
	if user := s.recipient(ctx, r); user != nil {
		s.publish(ctx, NewReservationCancelledNotification(user.Email, user.FullName(), r, refundAmount))
	}
}

func (s *Service) recipient(ctx context.Context, r *reservations.Reservation) *users.User {
	user, err := s.userDir.GetUserByID(ctx, r.UserID.String())
	if err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to resolve notification recipient", err, map[string]interface{}{
			"reservation_id": r.ID.String(),
		})
		return nil
	}
	return user
}

func (s *Service) publish(ctx context.Context, notification *EmailNotification) {
	if err := s.producer.Publish(notification); err != nil {
		s.logger.ErrorWithContext(ctx, "Failed to publish notification", err, map[string]interface{}{
			"type":      string(notification.Type),
			"recipient": notification.RecipientEmail,
		})
	}
}
