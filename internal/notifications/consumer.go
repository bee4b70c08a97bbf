package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"campora/internal/shared/config"
	"campora/pkg/logger"

	"github.com/IBM/sarama"
)

const maxDeliveryAttempts = 3

// Consumer runs a consumer group that delivers notification emails
type Consumer struct {
	group        sarama.ConsumerGroup
	topic        string
	workers      int
	emailService *EmailService
	logger       *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConsumer creates the notification consumer group
func NewConsumer(cfg *config.Config, emailService *EmailService, appLogger *logger.Logger) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		group:        group,
		topic:        cfg.Kafka.NotificationTopic,
		workers:      cfg.Kafka.ConsumerWorkers,
		emailService: emailService,
		logger:       appLogger,
	}, nil
}

// Start launches the consumer workers
func (c *Consumer) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go func(workerID int) {
			defer c.wg.Done()
			handler := &consumerHandler{
				workerID:     workerID,
				emailService: c.emailService,
				logger:       c.logger,
			}
			for {
				if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
					c.logger.Error("Consumer error",
						slog.Int("worker", workerID),
						slog.String("error", err.Error()),
					)
				}
				if ctx.Err() != nil {
					return
				}
			}
		}(i)
	}

	c.logger.Info("Notification consumers started", slog.Int("workers", c.workers))
}

// Stop shuts down the consumer group and waits for workers to exit
func (c *Consumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	return c.group.Close()
}

type consumerHandler struct {
	workerID     int
	emailService *EmailService
	logger       *logger.Logger
}

func (h *consumerHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *consumerHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *consumerHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		h.process(message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (h *consumerHandler) process(message *sarama.ConsumerMessage) {
	var notification EmailNotification
	if err := json.Unmarshal(message.Value, &notification); err != nil {
		h.logger.Error("Failed to decode notification, skipping",
			slog.Int("worker", h.workerID),
			slog.String("error", err.Error()),
		)
		return
	}

	// Exponential backoff between attempts; after the last attempt the
	// message is dropped with an error log rather than blocking the partition
	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		notification.Attempts = attempt
		err := h.emailService.Send(&notification)
		if err == nil {
			h.logger.Debug("Notification delivered",
				slog.String("notification_id", notification.ID),
				slog.String("type", string(notification.Type)),
				slog.Int("attempt", attempt),
			)
			return
		}

		h.logger.Error("Notification delivery failed",
			slog.String("notification_id", notification.ID),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)

		if attempt < maxDeliveryAttempts {
			time.Sleep(time.Duration(1<<attempt) * time.Second)
		}
	}

	h.logger.Error("Notification dropped after max attempts",
		slog.String("notification_id", notification.ID),
		slog.String("recipient", notification.RecipientEmail),
	)
}
