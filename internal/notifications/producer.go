package notifications

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"campora/internal/shared/config"
	"campora/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer publishes email notifications to the notification topic
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *logger.Logger
}

// NewProducer creates a Kafka producer for notifications
func NewProducer(cfg *config.Config, appLogger *logger.Logger) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	// Keyed by recipient so one user's emails stay ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		topic:    cfg.Kafka.NotificationTopic,
		logger:   appLogger,
	}, nil
}

// Publish sends a notification to the topic
func (p *Producer) Publish(notification *EmailNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(notification.RecipientEmail),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(notification.Type)},
			{Key: []byte("notification_id"), Value: []byte(notification.ID)},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.logger.Debug("Notification published",
		slog.String("type", string(notification.Type)),
		slog.String("notification_id", notification.ID),
		slog.Int64("partition", int64(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

// Close shuts down the producer
func (p *Producer) Close() error {
	return p.producer.Close()
}
