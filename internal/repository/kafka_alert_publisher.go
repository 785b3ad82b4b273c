package repository

import (
	"context"
	"fmt"

	"StockCast/internal/domain/models"
	drepo "StockCast/internal/domain/repository"
	pkgkafka "StockCast/pkg/kafka"
)

// KafkaAlertPublisher publishes alert trigger events to a Kafka topic, keyed
// by symbol so events for one instrument stay ordered.
type KafkaAlertPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaAlertPublisher(producer *pkgkafka.Producer, topic string) *KafkaAlertPublisher {
	return &KafkaAlertPublisher{producer: producer, topic: topic}
}

func (p *KafkaAlertPublisher) Publish(ctx context.Context, event models.AlertEvent) error {
	if err := p.producer.Publish(ctx, p.topic, []byte(event.Symbol), event); err != nil {
		return fmt.Errorf("publish alert event: %w", err)
	}
	return nil
}

func (p *KafkaAlertPublisher) Close() error {
	return p.producer.Close()
}

var _ drepo.AlertPublisher = (*KafkaAlertPublisher)(nil)
