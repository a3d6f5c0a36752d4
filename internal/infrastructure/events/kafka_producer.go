// Package events publishes risk lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/config"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// Event types emitted by the risk engine.
const (
	EventAssessmentCompleted = "risk.assessment.completed"
	EventAnomalyDetected     = "risk.anomaly.detected"
	EventRatingUpdated       = "vendor.rating.updated"
)

// RiskEvent is the envelope written to the event topic. Consumers key off
// Type; Payload carries the type-specific body.
type RiskEvent struct {
	Type       string      `json:"type"`
	SubjectID  string      `json:"subject_id"`
	Payload    interface{} `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Publisher emits risk lifecycle events. Publication is best effort; a
// failed publish must never fail the request that triggered it.
type Publisher interface {
	Publish(ctx context.Context, event RiskEvent) error
	Close() error
}

// KafkaPublisher is the Kafka-backed Publisher.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    logger.Logger
}

// NewKafkaPublisher creates a Publisher writing to the configured topic.
func NewKafkaPublisher(cfg *config.KafkaConfig, log logger.Logger) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    cfg.BatchSize,
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}
	return &KafkaPublisher{
		writer: writer,
		log:    log.WithComponent("events"),
	}
}

// Publish writes one event, keyed by subject so per-subject ordering holds
// within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event RiskEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error(ctx, "failed to marshal risk event", err, logger.Fields{"type": event.Type})
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.SubjectID),
		Value: value,
	})
	if err != nil {
		p.log.Error(ctx, "failed to publish risk event", err, logger.Fields{
			"type":       event.Type,
			"subject_id": event.SubjectID,
		})
	}
	return err
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher that drops everything. Used when
// Kafka is disabled and in tests.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event RiskEvent) error { return nil }
func (noopPublisher) Close() error                                       { return nil }
