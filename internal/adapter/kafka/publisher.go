// Package kafka publishes weather snapshots to a Kafka topic for downstream
// consumers (dashboards, archival).
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/lunamark/weatherdeck/internal/domain"
)

// Publisher produces one message per successful weather acquisition.
// It implements service.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the snapshot topic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish serializes and writes a single weather snapshot.
func (p *Publisher) Publish(ctx context.Context, data domain.WeatherData) error {
	msg, err := serializeToMessage(data)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a snapshot into a Kafka message keyed by
// location name so snapshots for one place land on one partition.
func serializeToMessage(data domain.WeatherData) (kafkago.Message, error) {
	value, err := json.Marshal(data)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize weather snapshot: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(data.LocationName),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "captured_at", Value: []byte(time.UnixMilli(data.Timestamp).UTC().Format(time.RFC3339))},
		},
	}, nil
}
