package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/wirasatya/resilience-monitor/internal/config"
	"github.com/wirasatya/resilience-monitor/internal/domain"
)

// Writer produces district statuses to the sink topic.
// It implements pipeline.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishSnapshot serializes every district status in the snapshot and
// publishes them in a single WriteMessages call. Messages are keyed by
// district name so consumers see each district's history in order.
func (w *Writer) PublishSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil || len(snap.Statuses) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(snap.Statuses))
	for i := range snap.Statuses {
		msg, err := serializeToMessage(snap.Statuses[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a DistrictStatus into a Kafka message.
func serializeToMessage(status domain.DistrictStatus) (kafkago.Message, error) {
	data, err := json.Marshal(status)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize district status: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(status.District),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "status", Value: []byte(status.Status)},
			{Key: "computed_at", Value: []byte(status.ComputedAt.Format(time.RFC3339))},
		},
	}, nil
}
