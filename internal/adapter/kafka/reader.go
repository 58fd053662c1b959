// Package kafka adapts the monitor to its Kafka transport: text signals in,
// district statuses out.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/wirasatya/resilience-monitor/internal/config"
	"github.com/wirasatya/resilience-monitor/internal/domain"
)

// defaultPollTimeout bounds the wait for the next message when draining the
// source topic; an empty poll means the backlog is exhausted for this tick.
const defaultPollTimeout = 2 * time.Second

// Reader consumes raw text signals from the source topic.
// It implements pipeline.TextSource.
type Reader struct {
	reader      *kafkago.Reader
	logger      *slog.Logger
	pollTimeout time.Duration
}

// NewReader creates a Kafka consumer for the configured source topic.
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaSourceTopic,
		GroupID:  cfg.KafkaGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Reader{reader: r, logger: logger, pollTimeout: defaultPollTimeout}
}

// FetchTexts drains every text signal accumulated on the source topic since
// the previous tick. It returns once a poll comes up empty; malformed
// messages are logged and skipped, never fatal.
func (r *Reader) FetchTexts(ctx context.Context) ([]domain.TextItem, error) {
	var items []domain.TextItem
	for {
		pollCtx, cancel := context.WithTimeout(ctx, r.pollTimeout)
		msg, err := r.reader.ReadMessage(pollCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return items, ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				return items, nil // backlog drained
			}
			return items, fmt.Errorf("read text signal: %w", err)
		}

		item, err := mapMessageToTextItem(msg)
		if err != nil {
			r.logger.Warn("malformed text signal, skipping",
				"error", err,
				"partition", msg.Partition,
				"offset", msg.Offset,
			)
			continue
		}
		items = append(items, item)
	}
}

func (r *Reader) Close() error {
	return r.reader.Close()
}

// mapMessageToTextItem decodes one Kafka message into a TextItem. Missing
// source and timestamp fields fall back to the message's own metadata.
func mapMessageToTextItem(msg kafkago.Message) (domain.TextItem, error) {
	var item domain.TextItem
	if err := json.Unmarshal(msg.Value, &item); err != nil {
		return domain.TextItem{}, fmt.Errorf("decode text signal: %w", err)
	}
	if item.Text == "" {
		return domain.TextItem{}, errors.New("text signal has no text")
	}
	if item.Source == "" {
		item.Source = "kafka"
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = msg.Time
	}
	return item, nil
}
