package kafka

import (
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wirasatya/resilience-monitor/internal/domain"
)

func TestMapMessageToTextItem(t *testing.T) {
	now := time.Date(2026, 2, 10, 4, 30, 0, 0, time.UTC)
	msg := kafkago.Message{
		Key:   []byte("signal-1"),
		Value: []byte(`{"text":"internet mati di kedaton","source":"twitter","timestamp":"2026-02-10T04:00:00Z"}`),
		Time:  now,
	}

	item, err := mapMessageToTextItem(msg)
	require.NoError(t, err)

	assert.Equal(t, "internet mati di kedaton", item.Text)
	assert.Equal(t, "twitter", item.Source)
	assert.Equal(t, time.Date(2026, 2, 10, 4, 0, 0, 0, time.UTC), item.Timestamp)
}

func TestMapMessageToTextItem_DefaultsFromMessage(t *testing.T) {
	now := time.Date(2026, 2, 10, 4, 30, 0, 0, time.UTC)
	msg := kafkago.Message{
		Value: []byte(`{"text":"mati lampu di rajabasa"}`),
		Time:  now,
	}

	item, err := mapMessageToTextItem(msg)
	require.NoError(t, err)

	assert.Equal(t, "kafka", item.Source)
	assert.Equal(t, now, item.Timestamp)
}

func TestMapMessageToTextItem_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"invalid json", `{"text":`},
		{"empty text", `{"text":"","source":"twitter"}`},
		{"missing text", `{"source":"twitter"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapMessageToTextItem(kafkago.Message{Value: []byte(tt.value)})
			require.Error(t, err)
		})
	}
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 2, 10, 4, 30, 0, 0, time.UTC)
	status := domain.DistrictStatus{
		District:   "Kedaton",
		Regency:    "Bandar Lampung",
		Social:     domain.SomeScore(76.0),
		Infra:      domain.NoData(),
		Disaster:   domain.SomeScore(100.0),
		Combined:   domain.SomeScore(84.0),
		Status:     domain.StatusNormal,
		ComputedAt: now,
	}

	msg, err := serializeToMessage(status)
	require.NoError(t, err)

	assert.Equal(t, []byte("Kedaton"), msg.Key)
	assert.Contains(t, string(msg.Value), `"status":"NORMAL"`)
	assert.Contains(t, string(msg.Value), `"infra_score":null`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "status", msg.Headers[0].Key)
	assert.Equal(t, []byte("NORMAL"), msg.Headers[0].Value)
	assert.Equal(t, "computed_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}
