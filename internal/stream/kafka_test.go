package stream

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hazard_hotspots/internal/config"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := models.Hotspot{
		ID:            uuid.New(),
		CellID:        "3a5b4c",
		SeverityLevel: models.SeverityHigh,
		SignalCount:   6,
		HazardTypes:   []models.HazardType{models.HazardTsunami},
		CreatedAt:     now,
		ExpiresAt:     now.Add(time.Hour),
	}

	msg, err := serializeToMessage(h, now)
	require.NoError(t, err)

	assert.Equal(t, []byte("3a5b4c"), msg.Key)
	assert.Contains(t, string(msg.Value), `"severity_level":"high"`)
	assert.Contains(t, string(msg.Value), `"hazard_types":["tsunami"]`)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "severity", msg.Headers[0].Key)
	assert.Equal(t, []byte("high"), msg.Headers[0].Value)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestPublishSnapshot_EmptyIsNoop(t *testing.T) {
	w := NewHotspotWriter(&config.Config{KafkaBrokers: []string{"localhost:1"}, KafkaHotspotTopic: "hazard-hotspots"})
	defer w.Close()

	err := w.PublishSnapshot(context.Background(), &models.HotspotSnapshot{})
	assert.NoError(t, err)
}
