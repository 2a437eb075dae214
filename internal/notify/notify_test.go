package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/shenikar/hazard_hotspots/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChannel struct {
	name   string
	err    error
	alerts []models.HotspotAlert
}

func (s *stubChannel) Name() string { return s.name }

func (s *stubChannel) Notify(_ context.Context, alert models.HotspotAlert) error {
	s.alerts = append(s.alerts, alert)
	return s.err
}

func testAlert() models.HotspotAlert {
	return models.HotspotAlert{
		CellID:       "3a5b",
		Severity:     models.SeverityCritical,
		Center:       models.Location{Latitude: 13.0827, Longitude: 80.2707},
		RadiusMeters: 5000,
		HazardTypes:  []models.HazardType{models.HazardFlooding, models.HazardTsunami},
		SignalCount:  11,
		Title:        "Tsunami Alert",
		Message:      "Move to higher ground.",
		Timestamp:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_Notify(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	metrics := observability.NewMetricsForTesting()

	broken := &stubChannel{name: "webhook", err: errors.New("queue unavailable")}
	working := &stubChannel{name: "shoutrrr"}
	d := NewDispatcher(logger, metrics, broken, working)

	err := d.Notify(context.Background(), testAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook")

	assert.Len(t, broken.alerts, 1)
	assert.Len(t, working.alerts, 1)
	assert.Equal(t, []string{"webhook", "shoutrrr"}, d.Channels())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Notifications.WithLabelValues("webhook", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Notifications.WithLabelValues("shoutrrr", "sent")))
}

func TestDispatcher_NoChannels(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	d := NewDispatcher(logger, observability.NewMetricsForTesting())
	assert.NoError(t, d.Notify(context.Background(), testAlert()))
}

func TestNewShoutrrrChannel(t *testing.T) {
	t.Run("no urls", func(t *testing.T) {
		_, err := NewShoutrrrChannel(nil, time.Second)
		assert.Error(t, err)
	})
	t.Run("unknown scheme", func(t *testing.T) {
		_, err := NewShoutrrrChannel([]string{"nosuchservice://token@host"}, time.Second)
		assert.Error(t, err)
	})
	t.Run("logger service sends", func(t *testing.T) {
		ch, err := NewShoutrrrChannel([]string{"logger://"}, time.Second)
		require.NoError(t, err)
		assert.Equal(t, "shoutrrr", ch.Name())
		assert.NoError(t, ch.Notify(context.Background(), testAlert()))
	})
}

func TestFormatAlert(t *testing.T) {
	text := FormatAlert(testAlert())
	assert.Contains(t, text, "Move to higher ground.")
	assert.Contains(t, text, "Severity: critical")
	assert.Contains(t, text, "13.08270, 80.27070 (radius 5000 m)")
	assert.Contains(t, text, "Hazards: flooding, tsunami")
	assert.Contains(t, text, "Reports: 11")
	assert.Contains(t, text, "2026-03-01T12:00:00Z")
}

type memorySaver struct {
	saved []models.HotspotAlert
	err   error
}

func (m *memorySaver) SaveAlert(_ context.Context, alert models.HotspotAlert) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, alert)
	return nil
}

func TestStoreChannel(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	metrics := observability.NewMetricsForTesting()

	saver := &memorySaver{}
	d := NewDispatcher(logger, metrics, NewStoreChannel(saver))
	require.NoError(t, d.Notify(context.Background(), testAlert()))

	require.Len(t, saver.saved, 1)
	assert.Equal(t, "3a5b", saver.saved[0].CellID)
	assert.Equal(t, []string{"store"}, d.Channels())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Notifications.WithLabelValues("store", "sent")))

	saver.err = errors.New("connection refused")
	assert.Error(t, d.Notify(context.Background(), testAlert()))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Notifications.WithLabelValues("store", "failed")))
}
