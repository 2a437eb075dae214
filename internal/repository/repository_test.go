package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Интеграционные тесты: нужны PostgreSQL с PostGIS и Redis.
// TEST_DATABASE_URL=postgres://... TEST_REDIS_ADDR=localhost:6379 go test ./internal/repository/
func setupRepositories(t *testing.T) (*SignalRepository, *HotspotRepository, *pgxpool.Pool) {
	t.Helper()
	dbURL := os.Getenv("TEST_DATABASE_URL")
	redisAddr := os.Getenv("TEST_REDIS_ADDR")
	if dbURL == "" || redisAddr == "" {
		t.Skip("TEST_DATABASE_URL or TEST_REDIS_ADDR not set, skipping integration test")
	}

	m, err := migrate.New("file://../../migrations", strings.Replace(dbURL, "postgres://", "pgx5://", 1))
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE hazard_signals, hotspots, alerts;`)
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewSignalRepository(pool, rdb), NewHotspotRepository(pool), pool
}

func TestSignalRepository_CreateAndQuery(t *testing.T) {
	signals, _, _ := setupRepositories(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	sentiment := -0.4

	report := &models.HazardSignal{
		ID:                uuid.New(),
		Source:            models.SourceCitizen,
		Title:             "Flooded promenade",
		HazardType:        models.HazardFlooding,
		Severity:          models.SeverityHigh,
		Location:          &models.Location{Latitude: 13.05, Longitude: 80.28},
		CellID:            "3a5267",
		HazardProbability: 1,
		ReporterID:        "user-1",
		MediaURLs:         []string{"https://media.example/1.jpg"},
		CreatedAt:         now,
	}
	post := &models.HazardSignal{
		ID:                uuid.New(),
		Source:            models.SourceTwitter,
		ExternalID:        "tw-1",
		Text:              "tsunami warning",
		HazardType:        models.HazardTsunami,
		HazardProbability: 0.8,
		SentimentScore:    &sentiment,
		HazardKeywords:    []string{"tsunami", "warning"},
		CreatedAt:         now.Add(time.Second),
	}
	require.NoError(t, signals.Create(ctx, report))
	require.NoError(t, signals.Create(ctx, post))

	got, err := signals.GetByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Title, got.Title)
	require.NotNil(t, got.Location)
	assert.InDelta(t, 13.05, got.Location.Latitude, 1e-9)
	assert.Equal(t, report.MediaURLs, got.MediaURLs)

	gotPost, err := signals.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, gotPost.Location)
	require.NotNil(t, gotPost.SentimentScore)
	assert.Equal(t, post.HazardKeywords, gotPost.HazardKeywords)

	_, err = signals.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)

	recent, err := signals.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, post.ID, recent[0].ID)

	spatial, err := signals.ListSpatialSince(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, spatial, 1)
	assert.Equal(t, report.ID, spatial[0].ID)

	inArea, err := signals.ListInBounds(ctx, models.Bounds{MinLat: 13, MinLon: 80, MaxLat: 13.1, MaxLon: 80.3}, 10)
	require.NoError(t, err)
	assert.Len(t, inArea, 1)

	byType, err := signals.CountByHazardType(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, byType[models.HazardFlooding])
	assert.Equal(t, 1, byType[models.HazardTsunami])

	bySource, err := signals.CountBySource(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, map[models.Source]int{models.SourceCitizen: 1, models.SourceTwitter: 1}, bySource)

	require.NoError(t, signals.Verify(ctx, report.ID, "officer", now))
	assert.ErrorIs(t, signals.Verify(ctx, post.ID, "officer", now), models.ErrNotFound)

	verified := true
	reports, err := signals.ListFiltered(ctx, models.SignalFilter{
		Sources:    []models.Source{models.SourceCitizen},
		HazardType: models.HazardFlooding,
		Severity:   models.SeverityHigh,
		Verified:   &verified,
		Limit:      10,
	})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, report.ID, reports[0].ID)
	assert.True(t, reports[0].Verified)

	verified = false
	reports, err = signals.ListFiltered(ctx, models.SignalFilter{
		Sources:  []models.Source{models.SourceCitizen},
		Verified: &verified,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Empty(t, reports)

	posts, err := signals.ListFiltered(ctx, models.SignalFilter{
		Sources: []models.Source{models.SourceTwitter},
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)

	all, err := signals.ListFiltered(ctx, models.SignalFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSignalRepository_SubscribeSignals(t *testing.T) {
	signals, _, _ := setupRepositories(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	feed, err := signals.SubscribeSignals(ctx)
	require.NoError(t, err)

	s := &models.HazardSignal{ID: uuid.New(), Source: models.SourceCitizen, Title: "Surge at the pier"}
	require.NoError(t, signals.PublishSignal(ctx, s))

	select {
	case got := <-feed:
		assert.Equal(t, s.ID, got.ID)
		assert.Equal(t, "Surge at the pier", got.Title)
	case <-ctx.Done():
		t.Fatal("signal was not delivered to the subscriber")
	}

	cancel()
	for range feed {
	}
}

func TestAlertRepository_SaveAndListActive(t *testing.T) {
	_, _, pool := setupRepositories(t)
	alerts := NewAlertRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	live := models.HotspotAlert{
		ID:           uuid.New(),
		HotspotID:    uuid.New(),
		CellID:       "a",
		Severity:     models.SeverityCritical,
		Center:       models.Location{Latitude: 13.08, Longitude: 80.27},
		RadiusMeters: 5000,
		HazardTypes:  []models.HazardType{models.HazardTsunami},
		SignalCount:  10,
		Title:        "Tsunami Alert",
		Message:      "Move to higher ground.",
		Timestamp:    now,
		ExpiresAt:    now.Add(24 * time.Hour),
	}
	expired := live
	expired.ID = uuid.New()
	expired.CellID = "b"
	expired.Timestamp = now.Add(-25 * time.Hour)
	expired.ExpiresAt = now.Add(-time.Hour)

	require.NoError(t, alerts.SaveAlert(ctx, live))
	require.NoError(t, alerts.SaveAlert(ctx, expired))
	// повторная запись того же оповещения не создает дубль
	require.NoError(t, alerts.SaveAlert(ctx, live))

	active, err := alerts.ListActiveAlerts(ctx, now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, live.ID, active[0].ID)
	assert.Equal(t, "Tsunami Alert", active[0].Title)
	assert.Equal(t, []models.HazardType{models.HazardTsunami}, active[0].HazardTypes)
	assert.InDelta(t, 13.08, active[0].Center.Latitude, 1e-9)
	assert.True(t, live.ExpiresAt.Equal(active[0].ExpiresAt))
}

func TestSignalRepository_Cache(t *testing.T) {
	signals, _, _ := setupRepositories(t)
	ctx := context.Background()
	s := &models.HazardSignal{ID: uuid.New(), Source: models.SourceCitizen, Title: "cached"}

	miss, err := signals.GetSignalFromCache(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, signals.SetSignalCache(ctx, s))
	hit, err := signals.GetSignalFromCache(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "cached", hit.Title)

	require.NoError(t, signals.InvalidateSignalCache(ctx, s.ID))
	miss, err = signals.GetSignalFromCache(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestHotspotRepository_Replace(t *testing.T) {
	_, hotspots, _ := setupRepositories(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	first := []models.Hotspot{
		{ID: uuid.New(), CellID: "a", CenterLocation: models.Location{Latitude: 1, Longitude: 2}, RadiusMeters: 5000,
			SignalCount: 10, SeverityLevel: models.SeverityCritical, HazardTypes: []models.HazardType{models.HazardTsunami},
			CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
		{ID: uuid.New(), CellID: "b", CenterLocation: models.Location{Latitude: 3, Longitude: 4}, RadiusMeters: 5000,
			SignalCount: 2, SeverityLevel: models.SeverityLow, HazardTypes: []models.HazardType{models.HazardOther},
			CreatedAt: now, ExpiresAt: now.Add(-time.Minute)},
	}
	require.NoError(t, hotspots.ReplaceHotspots(ctx, first))

	active, err := hotspots.ListActiveHotspots(ctx, now)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].CellID)
	assert.Equal(t, models.SeverityCritical, active[0].SeverityLevel)
	assert.InDelta(t, 1.0, active[0].CenterLocation.Latitude, 1e-9)

	require.NoError(t, hotspots.ReplaceHotspots(ctx, nil))
	active, err = hotspots.ListActiveHotspots(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, active)
}
