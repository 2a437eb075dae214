package service

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/hazard_hotspots/internal/classifier"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/shenikar/hazard_hotspots/internal/observability"
	"github.com/shenikar/hazard_hotspots/internal/service/mocks"
	"github.com/shenikar/hazard_hotspots/internal/spatial"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestSignalService - вспомогательная функция для создания сервиса с моками
func newTestSignalService(t *testing.T) (*signalService, *mocks.MockSignalRepository, *observability.Metrics) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSignalRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cls, err := classifier.New(classifier.DefaultConfig())
	require.NoError(t, err)
	indexer, err := spatial.NewIndexer(spatial.DefaultCellLevel)
	require.NoError(t, err)
	metrics := observability.NewMetricsForTesting()

	svc := NewSignalService(repoMock, cls, indexer, clockwork.NewFakeClockAt(testNow), logger, metrics)
	return svc.(*signalService), repoMock, metrics
}

func TestIngestReport_Success(t *testing.T) {
	svc, repoMock, metrics := newTestSignalService(t)
	ctx := context.Background()
	identity := models.Identity{UserID: "user-42", Role: models.RoleCitizen}

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().PublishSignal(ctx, gomock.Any()).Return(nil).Times(1)

	signal, err := svc.IngestReport(ctx, identity, models.CitizenReport{
		Title:      "Water rising fast",
		HazardType: models.HazardFlooding,
		Latitude:   13.0827,
		Longitude:  80.2707,
		ReporterID: "spoofed",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-42", signal.ReporterID)
	assert.Equal(t, models.SourceCitizen, signal.Source)
	assert.Equal(t, 1.0, signal.HazardProbability)
	assert.Equal(t, models.SeverityMedium, signal.Severity)
	assert.Equal(t, testNow, signal.CreatedAt)
	assert.NotEmpty(t, signal.CellID)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SignalsIngested.WithLabelValues("citizen")))
}

func TestIngestReport_InvalidCoordinate(t *testing.T) {
	svc, repoMock, metrics := newTestSignalService(t)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.IngestReport(context.Background(), models.Identity{UserID: "u"}, models.CitizenReport{
		Title:      "Flood",
		HazardType: models.HazardFlooding,
		Latitude:   91,
		Longitude:  0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SignalsRejected.WithLabelValues("invalid_coordinate")))
}

func TestIngestPost_ClassifiesText(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().PublishSignal(ctx, gomock.Any()).Return(errors.New("redis down")) // не влияет на прием

	signal, err := svc.IngestPost(ctx, models.SocialPost{
		Platform: "Twitter",
		PostID:   "1234",
		Content:  "Tsunami warning! Massive waves approaching the coast. Evacuate now!",
		Author:   "coastwatch",
	})

	require.NoError(t, err)
	assert.Equal(t, models.SourceTwitter, signal.Source)
	assert.Equal(t, 1.0, signal.HazardProbability)
	assert.Equal(t, models.HazardTsunami, signal.HazardType)
	require.NotNil(t, signal.SentimentScore)
	assert.Contains(t, signal.HazardKeywords, "tsunami")
	assert.Nil(t, signal.Location)
	assert.Empty(t, signal.CellID)
}

func TestIngestPost_UnknownPlatform(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.IngestPost(context.Background(), models.SocialPost{Platform: "myspace", Content: "flood"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestIngestSignal_OverwritesCellID(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().PublishSignal(ctx, gomock.Any()).Return(nil)

	signal := &models.HazardSignal{
		Source:     models.SourceCitizen,
		Title:      "High waves",
		HazardType: models.HazardHighWaves,
		Location:   &models.Location{Latitude: 8.5, Longitude: 76.9},
		CellID:     "user-supplied",
	}
	require.NoError(t, svc.IngestSignal(ctx, signal))

	expected, err := svc.indexer.CellID(8.5, 76.9)
	require.NoError(t, err)
	assert.Equal(t, expected, signal.CellID)
	assert.NotEqual(t, uuid.Nil, signal.ID)
}

func TestIngestSignal_ClassifiesUnscoredPost(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().PublishSignal(ctx, gomock.Any()).Return(nil)

	signal := &models.HazardSignal{Source: models.SourceFacebook, Text: "Storm surge flooding the harbour"}
	require.NoError(t, svc.IngestSignal(ctx, signal))
	assert.Greater(t, signal.HazardProbability, 0.0)
	assert.NotNil(t, signal.SentimentScore)
}

func TestIngestSignal_RepositoryError(t *testing.T) {
	svc, repoMock, metrics := newTestSignalService(t)
	ctx := context.Background()
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error"))
	repoMock.EXPECT().PublishSignal(gomock.Any(), gomock.Any()).Times(0)

	err := svc.IngestSignal(ctx, &models.HazardSignal{
		Source:     models.SourceCitizen,
		Title:      "Flood",
		HazardType: models.HazardFlooding,
		Location:   &models.Location{Latitude: 1, Longitude: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service: could not create signal")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SignalsRejected.WithLabelValues("store_error")))
}

func TestIngestSignal_NaNRejected(t *testing.T) {
	svc, _, _ := newTestSignalService(t)
	err := svc.IngestSignal(context.Background(), &models.HazardSignal{
		Source:   models.SourceYouTube,
		Text:     "flood",
		Location: &models.Location{Latitude: math.NaN(), Longitude: 0},
	})
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func TestIngestSignal_CitizenRequiresHazardType(t *testing.T) {
	svc, repoMock, metrics := newTestSignalService(t)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	for _, ht := range []models.HazardType{"", "meteor"} {
		err := svc.IngestSignal(context.Background(), &models.HazardSignal{
			Source:     models.SourceCitizen,
			Title:      "Something on the beach",
			HazardType: ht,
			Location:   &models.Location{Latitude: 1, Longitude: 1},
		})
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.SignalsRejected.WithLabelValues("invalid_input")))
}

func TestIngestSignal_CitizenSeverityDefaultsToMedium(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().PublishSignal(ctx, gomock.Any()).Return(nil)

	signal := &models.HazardSignal{
		Source:     models.SourceCitizen,
		Title:      "Tide over the road",
		HazardType: models.HazardAbnormalTide,
		Location:   &models.Location{Latitude: 9.9, Longitude: 76.2},
	}
	require.NoError(t, svc.IngestSignal(ctx, signal))
	assert.Equal(t, models.SeverityMedium, signal.Severity)
}

func TestIngestSignal_CitizenProbabilityIsOne(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()

	var stored *models.HazardSignal
	repoMock.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *models.HazardSignal) error {
		stored = s
		return nil
	})
	repoMock.EXPECT().PublishSignal(ctx, gomock.Any()).Return(nil)

	require.NoError(t, svc.IngestSignal(ctx, &models.HazardSignal{
		Source:            models.SourceCitizen,
		Title:             "Flooded street",
		HazardType:        models.HazardFlooding,
		Severity:          models.SeverityHigh,
		Location:          &models.Location{Latitude: 13, Longitude: 80},
		HazardProbability: 0.3,
	}))
	require.NotNil(t, stored)
	assert.Equal(t, 1.0, stored.HazardProbability)
	assert.Equal(t, models.SeverityHigh, stored.Severity)
}

func TestIngestSignal_CitizenHasNoSentiment(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().PublishSignal(ctx, gomock.Any()).Return(nil)

	sentiment := -0.9
	signal := &models.HazardSignal{
		Source:         models.SourceCitizen,
		Title:          "Terrible surge",
		HazardType:     models.HazardStormSurge,
		Location:       &models.Location{Latitude: 13, Longitude: 80},
		SentimentScore: &sentiment,
	}
	require.NoError(t, svc.IngestSignal(ctx, signal))
	assert.Nil(t, signal.SentimentScore)
}

func TestListReports(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	verified := true

	repoMock.EXPECT().ListFiltered(ctx, models.SignalFilter{
		Sources:    []models.Source{models.SourceCitizen},
		HazardType: models.HazardFlooding,
		Severity:   models.SeverityHigh,
		Verified:   &verified,
		Limit:      defaultListLimit,
	}).Return(nil, nil)

	reports, err := svc.ListReports(ctx, models.SignalFilter{
		HazardType: models.HazardFlooding,
		Severity:   models.SeverityHigh,
		Verified:   &verified,
	})
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)

	_, err = svc.ListReports(ctx, models.SignalFilter{HazardType: "meteor"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	_, err = svc.ListReports(ctx, models.SignalFilter{Severity: "apocalyptic"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestListPosts(t *testing.T) {
	t.Run("single platform", func(t *testing.T) {
		svc, repoMock, _ := newTestSignalService(t)
		ctx := context.Background()
		posts := []models.HazardSignal{{ID: uuid.New(), Source: models.SourceTwitter, Text: "flood"}}
		repoMock.EXPECT().ListFiltered(ctx, models.SignalFilter{
			Sources: []models.Source{models.SourceTwitter},
			Limit:   50,
		}).Return(posts, nil)

		got, err := svc.ListPosts(ctx, " Twitter ", 50)
		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("all platforms", func(t *testing.T) {
		svc, repoMock, _ := newTestSignalService(t)
		ctx := context.Background()
		repoMock.EXPECT().ListFiltered(ctx, models.SignalFilter{
			Sources: []models.Source{models.SourceTwitter, models.SourceFacebook, models.SourceYouTube},
			Limit:   maxListLimit,
		}).Return([]models.HazardSignal{}, nil)

		_, err := svc.ListPosts(ctx, "", 10000)
		require.NoError(t, err)
	})

	t.Run("citizen is not a platform", func(t *testing.T) {
		svc, _, _ := newTestSignalService(t)
		_, err := svc.ListPosts(context.Background(), "citizen", 10)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repoMock, _ := newTestSignalService(t)
		repoMock.EXPECT().ListFiltered(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
		_, err := svc.ListPosts(context.Background(), "facebook", 10)
		assert.Error(t, err)
	})
}

func TestSubscribeSignals(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()

	feed := make(chan models.HazardSignal, 1)
	feed <- models.HazardSignal{ID: uuid.New(), Source: models.SourceCitizen}
	close(feed)
	repoMock.EXPECT().SubscribeSignals(ctx).Return((<-chan models.HazardSignal)(feed), nil)

	got, err := svc.SubscribeSignals(ctx)
	require.NoError(t, err)
	s, ok := <-got
	assert.True(t, ok)
	assert.Equal(t, models.SourceCitizen, s.Source)

	repoMock.EXPECT().SubscribeSignals(ctx).Return(nil, errors.New("redis down"))
	_, err = svc.SubscribeSignals(ctx)
	assert.Error(t, err)
}

func TestVerifyReport(t *testing.T) {
	id := uuid.New()
	report := func() *models.HazardSignal {
		return &models.HazardSignal{ID: id, Source: models.SourceCitizen, Title: "Flood"}
	}

	t.Run("official verifies", func(t *testing.T) {
		svc, repoMock, _ := newTestSignalService(t)
		ctx := context.Background()
		repoMock.EXPECT().GetByID(ctx, id).Return(report(), nil)
		repoMock.EXPECT().Verify(ctx, id, "officer-1", testNow).Return(nil)
		repoMock.EXPECT().InvalidateSignalCache(ctx, id).Return(nil)

		signal, err := svc.VerifyReport(ctx, models.Identity{UserID: "officer-1", Role: models.RoleOfficial}, id)
		require.NoError(t, err)
		assert.True(t, signal.Verified)
		assert.Equal(t, "officer-1", signal.VerifiedBy)
		require.NotNil(t, signal.VerifiedAt)
		assert.Equal(t, testNow, *signal.VerifiedAt)
	})

	t.Run("citizen is forbidden", func(t *testing.T) {
		svc, repoMock, _ := newTestSignalService(t)
		repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.VerifyReport(context.Background(), models.Identity{UserID: "u", Role: models.RoleCitizen}, id)
		assert.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repoMock, _ := newTestSignalService(t)
		repoMock.EXPECT().GetByID(gomock.Any(), id).Return(nil, models.ErrNotFound)

		_, err := svc.VerifyReport(context.Background(), models.Identity{UserID: "a", Role: models.RoleAnalyst}, id)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("posts cannot be verified", func(t *testing.T) {
		svc, repoMock, _ := newTestSignalService(t)
		repoMock.EXPECT().GetByID(gomock.Any(), id).Return(&models.HazardSignal{ID: id, Source: models.SourceTwitter}, nil)
		repoMock.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.VerifyReport(context.Background(), models.Identity{UserID: "a", Role: models.RoleAnalyst}, id)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}

func TestGetSignal_Success_FromCache(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.HazardSignal{ID: id, Title: "Сигнал из кеша"}

	repoMock.EXPECT().GetSignalFromCache(ctx, id).Return(expected, nil).Times(1)
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	signal, err := svc.GetSignal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, signal)
}

func TestGetSignal_Success_FromDB(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	id := uuid.New()
	expected := &models.HazardSignal{ID: id, Title: "Сигнал из БД"}

	// 1. Промах кеша
	repoMock.EXPECT().GetSignalFromCache(ctx, id).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	repoMock.EXPECT().GetByID(ctx, id).Return(expected, nil).Times(1)
	// 3. Запись в кеш
	repoMock.EXPECT().SetSignalCache(ctx, expected).Return(nil).Times(1)

	signal, err := svc.GetSignal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, signal)
}

func TestGetSignal_NotFound(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetSignalFromCache(ctx, id).Return(nil, errors.New("cache down"))
	repoMock.EXPECT().GetByID(ctx, id).Return(nil, models.ErrNotFound)

	_, err := svc.GetSignal(ctx, id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListInArea(t *testing.T) {
	svc, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	bounds := models.Bounds{MinLat: 10, MinLon: 70, MaxLat: 20, MaxLon: 80}

	repoMock.EXPECT().ListInBounds(ctx, bounds, defaultListLimit).Return(nil, nil)
	signals, err := svc.ListInArea(ctx, bounds, 0)
	require.NoError(t, err)
	assert.NotNil(t, signals)
	assert.Empty(t, signals)

	repoMock.EXPECT().ListInBounds(ctx, bounds, maxListLimit).Return([]models.HazardSignal{}, nil)
	_, err = svc.ListInArea(ctx, bounds, 10000)
	require.NoError(t, err)

	_, err = svc.ListInArea(ctx, models.Bounds{MinLat: 20, MinLon: 70, MaxLat: 10, MaxLon: 80}, 10)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAnalyzeText(t *testing.T) {
	svc, _, _ := newTestSignalService(t)

	result, err := svc.AnalyzeText("Huge WAVES hitting the shore @coastguard https://t.co/x #flood")
	require.NoError(t, err)
	assert.Equal(t, "huge waves hitting the shore", result.ProcessedText)
	assert.Greater(t, result.HazardProbability, 0.0)
	assert.NotEmpty(t, result.HazardKeywords)

	_, err = svc.AnalyzeText("   ")
	assert.ErrorIs(t, err, models.ErrEmptyText)
}
