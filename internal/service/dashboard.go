package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/patrickmn/go-cache"
	"github.com/shenikar/hazard_hotspots/internal/classifier"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultRecentSignals = 20
	maxRecentSignals     = 100
	trendingKeywordLimit = 10
	hazardPostThreshold  = 0.5

	hazardTypeCountsKey = "counts:hazard_type"
	sourceCountsKey     = "counts:source"
)

type dashboardService struct {
	repo    SignalRepository
	hotspot HotspotAggregator
	clock   clockwork.Clock
	window  time.Duration
	cache   *cache.Cache
	logger  *logrus.Logger
}

// NewDashboardService создает сервис панели. Счетчики кешируются в памяти на cacheTTL.
func NewDashboardService(
	repo SignalRepository,
	hotspot HotspotAggregator,
	clock clockwork.Clock,
	window, cacheTTL time.Duration,
	logger *logrus.Logger,
) DashboardService {
	return &dashboardService{
		repo:    repo,
		hotspot: hotspot,
		clock:   clock,
		window:  window,
		cache:   cache.New(cacheTTL, 2*cacheTTL),
		logger:  logger,
	}
}

// CountsByHazardType - число сигналов по типу опасности за окно, по убыванию
func (s *dashboardService) CountsByHazardType(ctx context.Context) ([]models.HazardTypeCount, error) {
	if cached, ok := s.cache.Get(hazardTypeCountsKey); ok {
		return cached.([]models.HazardTypeCount), nil
	}

	counts, err := s.repo.CountByHazardType(ctx, s.since())
	if err != nil {
		s.logError("CountsByHazardType", err)
		return nil, fmt.Errorf("service: could not count signals by hazard type: %w", err)
	}

	out := make([]models.HazardTypeCount, 0, len(counts))
	for ht, n := range counts {
		if n > 0 {
			out = append(out, models.HazardTypeCount{HazardType: ht, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].HazardType < out[j].HazardType
	})
	s.cache.SetDefault(hazardTypeCountsKey, out)
	return out, nil
}

// CountsBySource - число сигналов по источнику за окно, по убыванию
func (s *dashboardService) CountsBySource(ctx context.Context) ([]models.SourceCount, error) {
	if cached, ok := s.cache.Get(sourceCountsKey); ok {
		return cached.([]models.SourceCount), nil
	}

	counts, err := s.repo.CountBySource(ctx, s.since())
	if err != nil {
		s.logError("CountsBySource", err)
		return nil, fmt.Errorf("service: could not count signals by source: %w", err)
	}

	out := make([]models.SourceCount, 0, len(counts))
	for src, n := range counts {
		if n > 0 {
			out = append(out, models.SourceCount{Source: src, Count: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Source < out[j].Source
	})
	s.cache.SetDefault(sourceCountsKey, out)
	return out, nil
}

// ActiveHotspots - неистекшие горячие точки текущего снимка
func (s *dashboardService) ActiveHotspots(_ context.Context) []models.Hotspot {
	return s.hotspot.Current().Active(s.clock.Now())
}

// RecentSignals - последние n сигналов, n ограничено 1..100, по умолчанию 20
func (s *dashboardService) RecentSignals(ctx context.Context, n int) ([]models.HazardSignal, error) {
	if n < 1 {
		n = defaultRecentSignals
	}
	if n > maxRecentSignals {
		n = maxRecentSignals
	}

	signals, err := s.repo.ListRecent(ctx, n)
	if err != nil {
		s.logError("RecentSignals", err)
		return nil, fmt.Errorf("service: could not list recent signals: %w", err)
	}
	if signals == nil {
		signals = []models.HazardSignal{}
	}
	return signals, nil
}

// Stats собирает счетчики и число активных горячих точек
func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	byType, err := s.CountsByHazardType(ctx)
	if err != nil {
		return nil, err
	}
	bySource, err := s.CountsBySource(ctx)
	if err != nil {
		return nil, err
	}
	return &models.DashboardStats{
		HazardTypes:    byType,
		Sources:        bySource,
		ActiveHotspots: len(s.ActiveHotspots(ctx)),
		Timestamp:      s.clock.Now(),
	}, nil
}

// HazardAnalysis считает тренды по постам и оценку риска за окно панели
func (s *dashboardService) HazardAnalysis(ctx context.Context) (*models.HazardAnalysis, error) {
	signals, err := s.repo.ListSince(ctx, s.since())
	if err != nil {
		s.logError("HazardAnalysis", err)
		return nil, fmt.Errorf("service: could not load signals for analysis: %w", err)
	}

	var posts, reports []models.HazardSignal
	hazardPosts := 0
	for _, sig := range signals {
		if sig.Source.IsPlatform() {
			posts = append(posts, sig)
			if sig.HazardProbability > hazardPostThreshold {
				hazardPosts++
			}
			continue
		}
		reports = append(reports, sig)
	}

	return &models.HazardAnalysis{
		HazardPostCount:  hazardPosts,
		RecentReports:    len(reports),
		SentimentTrends:  classifier.SentimentTrends(posts),
		TrendingKeywords: classifier.TrendingKeywords(posts, trendingKeywordLimit),
		RiskScore:        classifier.RiskScore(posts, reports),
		Timestamp:        s.clock.Now(),
	}, nil
}

func (s *dashboardService) since() time.Time {
	return s.clock.Now().Add(-s.window)
}

func (s *dashboardService) logError(method string, err error) {
	s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  method,
	}).WithError(err).Error("Failed to query dashboard data")
}
