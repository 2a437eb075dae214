package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/hazard_hotspots/internal/classifier"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/shenikar/hazard_hotspots/internal/normalizer"
	"github.com/shenikar/hazard_hotspots/internal/observability"
	"github.com/shenikar/hazard_hotspots/internal/spatial"
	"github.com/sirupsen/logrus"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type signalService struct {
	repo       SignalRepository
	normalizer *normalizer.Normalizer
	classifier *classifier.Classifier
	indexer    *spatial.Indexer
	clock      clockwork.Clock
	logger     *logrus.Logger
	metrics    *observability.Metrics
}

func NewSignalService(
	repo SignalRepository,
	cls *classifier.Classifier,
	indexer *spatial.Indexer,
	clock clockwork.Clock,
	logger *logrus.Logger,
	metrics *observability.Metrics,
) SignalService {
	return &signalService{
		repo:       repo,
		normalizer: normalizer.New(clock.Now),
		classifier: cls,
		indexer:    indexer,
		clock:      clock,
		logger:     logger,
		metrics:    metrics,
	}
}

// IngestReport нормализует и сохраняет отчет гражданина.
// Автор отчета берется из подтвержденной личности, а не из тела запроса.
func (s *signalService) IngestReport(ctx context.Context, identity models.Identity, report models.CitizenReport) (*models.HazardSignal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "signal",
		"method":      "IngestReport",
		"reporter_id": identity.UserID,
	})

	report.ReporterID = identity.UserID
	signal, err := s.normalizer.NormalizeReport(report)
	if err != nil {
		s.reject(err)
		log.WithError(err).Warn("Citizen report rejected")
		return nil, fmt.Errorf("service: invalid citizen report: %w", err)
	}
	if err := s.IngestSignal(ctx, signal); err != nil {
		return nil, err
	}
	return signal, nil
}

// IngestPost нормализует пост, оценивает текст классификатором и сохраняет
func (s *signalService) IngestPost(ctx context.Context, post models.SocialPost) (*models.HazardSignal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "signal",
		"method":   "IngestPost",
		"platform": post.Platform,
		"post_id":  post.PostID,
	})

	signal, err := s.normalizer.NormalizePost(post)
	if err != nil {
		s.reject(err)
		log.WithError(err).Warn("Social post rejected")
		return nil, fmt.Errorf("service: invalid social post: %w", err)
	}

	s.classify(signal)
	log.WithFields(logrus.Fields{
		"hazard_probability": signal.HazardProbability,
		"hazard_type":        signal.HazardType,
	}).Debug("Social post classified")

	if err := s.IngestSignal(ctx, signal); err != nil {
		return nil, err
	}
	return signal, nil
}

func (s *signalService) classify(signal *models.HazardSignal) {
	result, err := s.classifier.Classify(signal.Text)
	if err != nil {
		// пустой текст: вероятность 0, тип other
		signal.HazardProbability = 0
		signal.HazardType = models.HazardOther
		return
	}
	sentiment := result.SentimentScore
	signal.HazardProbability = result.HazardProbability
	signal.SentimentScore = &sentiment
	signal.HazardKeywords = result.HazardKeywords
	signal.HazardType = result.HazardType
}

// IngestSignal проверяет сигнал, вычисляет ячейку и сохраняет его.
// Переданный снаружи cell id всегда перезаписывается.
func (s *signalService) IngestSignal(ctx context.Context, signal *models.HazardSignal) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "signal",
		"method":  "IngestSignal",
	})

	if err := normalizer.Validate(signal); err != nil {
		s.reject(err)
		log.WithError(err).Warn("Signal rejected")
		return fmt.Errorf("service: invalid signal: %w", err)
	}
	normalizer.ApplyCitizenDefaults(signal)
	if signal.ID == uuid.Nil {
		signal.ID = uuid.New()
	}
	if signal.CreatedAt.IsZero() {
		signal.CreatedAt = s.clock.Now()
	}
	if signal.Source.IsPlatform() && signal.SentimentScore == nil && signal.HazardKeywords == nil {
		s.classify(signal)
	}

	signal.CellID = ""
	if signal.Location != nil {
		cell, err := s.indexer.CellID(signal.Location.Latitude, signal.Location.Longitude)
		if err != nil {
			// без ячейки сигнал хранится, но не участвует в агрегации
			log.WithError(err).Warn("Failed to derive cell id")
		} else {
			signal.CellID = cell
		}
	}

	log = log.WithFields(logrus.Fields{
		"signal_id": signal.ID,
		"source":    signal.Source,
		"cell_id":   signal.CellID,
	})
	if err := s.repo.Create(ctx, signal); err != nil {
		s.metrics.SignalsRejected.WithLabelValues("store_error").Inc()
		log.WithError(err).Error("Failed to create signal in repository")
		return fmt.Errorf("service: could not create signal: %w", err)
	}
	s.metrics.SignalsIngested.WithLabelValues(string(signal.Source)).Inc()

	if err := s.repo.PublishSignal(ctx, signal); err != nil {
		log.WithError(err).Warn("Failed to publish signal to realtime feed")
	}
	log.Info("Signal ingested successfully")
	return nil
}

func (s *signalService) reject(err error) {
	reason := "invalid_input"
	if errors.Is(err, models.ErrInvalidCoordinate) {
		reason = "invalid_coordinate"
	}
	s.metrics.SignalsRejected.WithLabelValues(reason).Inc()
}

// VerifyReport подтверждает отчет гражданина. Доступно официальным лицам и аналитикам.
func (s *signalService) VerifyReport(ctx context.Context, identity models.Identity, id uuid.UUID) (*models.HazardSignal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "signal",
		"method":    "VerifyReport",
		"signal_id": id,
		"user_id":   identity.UserID,
		"role":      identity.Role,
	})
	log.Info("Attempting to verify report")

	if !identity.Role.CanVerify() {
		log.Warn("Role is not allowed to verify reports")
		return nil, fmt.Errorf("service: role %q cannot verify reports: %w", identity.Role, models.ErrForbidden)
	}

	signal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to verify a non-existent report")
		return nil, fmt.Errorf("service: report %s not found for verify: %w", id, err)
	}
	if signal.Source != models.SourceCitizen {
		return nil, fmt.Errorf("service: only citizen reports can be verified: %w", models.ErrInvalidInput)
	}

	now := s.clock.Now()
	if err := s.repo.Verify(ctx, id, identity.UserID, now); err != nil {
		log.WithError(err).Error("Failed to verify report in repository")
		return nil, fmt.Errorf("service: could not verify report: %w", err)
	}
	if err := s.repo.InvalidateSignalCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate signal cache")
	}

	signal.Verified = true
	signal.VerifiedBy = identity.UserID
	signal.VerifiedAt = &now
	log.Info("Report verified successfully")
	return signal, nil
}

// GetSignal получает сигнал по ID, сначала из кеша
func (s *signalService) GetSignal(ctx context.Context, id uuid.UUID) (*models.HazardSignal, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "signal",
		"method":    "GetSignal",
		"signal_id": id,
	})

	cached, err := s.repo.GetSignalFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read signal from cache")
	}
	if cached != nil {
		log.Debug("Signal fetched from cache")
		return cached, nil
	}

	signal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get signal in repository")
		return nil, fmt.Errorf("service: not get signal: %w", err)
	}
	if err := s.repo.SetSignalCache(ctx, signal); err != nil {
		log.WithError(err).Warn("Failed to cache signal")
	}
	return signal, nil
}

// ListInArea возвращает последние сигналы внутри прямоугольника
func (s *signalService) ListInArea(ctx context.Context, bounds models.Bounds, limit int) ([]models.HazardSignal, error) {
	if err := spatial.ValidateBounds(bounds); err != nil {
		return nil, fmt.Errorf("service: %w: %w", models.ErrInvalidInput, err)
	}
	signals, err := s.repo.ListInBounds(ctx, bounds, clampLimit(limit))
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "signal",
			"method":  "ListInArea",
		}).WithError(err).Error("Failed to list signals in area")
		return nil, fmt.Errorf("service: could not list signals in area: %w", err)
	}
	if signals == nil {
		signals = []models.HazardSignal{}
	}
	return signals, nil
}

// ListReports возвращает отчеты граждан с фильтром по типу, серьезности и подтверждению
func (s *signalService) ListReports(ctx context.Context, filter models.SignalFilter) ([]models.HazardSignal, error) {
	if filter.HazardType != "" && !filter.HazardType.Valid() {
		return nil, fmt.Errorf("service: unknown hazard type %q: %w", filter.HazardType, models.ErrInvalidInput)
	}
	if filter.Severity != "" && !filter.Severity.Valid() {
		return nil, fmt.Errorf("service: unknown severity %q: %w", filter.Severity, models.ErrInvalidInput)
	}
	filter.Sources = []models.Source{models.SourceCitizen}
	filter.Limit = clampLimit(filter.Limit)

	reports, err := s.repo.ListFiltered(ctx, filter)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "signal",
			"method":  "ListReports",
		}).WithError(err).Error("Failed to list citizen reports")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}
	if reports == nil {
		reports = []models.HazardSignal{}
	}
	return reports, nil
}

// ListPosts возвращает посты из соцсетей. Пустая платформа - все платформы.
func (s *signalService) ListPosts(ctx context.Context, platform string, limit int) ([]models.HazardSignal, error) {
	filter := models.SignalFilter{Limit: clampLimit(limit)}
	if p := models.Source(strings.ToLower(strings.TrimSpace(platform))); p != "" {
		if !p.IsPlatform() {
			return nil, fmt.Errorf("service: unknown platform %q: %w", platform, models.ErrInvalidInput)
		}
		filter.Sources = []models.Source{p}
	} else {
		for _, src := range models.Sources {
			if src.IsPlatform() {
				filter.Sources = append(filter.Sources, src)
			}
		}
	}

	posts, err := s.repo.ListFiltered(ctx, filter)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":  "signal",
			"method":   "ListPosts",
			"platform": platform,
		}).WithError(err).Error("Failed to list social posts")
		return nil, fmt.Errorf("service: could not list posts: %w", err)
	}
	if posts == nil {
		posts = []models.HazardSignal{}
	}
	return posts, nil
}

// SubscribeSignals открывает realtime-ленту принятых сигналов
func (s *signalService) SubscribeSignals(ctx context.Context) (<-chan models.HazardSignal, error) {
	feed, err := s.repo.SubscribeSignals(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "signal",
			"method":  "SubscribeSignals",
		}).WithError(err).Error("Failed to subscribe to signal feed")
		return nil, fmt.Errorf("service: could not subscribe to signal feed: %w", err)
	}
	return feed, nil
}

func clampLimit(limit int) int {
	switch {
	case limit < 1:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}

// AnalyzeText прогоняет текст через классификатор без сохранения
func (s *signalService) AnalyzeText(text string) (*models.TextAnalysis, error) {
	result, err := s.classifier.Classify(text)
	if err != nil {
		return nil, fmt.Errorf("service: could not analyze text: %w", err)
	}
	keywords := result.HazardKeywords
	if keywords == nil {
		keywords = []string{}
	}
	return &models.TextAnalysis{
		ProcessedText:     classifier.Preprocess(text),
		HazardProbability: result.HazardProbability,
		SentimentScore:    result.SentimentScore,
		HazardKeywords:    keywords,
		HazardType:        result.HazardType,
		IsHazardRelated:   result.HazardRelated,
	}, nil
}
