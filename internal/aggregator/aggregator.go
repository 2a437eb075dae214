package aggregator

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/shenikar/hazard_hotspots/internal/observability"
	"github.com/sirupsen/logrus"
)

// SignalSource отдает сигналы с ячейкой, созданные не раньше since
type SignalSource interface {
	ListSpatialSince(ctx context.Context, since time.Time) ([]models.HazardSignal, error)
}

// HotspotStore хранит актуальный набор горячих точек
type HotspotStore interface {
	// ReplaceHotspots заменяет весь набор в одной транзакции
	ReplaceHotspots(ctx context.Context, hotspots []models.Hotspot) error
	ListActiveHotspots(ctx context.Context, now time.Time) ([]models.Hotspot, error)
}

// Notifier доставляет оповещение о критической горячей точке
type Notifier interface {
	Notify(ctx context.Context, alert models.HotspotAlert) error
}

// SnapshotSink получает каждый опубликованный снимок
type SnapshotSink interface {
	PublishSnapshot(ctx context.Context, snapshot *models.HotspotSnapshot) error
}

// Aggregator периодически пересчитывает горячие точки из недавних сигналов
type Aggregator struct {
	signals  SignalSource
	store    HotspotStore
	notifier Notifier
	sink     SnapshotSink
	policy   Policy
	clock    clockwork.Clock
	logger   *logrus.Logger
	metrics  *observability.Metrics

	mu      sync.Mutex
	current atomic.Pointer[models.HotspotSnapshot]
}

// New создает агрегатор. notifier и sink могут быть nil.
func New(
	signals SignalSource,
	store HotspotStore,
	notifier Notifier,
	sink SnapshotSink,
	policy Policy,
	clock clockwork.Clock,
	logger *logrus.Logger,
	metrics *observability.Metrics,
) *Aggregator {
	a := &Aggregator{
		signals:  signals,
		store:    store,
		notifier: notifier,
		sink:     sink,
		policy:   policy,
		clock:    clock,
		logger:   logger,
		metrics:  metrics,
	}
	a.current.Store(&models.HotspotSnapshot{Hotspots: []models.Hotspot{}})
	return a
}

// Current возвращает последний опубликованный снимок, никогда не nil
func (a *Aggregator) Current() *models.HotspotSnapshot {
	return a.current.Load()
}

// Restore загружает активные горячие точки из хранилища при старте,
// чтобы переходы в critical не оповещались повторно после рестарта
func (a *Aggregator) Restore(ctx context.Context) error {
	log := a.logger.WithFields(logrus.Fields{
		"service": "aggregator",
		"method":  "Restore",
	})

	hotspots, err := a.store.ListActiveHotspots(ctx, a.clock.Now())
	if err != nil {
		log.WithError(err).Error("Failed to load active hotspots")
		return fmt.Errorf("aggregator: could not restore hotspots: %w", err)
	}
	if hotspots == nil {
		hotspots = []models.Hotspot{}
	}
	sort.Slice(hotspots, func(i, j int) bool { return hotspots[i].CellID < hotspots[j].CellID })

	snapshot := &models.HotspotSnapshot{Hotspots: hotspots}
	for _, h := range hotspots {
		if h.CreatedAt.After(snapshot.GeneratedAt) {
			snapshot.GeneratedAt = h.CreatedAt
		}
	}
	a.current.Store(snapshot)
	a.recordSeverities(snapshot)

	log.WithField("hotspots", len(hotspots)).Info("Hotspot snapshot restored")
	return nil
}

// Run выполняет один полный прогон агрегации. Если прогон уже идет,
// возвращает models.ErrAggregationInProgress не дожидаясь его.
func (a *Aggregator) Run(ctx context.Context) (*models.HotspotSnapshot, error) {
	if !a.mu.TryLock() {
		a.metrics.AggregationRuns.WithLabelValues("skipped").Inc()
		return nil, models.ErrAggregationInProgress
	}
	defer a.mu.Unlock()

	// прогон не прерывается отменой вызывающего
	ctx = context.WithoutCancel(ctx)

	now := a.clock.Now()
	log := a.logger.WithFields(logrus.Fields{
		"service": "aggregator",
		"method":  "Run",
		"run_at":  now,
	})
	log.Debug("Starting hotspot aggregation")
	start := time.Now()

	signals, err := a.signals.ListSpatialSince(ctx, now.Add(-a.policy.Window))
	if err != nil {
		return nil, a.fail(log, fmt.Errorf("aggregator: could not load signals: %w", err))
	}

	hotspots := BuildHotspots(signals, now, a.policy)
	if err := a.store.ReplaceHotspots(ctx, hotspots); err != nil {
		return nil, a.fail(log, fmt.Errorf("aggregator: could not persist hotspots: %w", err))
	}

	snapshot := &models.HotspotSnapshot{Hotspots: hotspots, GeneratedAt: now}
	previous := a.current.Swap(snapshot)

	a.metrics.AggregationRuns.WithLabelValues("success").Inc()
	a.metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	a.metrics.LastAggregation.Set(float64(now.Unix()))
	a.recordSeverities(snapshot)

	log.WithFields(logrus.Fields{
		"signals":  len(signals),
		"hotspots": len(hotspots),
	}).Info("Hotspot aggregation completed")

	a.notifyEscalations(ctx, previous, snapshot)
	a.publish(ctx, snapshot)
	return snapshot, nil
}

func (a *Aggregator) fail(log *logrus.Entry, err error) error {
	a.metrics.AggregationRuns.WithLabelValues("failed").Inc()
	log.WithError(err).Error("Hotspot aggregation failed, keeping previous snapshot")
	return err
}

// notifyEscalations оповещает только о ячейках, ставших critical в этом прогоне
func (a *Aggregator) notifyEscalations(ctx context.Context, previous, next *models.HotspotSnapshot) {
	if a.notifier == nil {
		return
	}
	before := previous.Severities()
	for _, h := range next.Hotspots {
		if h.SeverityLevel != models.SeverityCritical || before[h.CellID] == models.SeverityCritical {
			continue
		}
		alert := NewAlert(h, next.GeneratedAt)
		if err := a.notifier.Notify(ctx, alert); err != nil {
			a.logger.WithFields(logrus.Fields{
				"service": "aggregator",
				"cell_id": h.CellID,
			}).WithError(err).Warn("Failed to deliver critical hotspot alert")
		}
	}
}

func (a *Aggregator) publish(ctx context.Context, snapshot *models.HotspotSnapshot) {
	if a.sink == nil {
		return
	}
	if err := a.sink.PublishSnapshot(ctx, snapshot); err != nil {
		a.logger.WithField("service", "aggregator").WithError(err).Warn("Failed to publish hotspot snapshot")
	}
}

func (a *Aggregator) recordSeverities(snapshot *models.HotspotSnapshot) {
	counts := make(map[models.Severity]int)
	for _, h := range snapshot.Hotspots {
		counts[h.SeverityLevel]++
	}
	for _, s := range []models.Severity{models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical} {
		a.metrics.ActiveHotspots.WithLabelValues(string(s)).Set(float64(counts[s]))
	}
}
