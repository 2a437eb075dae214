package aggregator

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/sirupsen/logrus"
)

// Runner - один прогон агрегации
type Runner interface {
	Run(ctx context.Context) (*models.HotspotSnapshot, error)
}

// Scheduler запускает агрегацию с фиксированным интервалом
type Scheduler struct {
	runner   Runner
	interval time.Duration
	clock    clockwork.Clock
	logger   *logrus.Logger
}

func NewScheduler(runner Runner, interval time.Duration, clock clockwork.Clock, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		runner:   runner,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

// Start запускает горутину планировщика: первый прогон сразу, далее по тикеру.
// Возвращаемый канал закрывается после остановки по ctx.
func (s *Scheduler) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	s.logger.WithField("interval", s.interval).Info("Starting aggregation scheduler...")
	go func() {
		defer close(done)
		ticker := s.clock.NewTicker(s.interval)
		defer ticker.Stop()

		s.tick(ctx)
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping aggregation scheduler.")
				return
			case <-ticker.Chan():
				s.tick(ctx)
			}
		}
	}()
	return done
}

func (s *Scheduler) tick(ctx context.Context) {
	if _, err := s.runner.Run(ctx); err != nil {
		if errors.Is(err, models.ErrAggregationInProgress) {
			s.logger.Debug("Aggregation already in progress, skipping tick")
			return
		}
		// ошибка уже залогирована агрегатором, следующий тик повторит прогон
		s.logger.WithError(err).Debug("Scheduled aggregation failed")
	}
}
