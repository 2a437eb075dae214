package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/sirupsen/logrus"
)

type alertService struct {
	repo   AlertRepository
	clock  clockwork.Clock
	logger *logrus.Logger
}

func NewAlertService(repo AlertRepository, clock clockwork.Clock, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// ActiveAlerts - оповещения, срок которых еще не истек
func (s *alertService) ActiveAlerts(ctx context.Context) ([]models.HotspotAlert, error) {
	alerts, err := s.repo.ListActiveAlerts(ctx, s.clock.Now())
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "alert",
			"method":  "ActiveAlerts",
		}).WithError(err).Error("Failed to list active alerts")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	if alerts == nil {
		alerts = []models.HotspotAlert{}
	}
	return alerts, nil
}
