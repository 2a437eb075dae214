package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/shenikar/hazard_hotspots/internal/observability"
	"github.com/sirupsen/logrus"
)

// Channel - один канал доставки оповещений (webhook, email, sms, чат)
type Channel interface {
	Name() string
	Notify(ctx context.Context, alert models.HotspotAlert) error
}

// Dispatcher рассылает оповещение во все каналы. Ошибка одного канала
// не мешает доставке в остальные.
type Dispatcher struct {
	channels []Channel
	logger   *logrus.Logger
	metrics  *observability.Metrics
}

func NewDispatcher(logger *logrus.Logger, metrics *observability.Metrics, channels ...Channel) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		logger:   logger,
		metrics:  metrics,
	}
}

// Channels возвращает имена подключенных каналов
func (d *Dispatcher) Channels() []string {
	names := make([]string, 0, len(d.channels))
	for _, ch := range d.channels {
		names = append(names, ch.Name())
	}
	return names
}

// Notify отправляет оповещение во все каналы и возвращает объединенную ошибку
func (d *Dispatcher) Notify(ctx context.Context, alert models.HotspotAlert) error {
	var errs []error
	for _, ch := range d.channels {
		log := d.logger.WithFields(logrus.Fields{
			"service": "notify",
			"channel": ch.Name(),
			"cell_id": alert.CellID,
		})
		if err := ch.Notify(ctx, alert); err != nil {
			d.metrics.Notifications.WithLabelValues(ch.Name(), "failed").Inc()
			log.WithError(err).Warn("Failed to send hotspot alert")
			errs = append(errs, fmt.Errorf("notify: %s: %w", ch.Name(), err))
			continue
		}
		d.metrics.Notifications.WithLabelValues(ch.Name(), "sent").Inc()
		log.Info("Hotspot alert sent")
	}
	return errors.Join(errs...)
}
