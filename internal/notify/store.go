package notify

import (
	"context"

	"github.com/shenikar/hazard_hotspots/internal/models"
)

// AlertSaver - хранилище выпущенных оповещений
type AlertSaver interface {
	SaveAlert(ctx context.Context, alert models.HotspotAlert) error
}

// StoreChannel записывает оповещение в хранилище, откуда его читает GET /alerts
type StoreChannel struct {
	saver AlertSaver
}

func NewStoreChannel(saver AlertSaver) *StoreChannel {
	return &StoreChannel{saver: saver}
}

func (c *StoreChannel) Name() string {
	return "store"
}

func (c *StoreChannel) Notify(ctx context.Context, alert models.HotspotAlert) error {
	return c.saver.SaveAlert(ctx, alert)
}
