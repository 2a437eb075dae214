package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/nicholas-fedor/shoutrrr"
	"github.com/nicholas-fedor/shoutrrr/pkg/router"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"
	"github.com/shenikar/hazard_hotspots/internal/models"
)

// ShoutrrrChannel доставляет оповещения через shoutrrr URL
// (smtp://, twilio://, telegram://, slack:// и т.д.)
type ShoutrrrChannel struct {
	sender *router.ServiceRouter
}

// NewShoutrrrChannel создает один отправитель на все URL
func NewShoutrrrChannel(urls []string, timeout time.Duration) (*ShoutrrrChannel, error) {
	if len(urls) == 0 {
		return nil, errors.New("notify: at least one shoutrrr URL is required")
	}
	sender, err := shoutrrr.CreateSender(urls...)
	if err != nil {
		return nil, fmt.Errorf("notify: invalid shoutrrr URL: %w", err)
	}
	if timeout > 0 {
		sender.Timeout = timeout
	}
	sender.SetLogger(log.New(io.Discard, "", 0))
	return &ShoutrrrChannel{sender: sender}, nil
}

func (c *ShoutrrrChannel) Name() string { return "shoutrrr" }

// Notify отправляет оповещение. Таймауты соблюдает сам роутер shoutrrr.
func (c *ShoutrrrChannel) Notify(_ context.Context, alert models.HotspotAlert) error {
	params := stypes.Params{}
	params.SetTitle(alert.Title)

	var errs []error
	for _, err := range c.sender.Send(FormatAlert(alert), &params) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FormatAlert - текст оповещения для каналов без структурированных данных
func FormatAlert(alert models.HotspotAlert) string {
	types := make([]string, 0, len(alert.HazardTypes))
	for _, t := range alert.HazardTypes {
		types = append(types, string(t))
	}
	return fmt.Sprintf("%s\nSeverity: %s\nArea: %.5f, %.5f (radius %d m)\nHazards: %s\nReports: %d\nTime: %s",
		alert.Message,
		alert.Severity,
		alert.Center.Latitude,
		alert.Center.Longitude,
		alert.RadiusMeters,
		strings.Join(types, ", "),
		alert.SignalCount,
		alert.Timestamp.UTC().Format(time.RFC3339),
	)
}
