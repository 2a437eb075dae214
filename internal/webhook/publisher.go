package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hazard_hotspots/internal/models"
)

const (
	webhookQueueKey = "hotspot_webhook_events"
)

// WebhookEvent - тело запроса вебхука
type WebhookEvent struct {
	Event     string              `json:"event"`
	Alert     models.HotspotAlert `json:"alert"`
	Timestamp time.Time           `json:"timestamp"`
}

const eventHotspotCritical = "hotspot.critical"

// RedisWebhookPublisher ставит оповещения в очередь Redis,
// доставку выполняет WebhookWorker
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

func (p *RedisWebhookPublisher) Name() string { return "webhook" }

// Notify публикует оповещение о горячей точке в очередь Redis
func (p *RedisWebhookPublisher) Notify(ctx context.Context, alert models.HotspotAlert) error {
	return p.Publish(ctx, NewEvent(alert))
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

func NewEvent(alert models.HotspotAlert) WebhookEvent {
	return WebhookEvent{
		Event:     eventHotspotCritical,
		Alert:     alert,
		Timestamp: alert.Timestamp,
	}
}
