package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hazard_hotspots/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// SignalRepository определяет контракт хранилища сигналов и их кеша
type SignalRepository interface {
	Create(ctx context.Context, signal *models.HazardSignal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.HazardSignal, error)
	Verify(ctx context.Context, id uuid.UUID, verifiedBy string, at time.Time) error
	ListRecent(ctx context.Context, limit int) ([]models.HazardSignal, error)
	ListInBounds(ctx context.Context, bounds models.Bounds, limit int) ([]models.HazardSignal, error)
	ListSince(ctx context.Context, since time.Time) ([]models.HazardSignal, error)
	ListFiltered(ctx context.Context, filter models.SignalFilter) ([]models.HazardSignal, error)
	CountByHazardType(ctx context.Context, since time.Time) (map[models.HazardType]int, error)
	CountBySource(ctx context.Context, since time.Time) (map[models.Source]int, error)

	GetSignalFromCache(ctx context.Context, id uuid.UUID) (*models.HazardSignal, error)
	SetSignalCache(ctx context.Context, signal *models.HazardSignal) error
	InvalidateSignalCache(ctx context.Context, id uuid.UUID) error
	// PublishSignal отправляет сигнал в realtime-канал
	PublishSignal(ctx context.Context, signal *models.HazardSignal) error
	SubscribeSignals(ctx context.Context) (<-chan models.HazardSignal, error)
}

// AlertRepository - сохраненные оповещения о горячих точках
type AlertRepository interface {
	ListActiveAlerts(ctx context.Context, now time.Time) ([]models.HotspotAlert, error)
}

// HotspotAggregator - запуск агрегации по требованию и текущий снимок
type HotspotAggregator interface {
	Run(ctx context.Context) (*models.HotspotSnapshot, error)
	Current() *models.HotspotSnapshot
}

// SignalService - прием, подтверждение и чтение сигналов
type SignalService interface {
	IngestReport(ctx context.Context, identity models.Identity, report models.CitizenReport) (*models.HazardSignal, error)
	IngestPost(ctx context.Context, post models.SocialPost) (*models.HazardSignal, error)
	IngestSignal(ctx context.Context, signal *models.HazardSignal) error
	VerifyReport(ctx context.Context, identity models.Identity, id uuid.UUID) (*models.HazardSignal, error)
	GetSignal(ctx context.Context, id uuid.UUID) (*models.HazardSignal, error)
	ListInArea(ctx context.Context, bounds models.Bounds, limit int) ([]models.HazardSignal, error)
	ListReports(ctx context.Context, filter models.SignalFilter) ([]models.HazardSignal, error)
	ListPosts(ctx context.Context, platform string, limit int) ([]models.HazardSignal, error)
	SubscribeSignals(ctx context.Context) (<-chan models.HazardSignal, error)
	AnalyzeText(text string) (*models.TextAnalysis, error)
}

// DashboardService - проекции только для чтения
type DashboardService interface {
	CountsByHazardType(ctx context.Context) ([]models.HazardTypeCount, error)
	CountsBySource(ctx context.Context) ([]models.SourceCount, error)
	ActiveHotspots(ctx context.Context) []models.Hotspot
	RecentSignals(ctx context.Context, n int) ([]models.HazardSignal, error)
	Stats(ctx context.Context) (*models.DashboardStats, error)
	HazardAnalysis(ctx context.Context) (*models.HazardAnalysis, error)
}

// AlertService - чтение активных оповещений
type AlertService interface {
	ActiveAlerts(ctx context.Context) ([]models.HotspotAlert, error)
}
