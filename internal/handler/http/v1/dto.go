package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateReportRequest DTO для отчета гражданина
// @Description DTO для отчета гражданина
type CreateReportRequest struct {
	Title       string     `json:"title" validate:"required_without=Description,max=255"`
	Description string     `json:"description,omitempty" validate:"max=5000"`
	HazardType  string     `json:"hazard_type" validate:"required"`
	Severity    string     `json:"severity,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Latitude    *float64   `json:"latitude" validate:"required"`
	Longitude   *float64   `json:"longitude" validate:"required"`
	MediaURLs   []string   `json:"media_urls,omitempty" validate:"max=10,dive,url"`
	ReportedAt  *time.Time `json:"reported_at,omitempty"`
}

// CreateSocialPostRequest DTO для поста из социальной сети
// @Description DTO для поста из социальной сети
type CreateSocialPostRequest struct {
	Platform  string     `json:"platform" validate:"required"`
	PostID    string     `json:"post_id,omitempty" validate:"max=255"`
	Content   string     `json:"content" validate:"required,max=10000"`
	Author    string     `json:"author,omitempty" validate:"max=255"`
	Latitude  *float64   `json:"latitude,omitempty" validate:"required_with=Longitude"`
	Longitude *float64   `json:"longitude,omitempty" validate:"required_with=Latitude"`
	PostedAt  *time.Time `json:"posted_at,omitempty"`
}

// CreateSignalRequest DTO для уже нормализованного сигнала от внешнего сборщика
// @Description DTO для уже нормализованного сигнала
type CreateSignalRequest struct {
	Source     string     `json:"source" validate:"required"`
	ExternalID string     `json:"external_id,omitempty" validate:"max=255"`
	Title      string     `json:"title,omitempty" validate:"max=255"`
	Text       string     `json:"text,omitempty" validate:"max=10000"`
	Author     string     `json:"author,omitempty" validate:"max=255"`
	HazardType string     `json:"hazard_type,omitempty"`
	Severity   string     `json:"severity,omitempty"`
	Latitude   *float64   `json:"latitude,omitempty" validate:"required_with=Longitude"`
	Longitude  *float64   `json:"longitude,omitempty" validate:"required_with=Latitude"`
	MediaURLs  []string   `json:"media_urls,omitempty" validate:"max=10,dive,url"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// AnalyzeTextRequest DTO для анализа текста
// @Description DTO для анализа текста
type AnalyzeTextRequest struct {
	Text string `json:"text" validate:"required,max=10000"`
}

// LocationResponse - точка WGS-84
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SignalResponse DTO для ответа с сигналом
// @Description DTO для ответа с сигналом
type SignalResponse struct {
	ID                uuid.UUID         `json:"id"`
	Source            string            `json:"source"`
	ExternalID        string            `json:"external_id,omitempty"`
	Title             string            `json:"title,omitempty"`
	Text              string            `json:"text,omitempty"`
	Author            string            `json:"author,omitempty"`
	ReporterID        string            `json:"reporter_id,omitempty"`
	HazardType        string            `json:"hazard_type,omitempty"`
	Severity          string            `json:"severity,omitempty"`
	Location          *LocationResponse `json:"location,omitempty"`
	CellID            string            `json:"cell_id,omitempty"`
	HazardProbability float64           `json:"hazard_probability"`
	SentimentScore    *float64          `json:"sentiment_score,omitempty"`
	HazardKeywords    []string          `json:"hazard_keywords"`
	MediaURLs         []string          `json:"media_urls"`
	Verified          bool              `json:"verified"`
	VerifiedBy        string            `json:"verified_by,omitempty"`
	VerifiedAt        *time.Time        `json:"verified_at,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

// HotspotResponse DTO для горячей точки
// @Description DTO для горячей точки
type HotspotResponse struct {
	ID             uuid.UUID        `json:"id"`
	CellID         string           `json:"cell_id"`
	CenterLocation LocationResponse `json:"center_location"`
	RadiusMeters   int              `json:"radius_meters"`
	SignalCount    int              `json:"signal_count"`
	SeverityLevel  string           `json:"severity_level"`
	HazardTypes    []string         `json:"hazard_types"`
	CreatedAt      time.Time        `json:"created_at"`
	ExpiresAt      time.Time        `json:"expires_at"`
}

// HotspotsResponse DTO для списка активных горячих точек
type HotspotsResponse struct {
	Hotspots    []HotspotResponse `json:"hotspots"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// AggregationRunResponse DTO для результата прогона агрегации
type AggregationRunResponse struct {
	HotspotCount int       `json:"hotspot_count"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// AlertResponse DTO для оповещения о critical горячей точке
type AlertResponse struct {
	ID           uuid.UUID        `json:"id"`
	HotspotID    uuid.UUID        `json:"hotspot_id"`
	CellID       string           `json:"cell_id"`
	Severity     string           `json:"severity"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	Center       LocationResponse `json:"center"`
	RadiusMeters int              `json:"radius_meters"`
	HazardTypes  []string         `json:"hazard_types"`
	SignalCount  int              `json:"signal_count"`
	CreatedAt    time.Time        `json:"created_at"`
	ExpiresAt    time.Time        `json:"expires_at"`
}
