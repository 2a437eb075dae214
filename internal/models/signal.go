package models

import (
	"time"

	"github.com/google/uuid"
)

// Source - происхождение сигнала об опасности
type Source string

const (
	SourceCitizen  Source = "citizen"
	SourceTwitter  Source = "twitter"
	SourceFacebook Source = "facebook"
	SourceYouTube  Source = "youtube"
)

// Sources перечисляет все известные источники в порядке отображения
var Sources = []Source{SourceCitizen, SourceTwitter, SourceFacebook, SourceYouTube}

// IsPlatform сообщает, является ли источник социальной сетью
func (s Source) IsPlatform() bool {
	switch s {
	case SourceTwitter, SourceFacebook, SourceYouTube:
		return true
	}
	return false
}

func (s Source) Valid() bool {
	return s == SourceCitizen || s.IsPlatform()
}

// HazardType - тип прибрежной опасности
type HazardType string

const (
	HazardTsunami        HazardType = "tsunami"
	HazardStormSurge     HazardType = "storm_surge"
	HazardHighWaves      HazardType = "high_waves"
	HazardSwellSurge     HazardType = "swell_surge"
	HazardCoastalCurrent HazardType = "coastal_current"
	HazardFlooding       HazardType = "flooding"
	HazardAbnormalTide   HazardType = "abnormal_tide"
	HazardOther          HazardType = "other"
)

var HazardTypes = []HazardType{
	HazardTsunami,
	HazardStormSurge,
	HazardHighWaves,
	HazardSwellSurge,
	HazardCoastalCurrent,
	HazardFlooding,
	HazardAbnormalTide,
	HazardOther,
}

func (h HazardType) Valid() bool {
	for _, t := range HazardTypes {
		if h == t {
			return true
		}
	}
	return false
}

// Severity - уровень серьезности (отчета гражданина или горячей точки)
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Location - точка WGS-84
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HazardSignal - общее представление отчета гражданина или классифицированного поста
type HazardSignal struct {
	ID                uuid.UUID  `json:"id"`
	Source            Source     `json:"source"`
	ExternalID        string     `json:"external_id,omitempty"`
	Title             string     `json:"title,omitempty"`
	Text              string     `json:"text,omitempty"`
	Author            string     `json:"author,omitempty"`
	ReporterID        string     `json:"reporter_id,omitempty"`
	HazardType        HazardType `json:"hazard_type,omitempty"`
	Severity          Severity   `json:"severity,omitempty"`
	Location          *Location  `json:"location,omitempty"`
	CellID            string     `json:"cell_id,omitempty"`
	HazardProbability float64    `json:"hazard_probability"`
	SentimentScore    *float64   `json:"sentiment_score,omitempty"`
	HazardKeywords    []string   `json:"hazard_keywords,omitempty"`
	MediaURLs         []string   `json:"media_urls,omitempty"`
	Verified          bool       `json:"verified"`
	VerifiedBy        string     `json:"verified_by,omitempty"`
	VerifiedAt        *time.Time `json:"verified_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// IsSpatial сообщает, участвует ли сигнал в пространственной агрегации
func (s *HazardSignal) IsSpatial() bool {
	return s.Location != nil && s.CellID != ""
}

// Bounds - прямоугольное окно запроса по координатам
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// SignalFilter - условия выборки сигналов. Пустые поля не ограничивают выборку.
type SignalFilter struct {
	Sources    []Source
	HazardType HazardType
	Severity   Severity
	Verified   *bool
	Limit      int
}
