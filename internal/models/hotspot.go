package models

import (
	"time"

	"github.com/google/uuid"
)

// Hotspot - географический кластер недавних сигналов с уровнем серьезности
type Hotspot struct {
	ID             uuid.UUID    `json:"id"`
	CellID         string       `json:"cell_id"`
	CenterLocation Location     `json:"center_location"`
	RadiusMeters   int          `json:"radius_meters"`
	SignalCount    int          `json:"signal_count"`
	SeverityLevel  Severity     `json:"severity_level"`
	HazardTypes    []HazardType `json:"hazard_types"`
	CreatedAt      time.Time    `json:"created_at"`
	ExpiresAt      time.Time    `json:"expires_at"`
}

// Active сообщает, не истек ли срок жизни горячей точки на момент now
func (h *Hotspot) Active(now time.Time) bool {
	return h.ExpiresAt.After(now)
}

// HotspotSnapshot - неизменяемый результат одного прогона агрегации.
// Снимок никогда не модифицируется после публикации.
type HotspotSnapshot struct {
	Hotspots    []Hotspot `json:"hotspots"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Severities возвращает уровень серьезности по ячейкам
func (s *HotspotSnapshot) Severities() map[string]Severity {
	out := make(map[string]Severity, len(s.Hotspots))
	for _, h := range s.Hotspots {
		out[h.CellID] = h.SeverityLevel
	}
	return out
}

// Active возвращает горячие точки снимка, не истекшие на момент now
func (s *HotspotSnapshot) Active(now time.Time) []Hotspot {
	active := make([]Hotspot, 0, len(s.Hotspots))
	for _, h := range s.Hotspots {
		if h.Active(now) {
			active = append(active, h)
		}
	}
	return active
}

// HotspotAlert - уведомление о ячейке, впервые перешедшей в critical
type HotspotAlert struct {
	ID           uuid.UUID    `json:"id"`
	HotspotID    uuid.UUID    `json:"hotspot_id"`
	CellID       string       `json:"cell_id"`
	Severity     Severity     `json:"severity"`
	Center       Location     `json:"center"`
	RadiusMeters int          `json:"radius_meters"`
	HazardTypes  []HazardType `json:"hazard_types"`
	SignalCount  int          `json:"signal_count"`
	Title        string       `json:"title"`
	Message      string       `json:"message"`
	Timestamp    time.Time    `json:"timestamp"`
	ExpiresAt    time.Time    `json:"expires_at"`
}
