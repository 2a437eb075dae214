package aggregator

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/shenikar/hazard_hotspots/internal/spatial"
)

// hotspotNamespace - пространство имен UUIDv5 для идентификаторов горячих точек:
// одна и та же ячейка всегда получает один и тот же id
var hotspotNamespace = uuid.MustParse("6f1d6c1e-4a0b-5c39-9a57-3f3f1f5d2c11")

// Policy - константы политики агрегации
type Policy struct {
	Window       time.Duration
	MinSignals   int
	RadiusMeters int
	TTL          time.Duration

	CriticalAt int
	HighAt     int
	MediumAt   int
}

// DefaultPolicy: окно 24 часа, минимум 2 сигнала, радиус 5 км, TTL 1 час
func DefaultPolicy() Policy {
	return Policy{
		Window:       24 * time.Hour,
		MinSignals:   2,
		RadiusMeters: 5000,
		TTL:          time.Hour,
		CriticalAt:   10,
		HighAt:       5,
		MediumAt:     3,
	}
}

// SeverityFor переводит количество сигналов в уровень по таблице порогов
func (p Policy) SeverityFor(count int) models.Severity {
	switch {
	case count >= p.CriticalAt:
		return models.SeverityCritical
	case count >= p.HighAt:
		return models.SeverityHigh
	case count >= p.MediumAt:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// BuildHotspots пересчитывает набор горячих точек с нуля. Чистая функция:
// одинаковые сигналы и now дают одинаковый результат независимо от порядка входа.
func BuildHotspots(signals []models.HazardSignal, now time.Time, p Policy) []models.Hotspot {
	since := now.Add(-p.Window)

	groups := make(map[string][]models.HazardSignal)
	for _, s := range signals {
		if !s.IsSpatial() || s.CreatedAt.Before(since) {
			continue
		}
		groups[s.CellID] = append(groups[s.CellID], s)
	}

	cells := make([]string, 0, len(groups))
	for cell, group := range groups {
		if len(group) >= p.MinSignals {
			cells = append(cells, cell)
		}
	}
	sort.Strings(cells)

	hotspots := make([]models.Hotspot, 0, len(cells))
	for _, cell := range cells {
		hotspots = append(hotspots, buildHotspot(cell, groups[cell], now, p))
	}
	return hotspots
}

func buildHotspot(cell string, group []models.HazardSignal, now time.Time, p Policy) models.Hotspot {
	sort.Slice(group, func(i, j int) bool {
		if !group[i].CreatedAt.Equal(group[j].CreatedAt) {
			return group[i].CreatedAt.Before(group[j].CreatedAt)
		}
		return group[i].ID.String() < group[j].ID.String()
	})

	points := make([]models.Location, 0, len(group))
	types := make(map[models.HazardType]bool)
	for _, s := range group {
		points = append(points, *s.Location)
		ht := s.HazardType
		if ht == "" {
			ht = models.HazardOther
		}
		types[ht] = true
	}
	center, _ := spatial.Centroid(points)

	hazardTypes := make([]models.HazardType, 0, len(types))
	for ht := range types {
		hazardTypes = append(hazardTypes, ht)
	}
	sort.Slice(hazardTypes, func(i, j int) bool { return hazardTypes[i] < hazardTypes[j] })

	return models.Hotspot{
		ID:             uuid.NewSHA1(hotspotNamespace, []byte(cell)),
		CellID:         cell,
		CenterLocation: center,
		RadiusMeters:   p.RadiusMeters,
		SignalCount:    len(group),
		SeverityLevel:  p.SeverityFor(len(group)),
		HazardTypes:    hazardTypes,
		CreatedAt:      now,
		ExpiresAt:      now.Add(p.TTL),
	}
}
