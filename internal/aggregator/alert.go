package aggregator

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hazard_hotspots/internal/models"
)

// AlertTTL - сколько оповещение остается активным после выпуска
const AlertTTL = 24 * time.Hour

type alertTemplate struct {
	title   string
	message string
}

var alertTemplates = map[models.HazardType]alertTemplate{
	models.HazardTsunami: {
		title:   "Tsunami Alert",
		message: "A tsunami alert has been issued for your area. Please move to higher ground immediately.",
	},
	models.HazardStormSurge: {
		title:   "Storm Surge Warning",
		message: "Storm surge warning in effect. Avoid coastal areas and follow evacuation orders.",
	},
	models.HazardHighWaves: {
		title:   "High Wave Alert",
		message: "High waves expected. Stay away from beaches and coastal areas.",
	},
	models.HazardFlooding: {
		title:   "Coastal Flooding Alert",
		message: "Coastal flooding is occurring. Avoid low-lying areas and do not drive through flood water.",
	},
}

// primaryHazard выбирает тип для шаблона: первый по порядку объявления,
// для которого есть шаблон, иначе первый из списка
func primaryHazard(types []models.HazardType) models.HazardType {
	present := make(map[models.HazardType]bool, len(types))
	for _, t := range types {
		present[t] = true
	}
	for _, t := range models.HazardTypes {
		if _, ok := alertTemplates[t]; ok && present[t] {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	return models.HazardOther
}

// NewAlert строит оповещение для горячей точки
func NewAlert(h models.Hotspot, at time.Time) models.HotspotAlert {
	hazard := primaryHazard(h.HazardTypes)
	tmpl, ok := alertTemplates[hazard]
	if !ok {
		name := strings.ReplaceAll(string(hazard), "_", " ")
		title := strings.ToUpper(name[:1]) + name[1:]
		tmpl = alertTemplate{
			title:   title + " Alert",
			message: fmt.Sprintf("A %s hazard has been reported in your area. Please stay alert and follow official guidance.", name),
		}
	}

	return models.HotspotAlert{
		ID:           uuid.New(),
		HotspotID:    h.ID,
		CellID:       h.CellID,
		Severity:     h.SeverityLevel,
		Center:       h.CenterLocation,
		RadiusMeters: h.RadiusMeters,
		HazardTypes:  h.HazardTypes,
		SignalCount:  h.SignalCount,
		Title:        tmpl.title,
		Message:      fmt.Sprintf("%s %d reports within %d m.", tmpl.message, h.SignalCount, h.RadiusMeters),
		Timestamp:    at,
		ExpiresAt:    at.Add(AlertTTL),
	}
}
