package normalizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/shenikar/hazard_hotspots/internal/spatial"
)

const citizenHazardProbability = 1.0

// Normalizer приводит отчеты граждан и посты к общему HazardSignal.
// now используется, когда у входных данных нет метки времени.
type Normalizer struct {
	now func() time.Time
}

func New(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// NormalizeReport преобразует отчет гражданина
func (n *Normalizer) NormalizeReport(r models.CitizenReport) (*models.HazardSignal, error) {
	title := strings.TrimSpace(r.Title)
	description := strings.TrimSpace(r.Description)
	if title == "" && description == "" {
		return nil, fmt.Errorf("report has neither title nor description: %w", models.ErrInvalidInput)
	}
	if !r.HazardType.Valid() {
		return nil, fmt.Errorf("unknown hazard type %q: %w", r.HazardType, models.ErrInvalidInput)
	}
	severity := r.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}
	if !severity.Valid() {
		return nil, fmt.Errorf("unknown severity %q: %w", r.Severity, models.ErrInvalidInput)
	}
	if err := spatial.ValidateCoordinate(r.Latitude, r.Longitude); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	}

	return &models.HazardSignal{
		ID:                uuid.New(),
		Source:            models.SourceCitizen,
		Title:             title,
		Text:              description,
		ReporterID:        r.ReporterID,
		HazardType:        r.HazardType,
		Severity:          severity,
		Location:          &models.Location{Latitude: r.Latitude, Longitude: r.Longitude},
		HazardProbability: citizenHazardProbability,
		MediaURLs:         cleanURLs(r.MediaURLs),
		Verified:          false,
		CreatedAt:         n.timestamp(r.ReportedAt),
	}, nil
}

// NormalizePost преобразует пост из социальной сети. Тип опасности остается
// пустым до классификации, пост без геометки сохраняется без координат.
func (n *Normalizer) NormalizePost(p models.SocialPost) (*models.HazardSignal, error) {
	platform := models.Source(strings.ToLower(strings.TrimSpace(p.Platform)))
	if !platform.IsPlatform() {
		return nil, fmt.Errorf("unknown platform %q: %w", p.Platform, models.ErrInvalidInput)
	}
	content := strings.TrimSpace(p.Content)
	if content == "" {
		return nil, fmt.Errorf("post content is empty: %w", models.ErrInvalidInput)
	}

	var location *models.Location
	if p.Location != nil {
		if err := spatial.ValidateCoordinate(p.Location.Latitude, p.Location.Longitude); err != nil {
			return nil, fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
		}
		loc := *p.Location
		location = &loc
	}

	return &models.HazardSignal{
		ID:         uuid.New(),
		Source:     platform,
		ExternalID: strings.TrimSpace(p.PostID),
		Text:       content,
		Author:     strings.TrimSpace(p.Author),
		Location:   location,
		CreatedAt:  n.timestamp(p.PostedAt),
	}, nil
}

// Validate проверяет уже нормализованный сигнал, пришедший извне
func Validate(s *models.HazardSignal) error {
	if s == nil {
		return fmt.Errorf("signal is nil: %w", models.ErrInvalidInput)
	}
	if !s.Source.Valid() {
		return fmt.Errorf("unknown source %q: %w", s.Source, models.ErrInvalidInput)
	}
	if s.HazardType != "" && !s.HazardType.Valid() {
		return fmt.Errorf("unknown hazard type %q: %w", s.HazardType, models.ErrInvalidInput)
	}
	if s.Location != nil {
		if err := spatial.ValidateCoordinate(s.Location.Latitude, s.Location.Longitude); err != nil {
			return fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
		}
	}
	if s.Source == models.SourceCitizen {
		if !s.HazardType.Valid() {
			return fmt.Errorf("citizen report requires a hazard type, got %q: %w", s.HazardType, models.ErrInvalidInput)
		}
		if s.Location == nil {
			return fmt.Errorf("citizen report requires a location: %w", models.ErrInvalidInput)
		}
		if s.Severity != "" && !s.Severity.Valid() {
			return fmt.Errorf("unknown severity %q: %w", s.Severity, models.ErrInvalidInput)
		}
		if strings.TrimSpace(s.Title) == "" && strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("report has neither title nor description: %w", models.ErrInvalidInput)
		}
		return nil
	}
	if strings.TrimSpace(s.Text) == "" {
		return fmt.Errorf("post content is empty: %w", models.ErrInvalidInput)
	}
	if s.Severity != "" || s.Verified {
		return fmt.Errorf("severity and verification apply to citizen reports only: %w", models.ErrInvalidInput)
	}
	return nil
}

// ApplyCitizenDefaults приводит отчет гражданина к инвариантам источника:
// серьезность по умолчанию medium, вероятность 1.0, тональность не считается
func ApplyCitizenDefaults(s *models.HazardSignal) {
	if s.Source != models.SourceCitizen {
		return
	}
	if s.Severity == "" {
		s.Severity = models.SeverityMedium
	}
	s.HazardProbability = citizenHazardProbability
	s.SentimentScore = nil
}

func (n *Normalizer) timestamp(t time.Time) time.Time {
	if t.IsZero() {
		return n.now().UTC()
	}
	return t.UTC()
}

func cleanURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
