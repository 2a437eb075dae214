package classifier

import (
	"fmt"
	"regexp"

	"github.com/shenikar/hazard_hotspots/internal/models"
)

// KeywordCategory - список ключевых фраз одного типа опасности.
// Порядок категорий в Config определяет, какой тип побеждает при совпадении нескольких.
type KeywordCategory struct {
	HazardType models.HazardType
	Keywords   []string
}

// PatternRule - регулярное выражение, характерное для типа опасности
type PatternRule struct {
	HazardType models.HazardType
	Pattern    string
}

// Config - явная конфигурация классификатора, передается при создании
type Config struct {
	Categories []KeywordCategory
	Patterns   []PatternRule

	KeywordWeight           float64
	KeywordCap              float64
	PatternWeight           float64
	PatternCap              float64
	NegativeSentimentWeight float64
	NegativeThreshold       float64

	// HazardRelatedThreshold - порог, выше которого текст считается связанным с опасностью
	HazardRelatedThreshold float64
}

// DefaultConfig возвращает словари и веса по умолчанию
func DefaultConfig() Config {
	return Config{
		Categories: []KeywordCategory{
			{HazardType: models.HazardTsunami, Keywords: []string{"tsunami", "tidal wave", "seismic wave", "ocean wave"}},
			{HazardType: models.HazardStormSurge, Keywords: []string{"storm surge", "storm tide", "coastal flooding", "storm water"}},
			{HazardType: models.HazardHighWaves, Keywords: []string{"high waves", "big waves", "rough seas", "wave height"}},
			{HazardType: models.HazardSwellSurge, Keywords: []string{"swell surge", "swell waves", "kallakkadal"}},
			{HazardType: models.HazardFlooding, Keywords: []string{"flood", "flooding", "inundation", "water level", "rising water"}},
			{HazardType: models.HazardCoastalCurrent, Keywords: []string{"current", "rip current", "undertow", "strong current"}},
			{HazardType: models.HazardAbnormalTide, Keywords: []string{"tide", "tidal", "high tide", "low tide", "tide level", "abnormal tide"}},
			// общие слова влияют на вероятность, но не определяют тип
			{HazardType: models.HazardOther, Keywords: []string{"hazard", "danger", "warning", "alert", "emergency", "disaster", "evacuate", "evacuation"}},
		},
		Patterns: []PatternRule{
			{HazardType: models.HazardTsunami, Pattern: `\b(tsunami|tidal wave|seismic wave)\b`},
			{HazardType: models.HazardTsunami, Pattern: `\b(wave height|wave size)\b.*\b(high|large|big|massive)\b`},
			{HazardType: models.HazardTsunami, Pattern: `\b(earthquake|seismic)\b.*\b(ocean|sea|coastal)\b`},
			{HazardType: models.HazardStormSurge, Pattern: `\b(storm surge|storm tide)\b`},
			{HazardType: models.HazardStormSurge, Pattern: `\b(coastal flooding|shore flooding)\b`},
			{HazardType: models.HazardStormSurge, Pattern: `\b(water level|sea level)\b.*\b(rising|increasing|high)\b`},
			{HazardType: models.HazardHighWaves, Pattern: `\b(high waves|big waves|rough seas)\b`},
			{HazardType: models.HazardHighWaves, Pattern: `\b(wave height|wave size)\b.*\b(high|large|big)\b`},
			{HazardType: models.HazardHighWaves, Pattern: `\b(dangerous|hazardous)\b.*\b(waves|seas)\b`},
			{HazardType: models.HazardFlooding, Pattern: `\b(flood|flooding|inundation)\b`},
			{HazardType: models.HazardFlooding, Pattern: `\b(water level|water rising)\b`},
			{HazardType: models.HazardFlooding, Pattern: `\b(submerged|underwater|waterlogged)\b`},
			{HazardType: models.HazardCoastalCurrent, Pattern: `\b(current|rip current|undertow)\b`},
			{HazardType: models.HazardCoastalCurrent, Pattern: `\b(strong current|dangerous current)\b`},
			{HazardType: models.HazardCoastalCurrent, Pattern: `\b(swimming|drowning)\b.*\b(current|undertow)\b`},
		},
		KeywordWeight:           0.2,
		KeywordCap:              1.0,
		PatternWeight:           0.3,
		PatternCap:              1.0,
		NegativeSentimentWeight: 0.2,
		NegativeThreshold:       -0.1,
		HazardRelatedThreshold:  0.5,
	}
}

type compiledPattern struct {
	hazardType models.HazardType
	re         *regexp.Regexp
}

func compilePatterns(rules []PatternRule) ([]compiledPattern, error) {
	out := make([]compiledPattern, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(`(?i)` + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile hazard pattern %q: %w", r.Pattern, err)
		}
		out = append(out, compiledPattern{hazardType: r.HazardType, re: re})
	}
	return out, nil
}
