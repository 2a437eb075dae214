package classifier

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shenikar/hazard_hotspots/internal/models"
)

// Result - результат оценки текста
type Result struct {
	HazardProbability float64
	SentimentScore    float64
	HazardKeywords    []string
	HazardType        models.HazardType
	HazardRelated     bool
}

type keyword struct {
	phrase     string
	hazardType models.HazardType
}

// Classifier оценивает свободный текст на связь с прибрежной опасностью.
// Не хранит изменяемого состояния, безопасен для конкурентного использования.
type Classifier struct {
	cfg      Config
	keywords []keyword
	patterns []compiledPattern
}

// New компилирует конфигурацию. Повторяющиеся фразы учитываются один раз,
// за первой объявленной категорией.
func New(cfg Config) (*Classifier, error) {
	patterns, err := compilePatterns(cfg.Patterns)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	keywords := make([]keyword, 0)
	for _, cat := range cfg.Categories {
		if !cat.HazardType.Valid() {
			return nil, fmt.Errorf("unknown hazard type %q in keyword configuration", cat.HazardType)
		}
		for _, k := range cat.Keywords {
			phrase := strings.ToLower(strings.TrimSpace(k))
			if phrase == "" || seen[phrase] {
				continue
			}
			seen[phrase] = true
			keywords = append(keywords, keyword{phrase: phrase, hazardType: cat.HazardType})
		}
	}

	return &Classifier{cfg: cfg, keywords: keywords, patterns: patterns}, nil
}

// Classify вычисляет вероятность опасности, тональность и совпавшие ключевые слова
func (c *Classifier) Classify(text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{HazardType: models.HazardOther}, models.ErrEmptyText
	}
	lower := strings.ToLower(text)

	matched := make([]string, 0)
	hazardType := models.HazardOther
	for _, k := range c.keywords {
		if !strings.Contains(lower, k.phrase) {
			continue
		}
		matched = append(matched, k.phrase)
		if hazardType == models.HazardOther && k.hazardType != models.HazardOther {
			hazardType = k.hazardType
		}
	}

	patternHits := 0
	for _, p := range c.patterns {
		if p.re.MatchString(text) {
			patternHits++
		}
	}

	sentiment := Sentiment(text)

	probability := capped(float64(len(matched))*c.cfg.KeywordWeight, c.cfg.KeywordCap) +
		capped(float64(patternHits)*c.cfg.PatternWeight, c.cfg.PatternCap)
	if sentiment < c.cfg.NegativeThreshold {
		probability += c.cfg.NegativeSentimentWeight
	}
	probability = math.Max(0, math.Min(probability, 1.0))

	return Result{
		HazardProbability: probability,
		SentimentScore:    sentiment,
		HazardKeywords:    matched,
		HazardType:        hazardType,
		HazardRelated:     probability > c.cfg.HazardRelatedThreshold,
	}, nil
}

func capped(v, limit float64) float64 {
	if limit > 0 && v > limit {
		return limit
	}
	return v
}

var (
	urlRe        = regexp.MustCompile(`http\S+|www\S+|https\S+`)
	mentionRe    = regexp.MustCompile(`@\w+|#\w+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	specialRe    = regexp.MustCompile(`[^\w\s.,!?]`)
)

// Preprocess нормализует текст поста: нижний регистр, без ссылок, упоминаний и спецсимволов
func Preprocess(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = urlRe.ReplaceAllString(text, "")
	text = mentionRe.ReplaceAllString(text, "")
	text = specialRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
