package classifier

import (
	"sort"

	"github.com/shenikar/hazard_hotspots/internal/models"
)

const (
	polarityBand             = 0.1
	highProbabilityThreshold = 0.7
)

// TrendingKeywords считает самые частые ключевые слова опасности
func TrendingKeywords(signals []models.HazardSignal, limit int) []models.KeywordTrend {
	counts := make(map[string]int)
	for _, s := range signals {
		for _, k := range s.HazardKeywords {
			counts[k]++
		}
	}

	trends := make([]models.KeywordTrend, 0, len(counts))
	for k, n := range counts {
		trends = append(trends, models.KeywordTrend{
			Keyword:   k,
			Count:     n,
			Frequency: float64(n) / float64(len(signals)),
		})
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Count != trends[j].Count {
			return trends[i].Count > trends[j].Count
		}
		return trends[i].Keyword < trends[j].Keyword
	})
	if limit > 0 && len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}

// SentimentTrends агрегирует тональность сигналов, у которых она есть
func SentimentTrends(signals []models.HazardSignal) models.SentimentTrend {
	trend := models.SentimentTrend{Distribution: map[string]float64{}}
	sum := 0.0
	for _, s := range signals {
		if s.SentimentScore == nil {
			continue
		}
		v := *s.SentimentScore
		sum += v
		trend.TotalPosts++
		switch {
		case v > polarityBand:
			trend.PositivePosts++
		case v < -polarityBand:
			trend.NegativePosts++
		default:
			trend.NeutralPosts++
		}
	}
	if trend.TotalPosts == 0 {
		return trend
	}
	total := float64(trend.TotalPosts)
	trend.AverageSentiment = sum / total
	trend.Distribution["positive"] = float64(trend.PositivePosts) / total
	trend.Distribution["negative"] = float64(trend.NegativePosts) / total
	trend.Distribution["neutral"] = float64(trend.NeutralPosts) / total
	return trend
}

// RiskScore - общая оценка риска по постам и отчетам граждан, в диапазоне [0, 1]
func RiskScore(posts, reports []models.HazardSignal) float64 {
	risk := 0.0

	highProbability := 0
	for _, p := range posts {
		if p.HazardProbability > highProbabilityThreshold {
			highProbability++
		}
	}
	risk += min(float64(highProbability)*0.1, 0.5)

	for _, r := range reports {
		switch r.Severity {
		case models.SeverityCritical:
			risk += 0.3
		case models.SeverityHigh:
			risk += 0.2
		}
	}
	return min(risk, 1.0)
}
