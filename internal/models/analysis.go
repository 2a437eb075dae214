package models

import "time"

// TextAnalysis - результат анализа произвольного текста
type TextAnalysis struct {
	ProcessedText     string     `json:"processed_text"`
	HazardProbability float64    `json:"hazard_probability"`
	SentimentScore    float64    `json:"sentiment_score"`
	HazardKeywords    []string   `json:"hazard_keywords"`
	HazardType        HazardType `json:"hazard_type"`
	IsHazardRelated   bool       `json:"is_hazard_related"`
}

type HazardTypeCount struct {
	HazardType HazardType `json:"hazard_type"`
	Count      int        `json:"count"`
}

type SourceCount struct {
	Source Source `json:"source"`
	Count  int    `json:"count"`
}

// DashboardStats - сводка для главной панели
type DashboardStats struct {
	HazardTypes    []HazardTypeCount `json:"hazard_types"`
	Sources        []SourceCount     `json:"sources"`
	ActiveHotspots int               `json:"active_hotspots"`
	Timestamp      time.Time         `json:"timestamp"`
}

// HazardAnalysis - аналитика по постам и отчетам за окно панели
type HazardAnalysis struct {
	HazardPostCount  int            `json:"hazard_post_count"`
	RecentReports    int            `json:"recent_reports"`
	SentimentTrends  SentimentTrend `json:"sentiment_trends"`
	TrendingKeywords []KeywordTrend `json:"trending_keywords"`
	RiskScore        float64        `json:"risk_score"`
	Timestamp        time.Time      `json:"timestamp"`
}

// KeywordTrend - частота ключевого слова среди постов
type KeywordTrend struct {
	Keyword   string  `json:"keyword"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// SentimentTrend - распределение тональности постов
type SentimentTrend struct {
	AverageSentiment float64            `json:"average_sentiment"`
	TotalPosts       int                `json:"total_posts"`
	PositivePosts    int                `json:"positive_posts"`
	NegativePosts    int                `json:"negative_posts"`
	NeutralPosts     int                `json:"neutral_posts"`
	Distribution     map[string]float64 `json:"sentiment_distribution"`
}
