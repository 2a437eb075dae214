package normalizer

import (
	"math"
	"testing"
	"time"

	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	return New(func() time.Time { return fixedNow })
}

func validReport() models.CitizenReport {
	return models.CitizenReport{
		Title:       "Waves over the sea wall",
		Description: "Water is entering the road near the lighthouse",
		HazardType:  models.HazardHighWaves,
		Severity:    models.SeverityHigh,
		Latitude:    13.05,
		Longitude:   80.28,
		ReporterID:  "user-1",
		MediaURLs:   []string{" https://media.example/1.jpg ", ""},
	}
}

func TestNormalizeReport_Success(t *testing.T) {
	n := newTestNormalizer()

	s, err := n.NormalizeReport(validReport())
	require.NoError(t, err)

	assert.Equal(t, models.SourceCitizen, s.Source)
	assert.Equal(t, models.HazardHighWaves, s.HazardType)
	assert.Equal(t, models.SeverityHigh, s.Severity)
	assert.Equal(t, 1.0, s.HazardProbability)
	assert.Nil(t, s.SentimentScore)
	assert.False(t, s.Verified)
	assert.Empty(t, s.CellID)
	require.NotNil(t, s.Location)
	assert.Equal(t, 13.05, s.Location.Latitude)
	assert.Equal(t, []string{"https://media.example/1.jpg"}, s.MediaURLs)
	assert.Equal(t, fixedNow, s.CreatedAt)
	assert.NotEqual(t, s.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestNormalizeReport_DefaultsSeverity(t *testing.T) {
	r := validReport()
	r.Severity = ""

	s, err := newTestNormalizer().NormalizeReport(r)
	require.NoError(t, err)
	assert.Equal(t, models.SeverityMedium, s.Severity)
}

func TestNormalizeReport_KeepsTimestamp(t *testing.T) {
	r := validReport()
	r.ReportedAt = time.Date(2024, 8, 30, 7, 0, 0, 0, time.FixedZone("IST", 19800))

	s, err := newTestNormalizer().NormalizeReport(r)
	require.NoError(t, err)
	assert.True(t, s.CreatedAt.Equal(r.ReportedAt))
	assert.Equal(t, time.UTC, s.CreatedAt.Location())
}

func TestNormalizeReport_InvalidInput(t *testing.T) {
	cases := map[string]func(r *models.CitizenReport){
		"empty text":       func(r *models.CitizenReport) { r.Title, r.Description = " ", "" },
		"latitude":         func(r *models.CitizenReport) { r.Latitude = 91 },
		"longitude":        func(r *models.CitizenReport) { r.Longitude = -181 },
		"nan":              func(r *models.CitizenReport) { r.Latitude = math.NaN() },
		"unknown type":     func(r *models.CitizenReport) { r.HazardType = "meteor" },
		"missing type":     func(r *models.CitizenReport) { r.HazardType = "" },
		"unknown severity": func(r *models.CitizenReport) { r.Severity = "apocalyptic" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := validReport()
			mutate(&r)
			_, err := newTestNormalizer().NormalizeReport(r)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestNormalizePost_Success(t *testing.T) {
	s, err := newTestNormalizer().NormalizePost(models.SocialPost{
		Platform: "Twitter",
		PostID:   "1234",
		Content:  "  Huge waves at Marina beach  ",
		Author:   "@coastwatch",
		Location: &models.Location{Latitude: 13.05, Longitude: 80.28},
	})
	require.NoError(t, err)

	assert.Equal(t, models.SourceTwitter, s.Source)
	assert.Equal(t, "1234", s.ExternalID)
	assert.Equal(t, "Huge waves at Marina beach", s.Text)
	assert.Empty(t, s.HazardType)
	assert.Empty(t, s.Severity)
	require.NotNil(t, s.Location)
	assert.Equal(t, fixedNow, s.CreatedAt)
}

func TestNormalizePost_WithoutGeotag(t *testing.T) {
	s, err := newTestNormalizer().NormalizePost(models.SocialPost{
		Platform: "youtube",
		Content:  "Flooding in the old town",
	})
	require.NoError(t, err)
	assert.Nil(t, s.Location)
	assert.False(t, s.IsSpatial())
}

func TestNormalizePost_InvalidInput(t *testing.T) {
	cases := map[string]models.SocialPost{
		"unknown platform": {Platform: "myspace", Content: "flood"},
		"citizen platform": {Platform: "citizen", Content: "flood"},
		"empty content":    {Platform: "facebook", Content: "   "},
		"bad geotag":       {Platform: "facebook", Content: "flood", Location: &models.Location{Latitude: 100}},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newTestNormalizer().NormalizePost(p)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestValidate(t *testing.T) {
	report, err := newTestNormalizer().NormalizeReport(validReport())
	require.NoError(t, err)
	assert.NoError(t, Validate(report))

	post, err := newTestNormalizer().NormalizePost(models.SocialPost{Platform: "twitter", Content: "flood"})
	require.NoError(t, err)
	assert.NoError(t, Validate(post))

	post.Severity = models.SeverityHigh
	assert.ErrorIs(t, Validate(post), models.ErrInvalidInput)

	report.HazardType = ""
	assert.ErrorIs(t, Validate(report), models.ErrInvalidInput)
	report.HazardType = "meteor"
	assert.ErrorIs(t, Validate(report), models.ErrInvalidInput)
	report.HazardType = models.HazardFlooding

	report.Location = nil
	assert.ErrorIs(t, Validate(report), models.ErrInvalidInput)

	assert.ErrorIs(t, Validate(nil), models.ErrInvalidInput)
	assert.ErrorIs(t, Validate(&models.HazardSignal{Source: "radio", Text: "x"}), models.ErrInvalidInput)
}

func TestApplyCitizenDefaults(t *testing.T) {
	sentiment := -0.7
	report := &models.HazardSignal{
		Source:            models.SourceCitizen,
		HazardProbability: 0.2,
		SentimentScore:    &sentiment,
	}
	ApplyCitizenDefaults(report)
	assert.Equal(t, models.SeverityMedium, report.Severity)
	assert.Equal(t, 1.0, report.HazardProbability)
	assert.Nil(t, report.SentimentScore)

	report.Severity = models.SeverityHigh
	ApplyCitizenDefaults(report)
	assert.Equal(t, models.SeverityHigh, report.Severity)

	post := &models.HazardSignal{Source: models.SourceTwitter, HazardProbability: 0.2, SentimentScore: &sentiment}
	ApplyCitizenDefaults(post)
	assert.Empty(t, post.Severity)
	assert.Equal(t, 0.2, post.HazardProbability)
	assert.NotNil(t, post.SentimentScore)
}
