package v1

import (
	"time"

	"github.com/shenikar/hazard_hotspots/internal/models"
)

// DTOToCitizenReport преобразует DTO отчета в доменную модель
func DTOToCitizenReport(dto CreateReportRequest) models.CitizenReport {
	report := models.CitizenReport{
		Title:       dto.Title,
		Description: dto.Description,
		HazardType:  models.HazardType(dto.HazardType),
		Severity:    models.Severity(dto.Severity),
		Latitude:    *dto.Latitude,
		Longitude:   *dto.Longitude,
		MediaURLs:   dto.MediaURLs,
	}
	if dto.ReportedAt != nil {
		report.ReportedAt = *dto.ReportedAt
	}
	return report
}

// DTOToSocialPost преобразует DTO поста в доменную модель
func DTOToSocialPost(dto CreateSocialPostRequest) models.SocialPost {
	post := models.SocialPost{
		Platform: dto.Platform,
		PostID:   dto.PostID,
		Content:  dto.Content,
		Author:   dto.Author,
		Location: toLocation(dto.Latitude, dto.Longitude),
	}
	if dto.PostedAt != nil {
		post.PostedAt = *dto.PostedAt
	}
	return post
}

// DTOToSignal преобразует DTO внешнего сигнала. Cell id не принимается от клиента.
func DTOToSignal(dto CreateSignalRequest) *models.HazardSignal {
	signal := &models.HazardSignal{
		Source:     models.Source(dto.Source),
		ExternalID: dto.ExternalID,
		Title:      dto.Title,
		Text:       dto.Text,
		Author:     dto.Author,
		HazardType: models.HazardType(dto.HazardType),
		Severity:   models.Severity(dto.Severity),
		Location:   toLocation(dto.Latitude, dto.Longitude),
		MediaURLs:  dto.MediaURLs,
	}
	// вероятность для текстовых источников вычисляет классификатор
	if signal.Source == models.SourceCitizen {
		signal.HazardProbability = 1.0
	}
	if dto.CreatedAt != nil {
		signal.CreatedAt = *dto.CreatedAt
	}
	return signal
}

func toLocation(lat, lon *float64) *models.Location {
	if lat == nil || lon == nil {
		return nil
	}
	return &models.Location{Latitude: *lat, Longitude: *lon}
}

// ModelToSignalResponse преобразует доменную модель в DTO для ответа
func ModelToSignalResponse(s *models.HazardSignal) *SignalResponse {
	resp := &SignalResponse{
		ID:                s.ID,
		Source:            string(s.Source),
		ExternalID:        s.ExternalID,
		Title:             s.Title,
		Text:              s.Text,
		Author:            s.Author,
		ReporterID:        s.ReporterID,
		HazardType:        string(s.HazardType),
		Severity:          string(s.Severity),
		CellID:            s.CellID,
		HazardProbability: s.HazardProbability,
		SentimentScore:    s.SentimentScore,
		HazardKeywords:    nonNil(s.HazardKeywords),
		MediaURLs:         nonNil(s.MediaURLs),
		Verified:          s.Verified,
		VerifiedBy:        s.VerifiedBy,
		VerifiedAt:        s.VerifiedAt,
		CreatedAt:         s.CreatedAt,
	}
	if s.Location != nil {
		resp.Location = &LocationResponse{Latitude: s.Location.Latitude, Longitude: s.Location.Longitude}
	}
	return resp
}

// ModelsToSignalResponses преобразует слайс моделей в слайс DTO
func ModelsToSignalResponses(signals []models.HazardSignal) []*SignalResponse {
	responses := make([]*SignalResponse, len(signals))
	for i := range signals {
		responses[i] = ModelToSignalResponse(&signals[i])
	}
	return responses
}

// ModelsToHotspotsResponse преобразует горячие точки в DTO
func ModelsToHotspotsResponse(hotspots []models.Hotspot, generatedAt time.Time) HotspotsResponse {
	resp := HotspotsResponse{
		Hotspots:    make([]HotspotResponse, len(hotspots)),
		GeneratedAt: generatedAt,
	}
	for i, h := range hotspots {
		types := make([]string, len(h.HazardTypes))
		for j, t := range h.HazardTypes {
			types[j] = string(t)
		}
		resp.Hotspots[i] = HotspotResponse{
			ID:             h.ID,
			CellID:         h.CellID,
			CenterLocation: LocationResponse{Latitude: h.CenterLocation.Latitude, Longitude: h.CenterLocation.Longitude},
			RadiusMeters:   h.RadiusMeters,
			SignalCount:    h.SignalCount,
			SeverityLevel:  string(h.SeverityLevel),
			HazardTypes:    types,
			CreatedAt:      h.CreatedAt,
			ExpiresAt:      h.ExpiresAt,
		}
	}
	return resp
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// ModelsToAlertResponses преобразует оповещения в DTO
func ModelsToAlertResponses(alerts []models.HotspotAlert) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		types := make([]string, len(a.HazardTypes))
		for j, t := range a.HazardTypes {
			types[j] = string(t)
		}
		responses[i] = AlertResponse{
			ID:           a.ID,
			HotspotID:    a.HotspotID,
			CellID:       a.CellID,
			Severity:     string(a.Severity),
			Title:        a.Title,
			Message:      a.Message,
			Center:       LocationResponse{Latitude: a.Center.Latitude, Longitude: a.Center.Longitude},
			RadiusMeters: a.RadiusMeters,
			HazardTypes:  types,
			SignalCount:  a.SignalCount,
			CreatedAt:    a.Timestamp,
			ExpiresAt:    a.ExpiresAt,
		}
	}
	return responses
}
