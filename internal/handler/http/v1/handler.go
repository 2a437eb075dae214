package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/hazard_hotspots/internal/config"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/shenikar/hazard_hotspots/internal/service"
	"github.com/sirupsen/logrus"
)

// интервал SSE-пингов
const streamHeartbeat = 15 * time.Second

type Handler struct {
	signalService    service.SignalService
	dashboardService service.DashboardService
	alertService     service.AlertService
	aggregator       service.HotspotAggregator
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	signalService service.SignalService,
	dashboardService service.DashboardService,
	alertService service.AlertService,
	aggregator service.HotspotAggregator,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		signalService:    signalService,
		dashboardService: dashboardService,
		alertService:     alertService,
		aggregator:       aggregator,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError переводит доменную ошибку в HTTP статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidCoordinate),
		errors.Is(err, models.ErrEmptyText):
		log.WithError(err).Warn("Invalid request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrForbidden):
		log.WithError(err).Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, models.ErrAggregationInProgress):
		log.WithError(err).Info("Aggregation already running")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate разбирает JSON тело и проверяет теги validate
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Submit a citizen hazard report
// @Description Normalize and store a citizen report. The reporter is taken from the API key identity.
// @Tags Ingestion
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body CreateReportRequest true "Citizen report"
// @Success 201 {object} SignalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "createReport")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	signal, err := h.signalService.IngestReport(c.Request.Context(), identityFrom(c), DTOToCitizenReport(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSignalResponse(signal))
}

// @Summary Verify a citizen report
// @Description Mark a citizen report as verified. Requires the official or analyst role.
// @Tags Ingestion
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} SignalResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Role cannot verify reports"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/verify [put]
func (h *Handler) verifyReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "verifyReport").WithField("id", id)

	signal, err := h.signalService.VerifyReport(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSignalResponse(signal))
}

// @Summary Submit a social media post
// @Description Normalize a post, score its text for hazard relevance and store it.
// @Tags Ingestion
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param post body CreateSocialPostRequest true "Social post"
// @Success 201 {object} SignalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /social-posts [post]
func (h *Handler) createSocialPost(c *gin.Context) {
	var input CreateSocialPostRequest
	log := h.logger.WithField("method", "createSocialPost")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	signal, err := h.signalService.IngestPost(c.Request.Context(), DTOToSocialPost(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSignalResponse(signal))
}

// @Summary Submit a normalized hazard signal
// @Description Store a signal from an external collector. The cell id is always derived by the service.
// @Tags Ingestion
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param signal body CreateSignalRequest true "Hazard signal"
// @Success 201 {object} SignalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signals [post]
func (h *Handler) createSignal(c *gin.Context) {
	var input CreateSignalRequest
	log := h.logger.WithField("method", "createSignal")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	signal := DTOToSignal(input)
	if signal.Source == models.SourceCitizen {
		signal.ReporterID = identityFrom(c).UserID
	}
	if err := h.signalService.IngestSignal(c.Request.Context(), signal); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSignalResponse(signal))
}

// @Summary Get signal by ID
// @Tags Signals
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Signal ID"
// @Success 200 {object} SignalResponse
// @Failure 400 {object} map[string]string "Invalid signal ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Signal not found"
// @Router /signals/{id} [get]
func (h *Handler) getSignal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signal ID"})
		return
	}
	log := h.logger.WithField("method", "getSignal").WithField("id", id)

	signal, err := h.signalService.GetSignal(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSignalResponse(signal))
}

// @Summary Get recent signals
// @Description Most recent signals, newest first. limit is clamped to 1..100.
// @Tags Signals
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Number of signals" default(20)
// @Success 200 {array} SignalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signals/recent [get]
func (h *Handler) recentSignals(c *gin.Context) {
	log := h.logger.WithField("method", "recentSignals")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	signals, err := h.dashboardService.RecentSignals(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToSignalResponses(signals))
}

// @Summary Get signals in a bounding box
// @Tags Signals
// @Produce json
// @Security ApiKeyAuth
// @Param min_lat query number true "Minimum latitude"
// @Param min_lon query number true "Minimum longitude"
// @Param max_lat query number true "Maximum latitude"
// @Param max_lon query number true "Maximum longitude"
// @Param limit query int false "Maximum number of signals" default(100)
// @Success 200 {array} SignalResponse
// @Failure 400 {object} map[string]string "Invalid bounds"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signals/area [get]
func (h *Handler) signalsInArea(c *gin.Context) {
	log := h.logger.WithField("method", "signalsInArea")

	var bounds models.Bounds
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"min_lat", &bounds.MinLat},
		{"min_lon", &bounds.MinLon},
		{"max_lat", &bounds.MaxLat},
		{"max_lon", &bounds.MaxLon},
	} {
		v, err := strconv.ParseFloat(c.Query(p.name), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing " + p.name})
			return
		}
		*p.dst = v
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	signals, err := h.signalService.ListInArea(c.Request.Context(), bounds, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToSignalResponses(signals))
}

// @Summary List citizen reports
// @Tags Signals
// @Produce json
// @Security ApiKeyAuth
// @Param hazard_type query string false "Hazard type"
// @Param severity query string false "Severity"
// @Param verified query bool false "Only verified or only unverified reports"
// @Param limit query int false "Maximum number of reports" default(100)
// @Success 200 {array} SignalResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	filter := models.SignalFilter{
		HazardType: models.HazardType(c.Query("hazard_type")),
		Severity:   models.Severity(c.Query("severity")),
	}
	if raw, ok := c.GetQuery("verified"); ok {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verified flag"})
			return
		}
		filter.Verified = &verified
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	reports, err := h.signalService.ListReports(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToSignalResponses(reports))
}

// @Summary List social media posts
// @Tags Signals
// @Produce json
// @Security ApiKeyAuth
// @Param platform query string false "twitter, facebook or youtube"
// @Param limit query int false "Maximum number of posts" default(100)
// @Success 200 {array} SignalResponse
// @Failure 400 {object} map[string]string "Unknown platform"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /social-media [get]
func (h *Handler) listSocialPosts(c *gin.Context) {
	log := h.logger.WithField("method", "listSocialPosts")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	posts, err := h.signalService.ListPosts(c.Request.Context(), c.Query("platform"), limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToSignalResponses(posts))
}

// @Summary Stream new signals
// @Description Server-sent events: one "signal" event per ingested signal.
// @Tags Signals
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Success 200 {object} SignalResponse "signal event"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signals/stream [get]
func (h *Handler) streamSignals(c *gin.Context) {
	log := h.logger.WithField("method", "streamSignals")
	ctx := c.Request.Context()

	feed, err := h.signalService.SubscribeSignals(ctx)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	log.Debug("Signal stream opened")
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case signal, ok := <-feed:
			if !ok {
				return false
			}
			c.SSEvent("signal", ModelToSignalResponse(&signal))
			return true
		case <-heartbeat.C:
			_, err := io.WriteString(w, ": ping\n\n")
			return err == nil
		}
	})
	log.Debug("Signal stream closed")
}

// @Summary Analyze free text
// @Description Score text for hazard relevance without storing it.
// @Tags Analysis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AnalyzeTextRequest true "Text to analyze"
// @Success 200 {object} models.TextAnalysis
// @Failure 400 {object} map[string]string "Empty text"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /analysis/text [post]
func (h *Handler) analyzeText(c *gin.Context) {
	var input AnalyzeTextRequest
	log := h.logger.WithField("method", "analyzeText")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	result, err := h.signalService.AnalyzeText(input.Text)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Hazard analysis
// @Description Hazard post count, sentiment trends, trending keywords and risk score over the dashboard window.
// @Tags Analysis
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.HazardAnalysis
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analysis/hazards [get]
func (h *Handler) hazardAnalysis(c *gin.Context) {
	log := h.logger.WithField("method", "hazardAnalysis")

	analysis, err := h.dashboardService.HazardAnalysis(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// @Summary Dashboard statistics
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DashboardStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/stats [get]
func (h *Handler) dashboardStats(c *gin.Context) {
	log := h.logger.WithField("method", "dashboardStats")

	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Signal counts by hazard type
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.HazardTypeCount
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/hazard-types [get]
func (h *Handler) hazardTypeCounts(c *gin.Context) {
	log := h.logger.WithField("method", "hazardTypeCounts")

	counts, err := h.dashboardService.CountsByHazardType(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary Signal counts by source
// @Tags Dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.SourceCount
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/sources [get]
func (h *Handler) sourceCounts(c *gin.Context) {
	log := h.logger.WithField("method", "sourceCounts")

	counts, err := h.dashboardService.CountsBySource(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary Active hotspots
// @Description Non-expired hotspots from the current snapshot.
// @Tags Hotspots
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} HotspotsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /hotspots [get]
func (h *Handler) listHotspots(c *gin.Context) {
	hotspots := h.dashboardService.ActiveHotspots(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToHotspotsResponse(hotspots, h.aggregator.Current().GeneratedAt))
}

// @Summary List active alerts
// @Description Alerts issued when a hotspot becomes critical. Expired alerts are not returned.
// @Tags Hotspots
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	alerts, err := h.alertService.ActiveAlerts(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Run hotspot aggregation
// @Description Trigger an aggregation run now. Returns 409 if a run is already in progress.
// @Tags Hotspots
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} AggregationRunResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Role cannot trigger aggregation"
// @Failure 409 {object} map[string]string "Aggregation already in progress"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /aggregation/run [post]
func (h *Handler) runAggregation(c *gin.Context) {
	log := h.logger.WithField("method", "runAggregation")
	if identity := identityFrom(c); !identity.Role.CanVerify() {
		h.respondError(c, log, models.ErrForbidden)
		return
	}

	snapshot, err := h.aggregator.Run(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AggregationRunResponse{
		HotspotCount: len(snapshot.Hotspots),
		GeneratedAt:  snapshot.GeneratedAt,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
