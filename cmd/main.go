package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/hazard_hotspots/internal/aggregator"
	"github.com/shenikar/hazard_hotspots/internal/classifier"
	"github.com/shenikar/hazard_hotspots/internal/config"
	v1 "github.com/shenikar/hazard_hotspots/internal/handler/http/v1"
	"github.com/shenikar/hazard_hotspots/internal/notify"
	"github.com/shenikar/hazard_hotspots/internal/observability"
	"github.com/shenikar/hazard_hotspots/internal/repository"
	"github.com/shenikar/hazard_hotspots/internal/service"
	"github.com/shenikar/hazard_hotspots/internal/spatial"
	"github.com/shenikar/hazard_hotspots/internal/stream"
	"github.com/shenikar/hazard_hotspots/internal/webhook"
	"github.com/shenikar/hazard_hotspots/pkg/logger"
	"github.com/shenikar/hazard_hotspots/pkg/postgres"
	redisclient "github.com/shenikar/hazard_hotspots/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/hazard_hotspots/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Coastal Hazard Hotspots API
// @version 1.0
// @description Ingestion of citizen reports and social posts about coastal hazards, spatial hotspot aggregation and dashboard projections.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	cls, err := classifier.New(classifier.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to build classifier: %v", err)
	}
	indexer, err := spatial.NewIndexer(cfg.SpatialCellLevel)
	if err != nil {
		log.Fatalf("Failed to build spatial indexer: %v", err)
	}

	// Инициализация репозиториев
	signalRepo := repository.NewSignalRepository(dbpool, redisClient)
	hotspotRepo := repository.NewHotspotRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)

	// Каналы оповещений: таблица alerts и очередь вебхуков всегда, shoutrrr по NOTIFY_URLS
	channels := []notify.Channel{
		notify.NewStoreChannel(alertRepo),
		webhook.NewRedisWebhookPublisher(redisClient),
	}
	if len(cfg.NotifyURLs) > 0 {
		shoutrrrChannel, err := notify.NewShoutrrrChannel(cfg.NotifyURLs, cfg.NotifyTimeout)
		if err != nil {
			log.Fatalf("Failed to configure notification channels: %v", err)
		}
		channels = append(channels, shoutrrrChannel)
	}
	dispatcher := notify.NewDispatcher(log, metrics, channels...)
	log.WithField("channels", dispatcher.Channels()).Info("Alert channels configured")

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Поток снимков в Kafka
	var sink aggregator.SnapshotSink
	if len(cfg.KafkaBrokers) > 0 {
		writer := stream.NewHotspotWriter(cfg)
		defer writer.Close()
		sink = writer
		log.WithField("topic", cfg.KafkaHotspotTopic).Info("Hotspot stream enabled")
	}

	policy := aggregator.DefaultPolicy()
	policy.Window = cfg.AggregationWindow
	policy.MinSignals = cfg.HotspotMinSignals
	policy.RadiusMeters = cfg.HotspotRadiusMeters
	policy.TTL = cfg.HotspotTTL

	agg := aggregator.New(signalRepo, hotspotRepo, dispatcher, sink, policy, clock, log, metrics)
	if err := agg.Restore(ctx); err != nil {
		log.WithError(err).Warn("Failed to restore hotspots, starting with an empty snapshot")
	}
	schedulerDone := aggregator.NewScheduler(agg, cfg.AggregationInterval, clock, log).Start(ctx)

	// Инициализация сервисов
	signalService := service.NewSignalService(signalRepo, cls, indexer, clock, log, metrics)
	dashboardService := service.NewDashboardService(signalRepo, agg, clock, cfg.DashboardWindow, cfg.DashboardCacheTTL, log)
	alertService := service.NewAlertService(alertRepo, clock, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(signalService, dashboardService, alertService, agg, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	// контекст запросов отменяется в начале остановки, иначе SSE-потоки держат Shutdown
	requestCtx, cancelRequests := context.WithCancel(ctx)
	srv := &http.Server{
		Addr:        serverAddr,
		Handler:     router,
		BaseContext: func(net.Listener) context.Context { return requestCtx },
	}
	srv.RegisterOnShutdown(cancelRequests)

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// останавливаем планировщик и воркер
	cancel()
	<-schedulerDone

	log.Info("Server gracefully stopped")
}
