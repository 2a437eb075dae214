package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Каналы уведомлений shoutrrr (email, sms, push, чаты)
	NotifyURLs    []string      `env:"NOTIFY_URLS"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`

	// Kafka Config, поток горячих точек отключен, если брокеры не заданы
	KafkaBrokers      []string `env:"KAFKA_BROKERS"`
	KafkaHotspotTopic string   `env:"KAFKA_HOTSPOT_TOPIC" envDefault:"hazard-hotspots"`

	// Spatial / aggregation policy
	SpatialCellLevel    int           `env:"SPATIAL_CELL_LEVEL" envDefault:"12"`
	AggregationInterval time.Duration `env:"AGGREGATION_INTERVAL" envDefault:"5m"`
	AggregationWindow   time.Duration `env:"AGGREGATION_WINDOW" envDefault:"24h"`
	HotspotMinSignals   int           `env:"HOTSPOT_MIN_SIGNALS" envDefault:"2"`
	HotspotRadiusMeters int           `env:"HOTSPOT_RADIUS_METERS" envDefault:"5000"`
	HotspotTTL          time.Duration `env:"HOTSPOT_TTL" envDefault:"1h"`

	// Dashboard Config
	DashboardWindow   time.Duration `env:"DASHBOARD_WINDOW" envDefault:"24h"`
	DashboardCacheTTL time.Duration `env:"DASHBOARD_CACHE_TTL" envDefault:"30s"`

	// API Keys for authentication, формат key[:role[:user_id]]
	APIKeys []APIKey `env:"API_KEYS"`
}

// APIKey связывает ключ с пользователем и ролью
type APIKey struct {
	Key    string
	Role   string
	UserID string
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DBMaxConns:          int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		NotifyURLs:          getEnvAsList("NOTIFY_URLS"),
		NotifyTimeout:       getEnvAsDuration("NOTIFY_TIMEOUT", 10*time.Second),
		KafkaBrokers:        getEnvAsList("KAFKA_BROKERS"),
		KafkaHotspotTopic:   getEnv("KAFKA_HOTSPOT_TOPIC", "hazard-hotspots"),
		SpatialCellLevel:    getEnvAsInt("SPATIAL_CELL_LEVEL", 12),
		AggregationInterval: getEnvAsDuration("AGGREGATION_INTERVAL", 5*time.Minute),
		AggregationWindow:   getEnvAsDuration("AGGREGATION_WINDOW", 24*time.Hour),
		HotspotMinSignals:   getEnvAsInt("HOTSPOT_MIN_SIGNALS", 2),
		HotspotRadiusMeters: getEnvAsInt("HOTSPOT_RADIUS_METERS", 5000),
		HotspotTTL:          getEnvAsDuration("HOTSPOT_TTL", time.Hour),
		DashboardWindow:     getEnvAsDuration("DASHBOARD_WINDOW", 24*time.Hour),
		DashboardCacheTTL:   getEnvAsDuration("DASHBOARD_CACHE_TTL", 30*time.Second),
	}

	// Загрузка API ключей
	for _, entry := range getEnvAsList("API_KEYS") {
		cfg.APIKeys = append(cfg.APIKeys, parseAPIKey(entry))
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.SpatialCellLevel < 0 || c.SpatialCellLevel > 30 {
		return fmt.Errorf("SPATIAL_CELL_LEVEL must be in [0, 30], got %d", c.SpatialCellLevel)
	}
	if c.HotspotMinSignals < 1 {
		return fmt.Errorf("HOTSPOT_MIN_SIGNALS must be positive, got %d", c.HotspotMinSignals)
	}
	if c.HotspotRadiusMeters <= 0 {
		return fmt.Errorf("HOTSPOT_RADIUS_METERS must be positive, got %d", c.HotspotRadiusMeters)
	}
	if c.AggregationInterval <= 0 || c.AggregationWindow <= 0 || c.HotspotTTL <= 0 {
		return fmt.Errorf("aggregation interval, window and hotspot TTL must be positive")
	}
	for _, k := range c.APIKeys {
		switch k.Role {
		case "citizen", "official", "analyst":
		default:
			return fmt.Errorf("unknown role %q for API key", k.Role)
		}
	}
	return nil
}

// parseAPIKey разбирает запись вида key[:role[:user_id]], роль по умолчанию citizen
func parseAPIKey(entry string) APIKey {
	parts := strings.SplitN(entry, ":", 3)
	key := APIKey{Key: strings.TrimSpace(parts[0]), Role: "citizen"}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		key.Role = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		key.UserID = strings.TrimSpace(parts[2])
	}
	if key.UserID == "" {
		key.UserID = key.Role
	}
	return key
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбивает значение по запятым, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
