package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hazard_hotspots/internal/models"
)

const (
	// SignalsChannel - канал Redis pub/sub для realtime-ленты сигналов
	SignalsChannel = "hazard_signals"
	signalCacheTTL = 5 * time.Minute
)

const signalColumns = `
	id,
	source,
	COALESCE(external_id, ''),
	COALESCE(title, ''),
	COALESCE(text, ''),
	COALESCE(author, ''),
	COALESCE(reporter_id, ''),
	COALESCE(hazard_type, ''),
	COALESCE(severity, ''),
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	COALESCE(cell_id, ''),
	hazard_probability,
	sentiment_score,
	hazard_keywords,
	media_urls,
	verified,
	COALESCE(verified_by, ''),
	verified_at,
	created_at`

type SignalRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewSignalRepository(db *pgxpool.Pool, redisClient *redis.Client) *SignalRepository {
	return &SignalRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create сохраняет сигнал. Сигналы без координат хранятся с location = NULL.
func (r *SignalRepository) Create(ctx context.Context, s *models.HazardSignal) error {
	query := `
		INSERT INTO hazard_signals (
			id, source, external_id, title, text, author, reporter_id, hazard_type, severity,
			location, cell_id, hazard_probability, sentiment_score, hazard_keywords, media_urls,
			verified, created_at
		)
		VALUES (
			$1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''),
			NULLIF($8, ''), NULLIF($9, ''),
			CASE WHEN $10::float8 IS NULL THEN NULL
				ELSE ST_SetSRID(ST_MakePoint($10::float8, $11::float8), 4326)::geography END,
			NULLIF($12, ''), $13, $14, $15, $16, $17, $18
		);
	`
	var lon, lat *float64
	if s.Location != nil {
		lon, lat = &s.Location.Longitude, &s.Location.Latitude
	}
	_, err := r.db.Exec(ctx, query,
		s.ID,
		string(s.Source),
		s.ExternalID,
		s.Title,
		s.Text,
		s.Author,
		s.ReporterID,
		string(s.HazardType),
		string(s.Severity),
		lon,
		lat,
		s.CellID,
		s.HazardProbability,
		s.SentimentScore,
		nonNil(s.HazardKeywords),
		nonNil(s.MediaURLs),
		s.Verified,
		s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create signal: %w", err)
	}
	return nil
}

// GetByID возвращает сигнал по его UUID
func (r *SignalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HazardSignal, error) {
	query := `SELECT ` + signalColumns + ` FROM hazard_signals WHERE id = $1;`
	s, err := scanSignal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("signal with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get signal by id: %w", err)
	}
	return s, nil
}

// Verify отмечает отчет гражданина как подтвержденный
func (r *SignalRepository) Verify(ctx context.Context, id uuid.UUID, verifiedBy string, at time.Time) error {
	query := `
		UPDATE hazard_signals SET
			verified = TRUE,
			verified_by = $2,
			verified_at = $3
		WHERE id = $1 AND source = 'citizen';
	`
	cmdTag, err := r.db.Exec(ctx, query, id, verifiedBy, at)
	if err != nil {
		return fmt.Errorf("failed to verify signal: %w", err)
	}
	// RowsAffected() == 0 - отчета с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("citizen report with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListRecent возвращает последние сигналы, новые первыми
func (r *SignalRepository) ListRecent(ctx context.Context, limit int) ([]models.HazardSignal, error) {
	query := `SELECT ` + signalColumns + `
		FROM hazard_signals
		ORDER BY created_at DESC, id
		LIMIT $1;`
	return r.list(ctx, "ListRecent", query, limit)
}

// ListInBounds возвращает сигналы с координатами внутри прямоугольника
func (r *SignalRepository) ListInBounds(ctx context.Context, b models.Bounds, limit int) ([]models.HazardSignal, error) {
	query := `SELECT ` + signalColumns + `
		FROM hazard_signals
		WHERE
			location IS NOT NULL
			AND ST_Intersects(location::geometry, ST_MakeEnvelope($1, $2, $3, $4, 4326))
		ORDER BY created_at DESC, id
		LIMIT $5;`
	return r.list(ctx, "ListInBounds", query, b.MinLon, b.MinLat, b.MaxLon, b.MaxLat, limit)
}

// ListSince возвращает все сигналы, созданные не раньше since
func (r *SignalRepository) ListSince(ctx context.Context, since time.Time) ([]models.HazardSignal, error) {
	query := `SELECT ` + signalColumns + `
		FROM hazard_signals
		WHERE created_at >= $1
		ORDER BY created_at, id;`
	return r.list(ctx, "ListSince", query, since)
}

// ListSpatialSince возвращает сигналы с ячейкой за окно агрегации
func (r *SignalRepository) ListSpatialSince(ctx context.Context, since time.Time) ([]models.HazardSignal, error) {
	query := `SELECT ` + signalColumns + `
		FROM hazard_signals
		WHERE
			created_at >= $1
			AND cell_id IS NOT NULL
			AND location IS NOT NULL
		ORDER BY cell_id, created_at, id;`
	return r.list(ctx, "ListSpatialSince", query, since)
}

// ListFiltered возвращает последние сигналы, подходящие под фильтр
func (r *SignalRepository) ListFiltered(ctx context.Context, f models.SignalFilter) ([]models.HazardSignal, error) {
	var (
		conds []string
		args  []any
	)
	where := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if len(f.Sources) > 0 {
		sources := make([]string, len(f.Sources))
		for i, src := range f.Sources {
			sources[i] = string(src)
		}
		where("source = ANY($%d)", sources)
	}
	if f.HazardType != "" {
		where("hazard_type = $%d", string(f.HazardType))
	}
	if f.Severity != "" {
		where("severity = $%d", string(f.Severity))
	}
	if f.Verified != nil {
		where("verified = $%d", *f.Verified)
	}

	query := `SELECT ` + signalColumns + ` FROM hazard_signals`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, f.Limit)
	query += fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT $%d;`, len(args))
	return r.list(ctx, "ListFiltered", query, args...)
}

func (r *SignalRepository) list(ctx context.Context, op, query string, args ...any) ([]models.HazardSignal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	signals := make([]models.HazardSignal, 0)
	for rows.Next() {
		s, err := scanSignal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan signal row in %s: %w", op, err)
		}
		signals = append(signals, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", op, err)
	}
	return signals, nil
}

// CountByHazardType - число сигналов по типу опасности начиная с since
func (r *SignalRepository) CountByHazardType(ctx context.Context, since time.Time) (map[models.HazardType]int, error) {
	query := `
		SELECT COALESCE(hazard_type, 'other'), COUNT(*)
		FROM hazard_signals
		WHERE created_at >= $1
		GROUP BY 1;
	`
	counts, err := r.count(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count signals by hazard type: %w", err)
	}
	out := make(map[models.HazardType]int, len(counts))
	for k, v := range counts {
		out[models.HazardType(k)] += v
	}
	return out, nil
}

// CountBySource - число сигналов по источнику начиная с since
func (r *SignalRepository) CountBySource(ctx context.Context, since time.Time) (map[models.Source]int, error) {
	query := `
		SELECT source, COUNT(*)
		FROM hazard_signals
		WHERE created_at >= $1
		GROUP BY source;
	`
	counts, err := r.count(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count signals by source: %w", err)
	}
	out := make(map[models.Source]int, len(counts))
	for k, v := range counts {
		out[models.Source(k)] = v
	}
	return out, nil
}

func (r *SignalRepository) count(ctx context.Context, query string, args ...any) (map[string]int, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			key string
			n   int
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

// GetSignalFromCache пытается получить сигнал из Redis, nil при промахе
func (r *SignalRepository) GetSignalFromCache(ctx context.Context, id uuid.UUID) (*models.HazardSignal, error) {
	val, err := r.redisClient.Get(ctx, signalCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get signal from cache: %w", err)
	}

	signal := &models.HazardSignal{}
	if err := json.Unmarshal(val, signal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signal from cache: %w", err)
	}
	return signal, nil
}

// SetSignalCache сохраняет сигнал в Redis
func (r *SignalRepository) SetSignalCache(ctx context.Context, signal *models.HazardSignal) error {
	val, err := json.Marshal(signal)
	if err != nil {
		return fmt.Errorf("failed to marshal signal for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, signalCacheKey(signal.ID), val, signalCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set signal in cache: %w", err)
	}
	return nil
}

// InvalidateSignalCache удаляет сигнал из Redis кэша
func (r *SignalRepository) InvalidateSignalCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, signalCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate signal cache: %w", err)
	}
	return nil
}

// PublishSignal публикует принятый сигнал в канал Redis pub/sub
func (r *SignalRepository) PublishSignal(ctx context.Context, signal *models.HazardSignal) error {
	payload, err := json.Marshal(signal)
	if err != nil {
		return fmt.Errorf("failed to marshal signal for feed: %w", err)
	}
	if err := r.redisClient.Publish(ctx, SignalsChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish signal: %w", err)
	}
	return nil
}

// SubscribeSignals подписывается на realtime-канал. Канал закрывается при отмене ctx.
func (r *SignalRepository) SubscribeSignals(ctx context.Context) (<-chan models.HazardSignal, error) {
	pubsub := r.redisClient.Subscribe(ctx, SignalsChannel)
	// ждем подтверждения подписки, иначе первые сообщения могут потеряться
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to signal feed: %w", err)
	}

	out := make(chan models.HazardSignal)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var signal models.HazardSignal
				if err := json.Unmarshal([]byte(msg.Payload), &signal); err != nil {
					continue
				}
				select {
				case out <- signal:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func signalCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("signal:%s", id.String())
}

func scanSignal(row pgx.Row) (*models.HazardSignal, error) {
	var (
		s                            models.HazardSignal
		source, hazardType, severity string
		lat, lon                     *float64
		keywords, mediaURLs          []string
	)
	err := row.Scan(
		&s.ID,
		&source,
		&s.ExternalID,
		&s.Title,
		&s.Text,
		&s.Author,
		&s.ReporterID,
		&hazardType,
		&severity,
		&lat,
		&lon,
		&s.CellID,
		&s.HazardProbability,
		&s.SentimentScore,
		&keywords,
		&mediaURLs,
		&s.Verified,
		&s.VerifiedBy,
		&s.VerifiedAt,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Source = models.Source(source)
	s.HazardType = models.HazardType(hazardType)
	s.Severity = models.Severity(severity)
	if lat != nil && lon != nil {
		s.Location = &models.Location{Latitude: *lat, Longitude: *lon}
	}
	if len(keywords) > 0 {
		s.HazardKeywords = keywords
	}
	if len(mediaURLs) > 0 {
		s.MediaURLs = mediaURLs
	}
	return &s, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
