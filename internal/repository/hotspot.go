package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/hazard_hotspots/internal/models"
)

type HotspotRepository struct {
	db *pgxpool.Pool
}

func NewHotspotRepository(db *pgxpool.Pool) *HotspotRepository {
	return &HotspotRepository{db: db}
}

// ReplaceHotspots заменяет весь набор горячих точек в одной транзакции.
// Читатели видят либо старый, либо новый набор целиком.
func (r *HotspotRepository) ReplaceHotspots(ctx context.Context, hotspots []models.Hotspot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin hotspot transaction: %w", err)
	}
	// после Commit откат ничего не делает
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM hotspots;`); err != nil {
		return fmt.Errorf("failed to clear hotspots: %w", err)
	}

	query := `
		INSERT INTO hotspots (
			id, cell_id, center, radius_meters, signal_count, severity_level, hazard_types, created_at, expires_at
		)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6, $7, $8, $9, $10);
	`
	batch := &pgx.Batch{}
	for _, h := range hotspots {
		types := make([]string, len(h.HazardTypes))
		for i, t := range h.HazardTypes {
			types[i] = string(t)
		}
		batch.Queue(query,
			h.ID,
			h.CellID,
			h.CenterLocation.Longitude,
			h.CenterLocation.Latitude,
			h.RadiusMeters,
			h.SignalCount,
			string(h.SeverityLevel),
			types,
			h.CreatedAt,
			h.ExpiresAt,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert hotspots: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit hotspots: %w", err)
	}
	return nil
}

// ListActiveHotspots возвращает горячие точки, не истекшие на момент now
func (r *HotspotRepository) ListActiveHotspots(ctx context.Context, now time.Time) ([]models.Hotspot, error) {
	query := `
		SELECT
			id,
			cell_id,
			ST_Y(center::geometry) as latitude,
			ST_X(center::geometry) as longitude,
			radius_meters,
			signal_count,
			severity_level,
			hazard_types,
			created_at,
			expires_at
		FROM hotspots
		WHERE expires_at > $1
		ORDER BY cell_id;
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active hotspots: %w", err)
	}
	defer rows.Close()

	hotspots := make([]models.Hotspot, 0)
	for rows.Next() {
		var (
			h        models.Hotspot
			severity string
			types    []string
		)
		err := rows.Scan(
			&h.ID,
			&h.CellID,
			&h.CenterLocation.Latitude,
			&h.CenterLocation.Longitude,
			&h.RadiusMeters,
			&h.SignalCount,
			&severity,
			&types,
			&h.CreatedAt,
			&h.ExpiresAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotspot row: %w", err)
		}
		h.SeverityLevel = models.Severity(severity)
		h.HazardTypes = make([]models.HazardType, len(types))
		for i, t := range types {
			h.HazardTypes[i] = models.HazardType(t)
		}
		hotspots = append(hotspots, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListActiveHotspots: %w", err)
	}
	return hotspots, nil
}
