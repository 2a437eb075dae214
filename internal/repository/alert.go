package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/hazard_hotspots/internal/models"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

// SaveAlert сохраняет выпущенное оповещение. Повторная запись с тем же id игнорируется.
func (r *AlertRepository) SaveAlert(ctx context.Context, a models.HotspotAlert) error {
	query := `
		INSERT INTO alerts (
			id, hotspot_id, cell_id, severity, title, message, center, radius_meters,
			hazard_types, signal_count, created_at, expires_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, ST_SetSRID(ST_MakePoint($7, $8), 4326)::geography, $9,
			$10, $11, $12, $13
		)
		ON CONFLICT (id) DO NOTHING;
	`
	types := make([]string, len(a.HazardTypes))
	for i, t := range a.HazardTypes {
		types[i] = string(t)
	}
	_, err := r.db.Exec(ctx, query,
		a.ID,
		a.HotspotID,
		a.CellID,
		string(a.Severity),
		a.Title,
		a.Message,
		a.Center.Longitude,
		a.Center.Latitude,
		a.RadiusMeters,
		types,
		a.SignalCount,
		a.Timestamp,
		a.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save alert: %w", err)
	}
	return nil
}

// ListActiveAlerts возвращает оповещения, не истекшие на момент now, новые первыми
func (r *AlertRepository) ListActiveAlerts(ctx context.Context, now time.Time) ([]models.HotspotAlert, error) {
	query := `
		SELECT
			id,
			hotspot_id,
			cell_id,
			severity,
			title,
			message,
			ST_Y(center::geometry) as latitude,
			ST_X(center::geometry) as longitude,
			radius_meters,
			hazard_types,
			signal_count,
			created_at,
			expires_at
		FROM alerts
		WHERE expires_at > $1
		ORDER BY created_at DESC, id;
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]models.HotspotAlert, 0)
	for rows.Next() {
		var (
			a        models.HotspotAlert
			severity string
			types    []string
		)
		err := rows.Scan(
			&a.ID,
			&a.HotspotID,
			&a.CellID,
			&severity,
			&a.Title,
			&a.Message,
			&a.Center.Latitude,
			&a.Center.Longitude,
			&a.RadiusMeters,
			&types,
			&a.SignalCount,
			&a.Timestamp,
			&a.ExpiresAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		a.Severity = models.Severity(severity)
		a.HazardTypes = make([]models.HazardType, len(types))
		for i, t := range types {
			a.HazardTypes[i] = models.HazardType(t)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListActiveAlerts: %w", err)
	}
	return alerts, nil
}
