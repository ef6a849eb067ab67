package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/epeers/gardenfeed/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrFeedLogNotFound = errors.New("feed log not found")
)

// FeedLogRepository handles database operations for feed logs
type FeedLogRepository struct {
	pool *pgxpool.Pool
}

// NewFeedLogRepository creates a new FeedLogRepository
func NewFeedLogRepository(pool *pgxpool.Pool) *FeedLogRepository {
	return &FeedLogRepository{pool: pool}
}

// Create writes a feed log and its nutrient rows in one transaction
func (r *FeedLogRepository) Create(ctx context.Context, l *models.FeedLog) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO feed_log (zone_id, grower_id, fed_on, volume, volume_unit, stage, scale, final_ppm, notes, created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created
	`
	err = tx.QueryRow(ctx, query,
		l.ZoneID, l.GrowerID, l.FedOn.Time, l.Volume, string(l.VolumeUnit), string(l.Stage), int(l.Scale), l.FinalPPM, l.Notes,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert feed log: %w", err)
	}

	if len(l.Nutrients) > 0 {
		batch := &pgx.Batch{}
		for _, n := range l.Nutrients {
			batch.Queue(`
				INSERT INTO feed_log_nutrient (feed_log_id, nutrient, grams)
				VALUES ($1, $2, $3)
			`, l.ID, string(n.Nutrient), n.Grams)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert feed log nutrients: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetLatestByZone returns the most recent feed log of a zone
func (r *FeedLogRepository) GetLatestByZone(ctx context.Context, zoneID int64) (*models.FeedLog, error) {
	query := `
		SELECT id, zone_id, grower_id, fed_on, volume, volume_unit, stage, scale, final_ppm, notes, created
		FROM feed_log
		WHERE zone_id = $1
		ORDER BY fed_on DESC, created DESC
		LIMIT 1
	`
	l := &models.FeedLog{}
	err := r.pool.QueryRow(ctx, query, zoneID).Scan(
		&l.ID, &l.ZoneID, &l.GrowerID, &l.FedOn.Time, &l.Volume, &l.VolumeUnit, &l.Stage, &l.Scale, &l.FinalPPM, &l.Notes, &l.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFeedLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest feed log: %w", err)
	}

	nutrients, err := r.getNutrients(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	l.Nutrients = nutrients
	return l, nil
}

// ListByZone retrieves the most recent feed logs of a zone (metadata only)
func (r *FeedLogRepository) ListByZone(ctx context.Context, zoneID int64, limit int) ([]models.FeedLogListItem, error) {
	query := `
		SELECT id, fed_on, stage, final_ppm, notes
		FROM feed_log
		WHERE zone_id = $1
		ORDER BY fed_on DESC, created DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, zoneID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed logs: %w", err)
	}
	defer rows.Close()

	var logs []models.FeedLogListItem
	for rows.Next() {
		var item models.FeedLogListItem
		if err := rows.Scan(&item.ID, &item.FedOn.Time, &item.Stage, &item.FinalPPM, &item.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan feed log: %w", err)
		}
		logs = append(logs, item)
	}
	return logs, rows.Err()
}

func (r *FeedLogRepository) getNutrients(ctx context.Context, feedLogID int64) ([]models.FeedLogNutrient, error) {
	query := `
		SELECT nutrient, grams
		FROM feed_log_nutrient
		WHERE feed_log_id = $1
		ORDER BY nutrient
	`
	rows, err := r.pool.Query(ctx, query, feedLogID)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed log nutrients: %w", err)
	}
	defer rows.Close()

	var out []models.FeedLogNutrient
	for rows.Next() {
		var n models.FeedLogNutrient
		if err := rows.Scan(&n.Nutrient, &n.Grams); err != nil {
			return nil, fmt.Errorf("failed to scan feed log nutrient: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
