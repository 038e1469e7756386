package maintenancerepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, rec *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error) {
	query := `
        INSERT INTO maintenance_records (equipment_id, channel, cost, cost_movement_id, details, opened_by, opened_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		rec.EquipmentID, rec.Channel, rec.Cost,
		rec.CostMovementID, rec.Details, rec.OpenedBy, rec.OpenedAt,
	).Scan(&rec.ID)
	if err != nil {
		zap.L().Error("can't save maintenance record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.MaintenanceRecord, error) {
	query := `
        SELECT id, equipment_id, channel, cost, cost_movement_id, details, opened_by, opened_at, closed_at
        FROM maintenance_records
        WHERE id = $1
    `
	rec, err := r.scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get maintenance record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// Close stamps closed_at on an open record. The condition on closed_at keeps
// a double close from rewriting the timestamp. Returns false when nothing matched.
func (r *Repository) Close(ctx context.Context, id int, closedAt time.Time) (bool, error) {
	query := `
        UPDATE maintenance_records
        SET closed_at = $1
        WHERE id = $2 AND closed_at IS NULL
    `
	tag, err := r.db.Exec(ctx, query, closedAt, id)
	if err != nil {
		zap.L().Error("can't close maintenance record", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListOpen(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	query := `
        SELECT id, equipment_id, channel, cost, cost_movement_id, details, opened_by, opened_at, closed_at
        FROM maintenance_records
        WHERE closed_at IS NULL
        ORDER BY opened_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list open maintenance records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.MaintenanceRecord
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			zap.L().Error("can't scan maintenance record row", zap.Error(err))
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *Repository) scan(row pgx.Row) (*domain.MaintenanceRecord, error) {
	var rec domain.MaintenanceRecord
	var closedAt sql.NullTime
	err := row.Scan(&rec.ID, &rec.EquipmentID, &rec.Channel, &rec.Cost, &rec.CostMovementID,
		&rec.Details, &rec.OpenedBy, &rec.OpenedAt, &closedAt)
	if err != nil {
		return nil, err
	}
	if closedAt.Valid {
		rec.ClosedAt = &closedAt.Time
	}
	return &rec, nil
}
