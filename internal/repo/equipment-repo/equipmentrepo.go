package equipmentrepo

import (
	"context"
	"errors"

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

const equipmentColumns = `id, code, state, assignment_order_id, active_maintenance_id, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, code string) (*domain.Equipment, error) {
	query := `
        INSERT INTO equipment (code, state)
        VALUES ($1, 'available')
        RETURNING ` + equipmentColumns
	var eq domain.Equipment
	err := r.scanOne(r.db.QueryRow(ctx, query, code), &eq)
	if err != nil {
		zap.L().Error("can't create equipment", zap.Error(err))
		return nil, err
	}
	return &eq, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Equipment, error) {
	query := `
        SELECT ` + equipmentColumns + `
        FROM equipment
        WHERE id = $1
    `
	var eq domain.Equipment
	err := r.scanOne(r.db.QueryRow(ctx, query, id), &eq)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get equipment", zap.Error(err))
		return nil, err
	}
	return &eq, nil
}

// FindByActiveMaintenance returns the unit currently pointing at the given
// maintenance record, if any.
func (r *Repository) FindByActiveMaintenance(ctx context.Context, maintenanceID int) (*domain.Equipment, error) {
	query := `
        SELECT ` + equipmentColumns + `
        FROM equipment
        WHERE active_maintenance_id = $1
    `
	var eq domain.Equipment
	err := r.scanOne(r.db.QueryRow(ctx, query, maintenanceID), &eq)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find equipment by maintenance", zap.Error(err))
		return nil, err
	}
	return &eq, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `
        SELECT ` + equipmentColumns + `
        FROM equipment
        ORDER BY code ASC
    `
	return r.list(ctx, query)
}

func (r *Repository) ListByState(ctx context.Context, state domain.EquipmentState) ([]domain.Equipment, error) {
	query := `
        SELECT ` + equipmentColumns + `
        FROM equipment
        WHERE state = $1
        ORDER BY code ASC
    `
	return r.list(ctx, query, state)
}

// Transition performs a conditional state change. The WHERE clause on the
// current state is the per-unit mutual exclusion: of two concurrent writers
// only one matches the row. Returns false when nothing matched.
func (r *Repository) Transition(ctx context.Context, id int, from, to domain.EquipmentState, orderID, maintenanceID *int) (bool, error) {
	query := `
        UPDATE equipment
        SET state = $1, assignment_order_id = $2, active_maintenance_id = $3, updated_at = now()
        WHERE id = $4 AND state = $5
    `
	tag, err := r.db.Exec(ctx, query, to, orderID, maintenanceID, id, from)
	if err != nil {
		zap.L().Error("can't transition equipment", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Retire moves a unit to the terminal state from any non-retired state.
func (r *Repository) Retire(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE equipment
        SET state = 'retired', assignment_order_id = NULL, active_maintenance_id = NULL, updated_at = now()
        WHERE id = $1 AND state <> 'retired'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't retire equipment", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseOrphan reverts a rented unit to available only while it is still
// rented against the same order, which keeps concurrent sweeps idempotent.
func (r *Repository) ReleaseOrphan(ctx context.Context, id, orderID int) (bool, error) {
	query := `
        UPDATE equipment
        SET state = 'available', assignment_order_id = NULL, updated_at = now()
        WHERE id = $1 AND state = 'rented' AND assignment_order_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, orderID)
	if err != nil {
		zap.L().Error("can't release orphaned equipment", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Equipment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list equipment", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var eq domain.Equipment
		err := rows.Scan(&eq.ID, &eq.Code, &eq.State, &eq.AssignmentOrderID, &eq.ActiveMaintenanceID, &eq.CreatedAt, &eq.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan equipment row", zap.Error(err))
			return nil, err
		}
		items = append(items, eq)
	}
	return items, rows.Err()
}

func (r *Repository) scanOne(row pgx.Row, eq *domain.Equipment) error {
	return row.Scan(&eq.ID, &eq.Code, &eq.State, &eq.AssignmentOrderID, &eq.ActiveMaintenanceID, &eq.CreatedAt, &eq.UpdatedAt)
}
