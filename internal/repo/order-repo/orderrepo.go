package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/pg"
)

// Repository reads order records. Orders are owned by the intake flow; this
// core only consults them for the delivery gate and the orphan sweep.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT id, customer_name, status, assigned_equipment_id, created_at
        FROM orders
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var order domain.Order
	err := row.Scan(&order.ID, &order.CustomerName, &order.Status, &order.AssignedEquipmentID, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return &order, nil
}
