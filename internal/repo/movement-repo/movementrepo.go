package movementrepo

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/pg"
)

// Repository exposes the four independent movement sources. The sources are
// separate tables with no transactional relationship; each list reads one of
// them and nothing else. Rows with a NULL effective timestamp are returned
// as-is, the ledger aggregator decides the fallback.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) ListOrderPayments(ctx context.Context, channel domain.Channel) ([]domain.Movement, error) {
	query := `
        SELECT id, channel, amount, concept, description, paid_at, created_at
        FROM order_payments
        WHERE channel = $1
    `
	return r.listMovements(ctx, query, channel, domain.SourceOrderPayment, domain.DirectionCredit)
}

func (r *Repository) ListExpenses(ctx context.Context, channel domain.Channel) ([]domain.Movement, error) {
	query := `
        SELECT id, channel, amount, concept, description, spent_at, created_at
        FROM expenses
        WHERE channel = $1
    `
	return r.listMovements(ctx, query, channel, domain.SourceExpense, domain.DirectionDebit)
}

func (r *Repository) ListMaintenanceCosts(ctx context.Context, channel domain.Channel) ([]domain.Movement, error) {
	query := `
        SELECT id, channel, amount, concept, description, spent_at, created_at
        FROM maintenance_costs
        WHERE channel = $1
    `
	return r.listMovements(ctx, query, channel, domain.SourceMaintenanceCost, domain.DirectionDebit)
}

// ListCapitalEvents is the only source where the direction is stored per row:
// capital can be injected (credit) or withdrawn (debit).
func (r *Repository) ListCapitalEvents(ctx context.Context, channel domain.Channel) ([]domain.Movement, error) {
	query := `
        SELECT id, channel, direction, amount, concept, description, occurred_at, created_at
        FROM capital_events
        WHERE channel = $1
    `
	rows, err := r.db.Query(ctx, query, channel)
	if err != nil {
		zap.L().Error("can't list capital events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		var m domain.Movement
		var effectiveAt sql.NullTime
		err := rows.Scan(&m.SourceID, &m.Channel, &m.Direction, &m.Amount, &m.Concept, &m.Description, &effectiveAt, &m.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan capital event row", zap.Error(err))
			return nil, err
		}
		m.Source = domain.SourceCapitalEvent
		if effectiveAt.Valid {
			m.EffectiveAt = effectiveAt.Time
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (r *Repository) listMovements(ctx context.Context, query string, channel domain.Channel, source domain.SourceCategory, direction domain.Direction) ([]domain.Movement, error) {
	rows, err := r.db.Query(ctx, query, channel)
	if err != nil {
		zap.L().Error("can't list movements", zap.String("source", string(source)), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		var m domain.Movement
		var effectiveAt sql.NullTime
		err := rows.Scan(&m.SourceID, &m.Channel, &m.Amount, &m.Concept, &m.Description, &effectiveAt, &m.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan movement row", zap.String("source", string(source)), zap.Error(err))
			return nil, err
		}
		m.Source = source
		m.Direction = direction
		if effectiveAt.Valid {
			m.EffectiveAt = effectiveAt.Time
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// CreateMaintenanceCost appends the debit movement emitted by a maintenance open.
func (r *Repository) CreateMaintenanceCost(ctx context.Context, cost *domain.MaintenanceCost) (*domain.MaintenanceCost, error) {
	query := `
        INSERT INTO maintenance_costs (equipment_id, channel, amount, concept, description, spent_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		cost.EquipmentID, cost.Channel, cost.Amount,
		cost.Concept, cost.Description, cost.SpentAt, cost.CreatedBy,
	).Scan(&cost.ID, &cost.CreatedAt)
	if err != nil {
		zap.L().Error("can't save maintenance cost", zap.Error(err))
		return nil, err
	}
	return cost, nil
}

// ListUnlinkedMaintenanceCosts returns cost rows no maintenance record points at.
// Input for the partial-write repair pass.
func (r *Repository) ListUnlinkedMaintenanceCosts(ctx context.Context) ([]domain.MaintenanceCost, error) {
	query := `
        SELECT mc.id, mc.equipment_id, mc.channel, mc.amount, mc.concept, mc.description, mc.spent_at, mc.created_by, mc.created_at
        FROM maintenance_costs mc
        WHERE NOT EXISTS (
            SELECT 1 FROM maintenance_records mr WHERE mr.cost_movement_id = mc.id
        )
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list unlinked maintenance costs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var costs []domain.MaintenanceCost
	for rows.Next() {
		var c domain.MaintenanceCost
		var spentAt sql.NullTime
		err := rows.Scan(&c.ID, &c.EquipmentID, &c.Channel, &c.Amount, &c.Concept, &c.Description, &spentAt, &c.CreatedBy, &c.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan maintenance cost row", zap.Error(err))
			return nil, err
		}
		if spentAt.Valid {
			c.SpentAt = spentAt.Time
		}
		costs = append(costs, c)
	}
	return costs, rows.Err()
}
