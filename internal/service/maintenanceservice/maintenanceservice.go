package maintenanceservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, rec *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error)
	GetByID(ctx context.Context, id int) (*domain.MaintenanceRecord, error)
	Close(ctx context.Context, id int, closedAt time.Time) (bool, error)
	ListOpen(ctx context.Context) ([]domain.MaintenanceRecord, error)
}

type MovementWriter interface {
	CreateMaintenanceCost(ctx context.Context, cost *domain.MaintenanceCost) (*domain.MaintenanceCost, error)
	ListUnlinkedMaintenanceCosts(ctx context.Context) ([]domain.MaintenanceCost, error)
}

type Funds interface {
	IsSufficient(ctx context.Context, channel domain.Channel, amount decimal.Decimal) (bool, decimal.Decimal, error)
}

type EquipmentRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Equipment, error)
	FindByActiveMaintenance(ctx context.Context, maintenanceID int) (*domain.Equipment, error)
	Transition(ctx context.Context, id int, from, to domain.EquipmentState, orderID, maintenanceID *int) (bool, error)
}

// Service opens and closes maintenance on equipment. Opening debits the chosen
// channel; the movement, the record and the equipment state change are written
// in that fixed order inside one transaction.
type Service struct {
	repo      Repo
	movements MovementWriter
	funds     Funds
	equipment EquipmentRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, movements MovementWriter, funds Funds, equipment EquipmentRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		movements: movements,
		funds:     funds,
		equipment: equipment,
		txManager: txManager,
		now:       time.Now,
	}
}

type OpenParams struct {
	EquipmentID int
	Channel     domain.Channel
	Cost        decimal.Decimal
	Details     string
	OpenedBy    string
}

// Open sends an available unit to maintenance. A positive cost must be covered
// by the channel both at the initial check and again inside the transaction,
// because another writer may debit the channel in between. A failed open
// leaves no movement, no record and no state change behind.
func (s *Service) Open(ctx context.Context, p OpenParams) (*domain.MaintenanceRecord, error) {
	eq, err := s.equipment.GetByID(ctx, p.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	if eq.State != domain.StateAvailable {
		return nil, &domain.InvalidStateTransitionError{
			EquipmentID: p.EquipmentID,
			From:        eq.State,
			To:          domain.StateInMaintenance,
		}
	}

	if p.Cost.IsPositive() {
		ok, available, err := s.funds.IsSufficient(ctx, p.Channel, p.Cost)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &domain.InsufficientFundsError{Channel: p.Channel, Required: p.Cost, Available: available}
		}
	}

	var rec *domain.MaintenanceRecord
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var costMovementID *int

		if p.Cost.IsPositive() {
			// Re-validate right before the write: the first check was advisory.
			ok, available, err := s.funds.IsSufficient(ctx, p.Channel, p.Cost)
			if err != nil {
				return err
			}
			if !ok {
				zap.L().Warn("channel drained between funds check and debit",
					zap.String("channel", string(p.Channel)), zap.Int("equipmentID", p.EquipmentID))
				return &domain.InsufficientFundsError{Channel: p.Channel, Required: p.Cost, Available: available}
			}

			cost, err := s.movements.CreateMaintenanceCost(ctx, &domain.MaintenanceCost{
				EquipmentID: p.EquipmentID,
				Channel:     p.Channel,
				Amount:      p.Cost,
				Concept:     "maintenance",
				Description: p.Details,
				SpentAt:     s.now(),
				CreatedBy:   p.OpenedBy,
			})
			if err != nil {
				return err
			}
			costMovementID = &cost.ID
		}

		created, err := s.repo.Create(ctx, &domain.MaintenanceRecord{
			EquipmentID:    p.EquipmentID,
			Channel:        p.Channel,
			Cost:           p.Cost,
			CostMovementID: costMovementID,
			Details:        p.Details,
			OpenedBy:       p.OpenedBy,
			OpenedAt:       s.now(),
		})
		if err != nil {
			return err
		}

		ok, err := s.equipment.Transition(ctx, p.EquipmentID, domain.StateAvailable, domain.StateInMaintenance, nil, &created.ID)
		if err != nil {
			return err
		}
		if !ok {
			// Lost the race for the unit; roll everything back.
			return &domain.InvalidStateTransitionError{
				EquipmentID: p.EquipmentID,
				From:        domain.StateAvailable,
				To:          domain.StateInMaintenance,
			}
		}

		rec = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Close finalizes an open record and returns the unit to service. No movement
// is emitted: the cost was debited at open time. When the record was erased
// out-of-band but a unit still references it, the unit is forced back to
// available; a lost audit record never blocks a physical machine.
func (s *Service) Close(ctx context.Context, maintenanceID int) error {
	rec, err := s.repo.GetByID(ctx, maintenanceID)
	if err != nil {
		return err
	}
	if rec == nil {
		return s.closeWithoutRecord(ctx, maintenanceID)
	}
	if !rec.IsOpen() {
		return domain.ErrAlreadyClosed
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.Close(ctx, maintenanceID, s.now())
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyClosed
		}

		ok, err = s.equipment.Transition(ctx, rec.EquipmentID, domain.StateInMaintenance, domain.StateAvailable, nil, nil)
		if err != nil {
			return err
		}
		if !ok {
			// The unit is not in maintenance anymore; the close still stands.
			zap.L().Warn("equipment not in maintenance while closing record",
				zap.Int("equipmentID", rec.EquipmentID), zap.Int("maintenanceID", maintenanceID))
		}
		return nil
	})
}

func (s *Service) closeWithoutRecord(ctx context.Context, maintenanceID int) error {
	eq, err := s.equipment.FindByActiveMaintenance(ctx, maintenanceID)
	if err != nil {
		return err
	}
	if eq == nil {
		return domain.ErrNotFound
	}

	zap.L().Warn("maintenance record missing, forcing equipment back to service",
		zap.Int("equipmentID", eq.ID), zap.Int("maintenanceID", maintenanceID))

	ok, err := s.equipment.Transition(ctx, eq.ID, domain.StateInMaintenance, domain.StateAvailable, nil, nil)
	if err != nil {
		return err
	}
	if !ok {
		zap.L().Warn("equipment left maintenance concurrently", zap.Int("equipmentID", eq.ID))
	}
	return nil
}

func (s *Service) ListOpen(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	return s.repo.ListOpen(ctx)
}

// RepairAction describes one correction made by the repair pass.
type RepairAction struct {
	Kind          string `json:"kind"`
	EquipmentID   int    `json:"equipment_id"`
	MaintenanceID int    `json:"maintenance_id,omitempty"`
	CostID        int    `json:"cost_id,omitempty"`
}

const (
	RepairRecordRecreated   = "record-recreated"
	RepairEquipmentRelinked = "equipment-relinked"
)

// Repair detects maintenance opens that were interrupted mid-write and
// re-derives the missing piece from what exists. Anything ambiguous is logged
// as a consistency alarm and left untouched, never guessed at.
func (s *Service) Repair(ctx context.Context) ([]RepairAction, error) {
	var actions []RepairAction

	costs, err := s.movements.ListUnlinkedMaintenanceCosts(ctx)
	if err != nil {
		return nil, err
	}
	for _, cost := range costs {
		pw := &domain.PartialWriteError{EquipmentID: cost.EquipmentID, Missing: "maintenance record"}
		zap.L().Error("consistency alarm: maintenance cost without record", zap.Error(pw), zap.Int("costID", cost.ID))

		openedAt := cost.SpentAt
		if openedAt.IsZero() {
			openedAt = cost.CreatedAt
		}
		costID := cost.ID
		rec, err := s.repo.Create(ctx, &domain.MaintenanceRecord{
			EquipmentID:    cost.EquipmentID,
			Channel:        cost.Channel,
			Cost:           cost.Amount,
			CostMovementID: &costID,
			Details:        cost.Description,
			OpenedBy:       cost.CreatedBy,
			OpenedAt:       openedAt,
		})
		if err != nil {
			return actions, err
		}
		actions = append(actions, RepairAction{
			Kind:          RepairRecordRecreated,
			EquipmentID:   cost.EquipmentID,
			MaintenanceID: rec.ID,
			CostID:        cost.ID,
		})
	}

	records, err := s.repo.ListOpen(ctx)
	if err != nil {
		return actions, err
	}
	for _, rec := range records {
		eq, err := s.equipment.GetByID(ctx, rec.EquipmentID)
		if err != nil {
			return actions, err
		}
		if eq == nil {
			zap.L().Error("consistency alarm: open maintenance record for unknown equipment",
				zap.Int("maintenanceID", rec.ID), zap.Int("equipmentID", rec.EquipmentID))
			continue
		}
		if eq.ActiveMaintenanceID != nil && *eq.ActiveMaintenanceID == rec.ID {
			continue
		}
		if eq.State != domain.StateAvailable {
			// Rented or out of service: relinking would invent a state change.
			pw := &domain.PartialWriteError{EquipmentID: eq.ID, MaintenanceID: rec.ID, Missing: "equipment state"}
			zap.L().Error("consistency alarm: open maintenance record not reflected on equipment",
				zap.Error(pw), zap.String("state", string(eq.State)))
			continue
		}

		recID := rec.ID
		ok, err := s.equipment.Transition(ctx, eq.ID, domain.StateAvailable, domain.StateInMaintenance, nil, &recID)
		if err != nil {
			return actions, err
		}
		if ok {
			actions = append(actions, RepairAction{
				Kind:          RepairEquipmentRelinked,
				EquipmentID:   eq.ID,
				MaintenanceID: rec.ID,
			})
		}
	}
	return actions, nil
}
