package equipmentservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/srosero/lavarenta/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, code string) (*domain.Equipment, error)
	GetByID(ctx context.Context, id int) (*domain.Equipment, error)
	FindByActiveMaintenance(ctx context.Context, maintenanceID int) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	ListByState(ctx context.Context, state domain.EquipmentState) ([]domain.Equipment, error)
	Transition(ctx context.Context, id int, from, to domain.EquipmentState, orderID, maintenanceID *int) (bool, error)
	Retire(ctx context.Context, id int) (bool, error)
	ReleaseOrphan(ctx context.Context, id, orderID int) (bool, error)
}

type Orders interface {
	GetByID(ctx context.Context, id int) (*domain.Order, error)
}

// Service owns the equipment lifecycle state machine. Every transition is a
// conditional update on the current state, so concurrent operators cannot
// corrupt the state/assignment/maintenance triple.
type Service struct {
	repo   Repo
	orders Orders
}

func New(repo Repo, orders Orders) *Service {
	return &Service{
		repo:   repo,
		orders: orders,
	}
}

func (s *Service) Create(ctx context.Context, code string) (*domain.Equipment, error) {
	eq, err := s.repo.Create(ctx, code)
	if err != nil {
		zap.L().Error("failed to create equipment", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return eq, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Equipment, error) {
	eq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	return eq, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByState(ctx context.Context, state domain.EquipmentState) ([]domain.Equipment, error) {
	return s.repo.ListByState(ctx, state)
}

// Deliver moves an available unit to rented against an active order.
func (s *Service) Deliver(ctx context.Context, equipmentID, orderID int) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status.IsTerminal() {
		zap.L().Warn("delivery against terminal order rejected",
			zap.Int("orderID", orderID), zap.String("status", string(order.Status)))
		return domain.ErrOrderNotActive
	}

	return s.transition(ctx, equipmentID, domain.StateAvailable, domain.StateRented, &orderID, nil)
}

// Return moves a rented unit back to available and clears the assignment.
func (s *Service) Return(ctx context.Context, equipmentID int) error {
	return s.transition(ctx, equipmentID, domain.StateRented, domain.StateAvailable, nil, nil)
}

func (s *Service) SetOutOfService(ctx context.Context, equipmentID int) error {
	return s.transition(ctx, equipmentID, domain.StateAvailable, domain.StateOutOfService, nil, nil)
}

func (s *Service) RestoreToService(ctx context.Context, equipmentID int) error {
	return s.transition(ctx, equipmentID, domain.StateOutOfService, domain.StateAvailable, nil, nil)
}

// Retire is terminal and allowed from any non-retired state.
func (s *Service) Retire(ctx context.Context, equipmentID int) error {
	ok, err := s.repo.Retire(ctx, equipmentID)
	if err != nil {
		return err
	}
	if !ok {
		return s.transitionError(ctx, equipmentID, domain.StateRetired)
	}
	return nil
}

func (s *Service) transition(ctx context.Context, id int, from, to domain.EquipmentState, orderID, maintenanceID *int) error {
	ok, err := s.repo.Transition(ctx, id, from, to, orderID, maintenanceID)
	if err != nil {
		return err
	}
	if !ok {
		return s.transitionError(ctx, id, to)
	}
	return nil
}

// transitionError reloads the unit to report the state the transition actually
// found, distinguishing a missing unit from a wrong-state one.
func (s *Service) transitionError(ctx context.Context, id int, to domain.EquipmentState) error {
	eq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if eq == nil {
		return domain.ErrNotFound
	}
	return &domain.InvalidStateTransitionError{EquipmentID: id, From: eq.State, To: to}
}
