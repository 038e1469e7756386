package reconciler

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/srosero/lavarenta/internal/config"
	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/service/equipmentservice"
)

// Service is the orphan reconciler: a periodic sweep that reverts equipment
// stuck in rented with no active order behind it. It compensates for the lack
// of one transaction spanning order status and equipment state. The sweep
// never emits movements, so concurrent runs converge without double-counting.
type Service struct {
	equipmentRepo equipmentservice.Repo
	orderRepo     equipmentservice.Orders
	workerPool    WorkerPoolI
	interval      time.Duration
	inFlight      sync.Map
}

func New(cfg *config.Config, equipmentRepo equipmentservice.Repo, orderRepo equipmentservice.Orders) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		orderRepo:     orderRepo,
		workerPool:    NewWorkerPool(10),
		interval:      cfg.ReconcileInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Orphan reconciler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			corrected, err := s.Reconcile(ctx)
			if err != nil {
				zap.L().Error("Reconciliation sweep failed", zap.Error(err))
				continue
			}
			if len(corrected) > 0 {
				zap.L().Warn("Reconciliation corrected orphaned equipment", zap.Ints("equipmentIDs", corrected))
			}
		}
	}
}

// Reconcile reverts every rented unit whose assignment order is missing or
// terminal. Idempotent: a second run over an unchanged store corrects nothing.
func (s *Service) Reconcile(ctx context.Context) ([]int, error) {
	rented, err := s.equipmentRepo.ListByState(ctx, domain.StateRented)
	if err != nil {
		zap.L().Error("Failed to list rented equipment", zap.Error(err))
		return nil, err
	}

	var (
		mu        sync.Mutex
		corrected []int
	)

	var g errgroup.Group
	for _, eq := range rented {
		eq := eq

		if _, loaded := s.inFlight.LoadOrStore(eq.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			done := make(chan error, 1)
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(eq.ID)
				released, err := s.reconcileUnit(ctx, eq)
				if err == nil && released {
					mu.Lock()
					corrected = append(corrected, eq.ID)
					mu.Unlock()
				}
				done <- err
				return err
			})
			if err != nil {
				s.inFlight.Delete(eq.ID)
				return err
			}
			return <-done
		})
	}

	if err := g.Wait(); err != nil {
		return corrected, err
	}

	sort.Ints(corrected)
	return corrected, nil
}

func (s *Service) reconcileUnit(ctx context.Context, eq domain.Equipment) (bool, error) {
	if eq.AssignmentOrderID == nil {
		// Rented with no assignment at all; no order to race against, so the
		// conditional release cannot use an order id. Handled as its own case.
		zap.L().Warn("Rented equipment without assignment", zap.Int("equipmentID", eq.ID))
		return s.equipmentRepo.Transition(ctx, eq.ID, domain.StateRented, domain.StateAvailable, nil, nil)
	}

	order, err := s.orderRepo.GetByID(ctx, *eq.AssignmentOrderID)
	if err != nil {
		return false, err
	}
	if order != nil && !order.Status.IsTerminal() {
		return false, nil
	}

	released, err := s.equipmentRepo.ReleaseOrphan(ctx, eq.ID, *eq.AssignmentOrderID)
	if err != nil {
		return false, err
	}
	if released {
		zap.L().Info("Released orphaned equipment",
			zap.Int("equipmentID", eq.ID), zap.Int("orderID", *eq.AssignmentOrderID))
	}
	return released, nil
}
