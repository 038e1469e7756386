package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/srosero/lavarenta/internal/config"
	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/service/equipmentservice"
)

func NewMock(t *testing.T) (*Service, *equipmentservice.MockRepo, *equipmentservice.MockOrders) {
	ctrl := gomock.NewController(t)
	equipmentRepo := equipmentservice.NewMockRepo(ctrl)
	orderRepo := equipmentservice.NewMockOrders(ctrl)
	cfg := &config.Config{ReconcileInterval: time.Minute}
	service := New(cfg, equipmentRepo, orderRepo)
	defer ctrl.Finish()
	return service, equipmentRepo, orderRepo
}

func rented(id, orderID int) domain.Equipment {
	return domain.Equipment{ID: id, State: domain.StateRented, AssignmentOrderID: &orderID}
}

func TestReconcileReleasesOrphans(t *testing.T) {
	service, equipmentRepo, orderRepo := NewMock(t)

	equipmentRepo.EXPECT().ListByState(gomock.Any(), domain.StateRented).
		Return([]domain.Equipment{rented(2, 7), rented(3, 8)}, nil)
	// Order 7 was cancelled, order 8 is still out with a customer.
	orderRepo.EXPECT().GetByID(gomock.Any(), 7).Return(&domain.Order{ID: 7, Status: domain.OrderCancelled}, nil)
	orderRepo.EXPECT().GetByID(gomock.Any(), 8).Return(&domain.Order{ID: 8, Status: domain.OrderDelivered}, nil)
	equipmentRepo.EXPECT().ReleaseOrphan(gomock.Any(), 2, 7).Return(true, nil)

	corrected, err := service.Reconcile(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{2}, corrected)
}

func TestReconcileIdempotent(t *testing.T) {
	service, equipmentRepo, orderRepo := NewMock(t)

	equipmentRepo.EXPECT().ListByState(gomock.Any(), domain.StateRented).
		Return([]domain.Equipment{rented(2, 7)}, nil)
	orderRepo.EXPECT().GetByID(gomock.Any(), 7).Return(nil, nil)
	equipmentRepo.EXPECT().ReleaseOrphan(gomock.Any(), 2, 7).Return(true, nil)

	corrected, err := service.Reconcile(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{2}, corrected)

	// Second sweep over the corrected store finds nothing to do.
	equipmentRepo.EXPECT().ListByState(gomock.Any(), domain.StateRented).Return(nil, nil)

	corrected, err = service.Reconcile(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, corrected)
}

func TestReconcileLeavesActiveRentalsAlone(t *testing.T) {
	service, equipmentRepo, orderRepo := NewMock(t)

	equipmentRepo.EXPECT().ListByState(gomock.Any(), domain.StateRented).
		Return([]domain.Equipment{rented(2, 7)}, nil)
	orderRepo.EXPECT().GetByID(gomock.Any(), 7).Return(&domain.Order{ID: 7, Status: domain.OrderPending}, nil)

	corrected, err := service.Reconcile(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, corrected)
}

func TestReconcileRentedWithoutAssignment(t *testing.T) {
	service, equipmentRepo, _ := NewMock(t)

	equipmentRepo.EXPECT().ListByState(gomock.Any(), domain.StateRented).
		Return([]domain.Equipment{{ID: 4, State: domain.StateRented}}, nil)
	equipmentRepo.EXPECT().Transition(gomock.Any(), 4, domain.StateRented, domain.StateAvailable, nil, nil).
		Return(true, nil)

	corrected, err := service.Reconcile(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []int{4}, corrected)
}

func TestReconcileLostRelease(t *testing.T) {
	service, equipmentRepo, orderRepo := NewMock(t)

	// A concurrent delivery reassigned the unit between the list and the release.
	equipmentRepo.EXPECT().ListByState(gomock.Any(), domain.StateRented).
		Return([]domain.Equipment{rented(2, 7)}, nil)
	orderRepo.EXPECT().GetByID(gomock.Any(), 7).Return(&domain.Order{ID: 7, Status: domain.OrderCompleted}, nil)
	equipmentRepo.EXPECT().ReleaseOrphan(gomock.Any(), 2, 7).Return(false, nil)

	corrected, err := service.Reconcile(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, corrected)
}

func TestReconcileErrors(t *testing.T) {
	service, equipmentRepo, orderRepo := NewMock(t)

	t.Run("list failure aborts the sweep", func(t *testing.T) {
		equipmentRepo.EXPECT().ListByState(gomock.Any(), domain.StateRented).Return(nil, errors.New("db error"))

		corrected, err := service.Reconcile(context.Background())
		assert.Error(t, err)
		assert.Nil(t, corrected)
	})

	t.Run("order lookup failure surfaces", func(t *testing.T) {
		equipmentRepo.EXPECT().ListByState(gomock.Any(), domain.StateRented).
			Return([]domain.Equipment{rented(2, 7)}, nil)
		orderRepo.EXPECT().GetByID(gomock.Any(), 7).Return(nil, errors.New("db error"))

		_, err := service.Reconcile(context.Background())
		assert.Error(t, err)
	})
}

func TestWorkerPool(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	done := make(chan struct{})
	err := pool.AddTask(context.Background(), func() error {
		close(done)
		return nil
	})
	assert.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	block := make(chan struct{})
	// Saturate the queue so the next AddTask has to wait on the context.
	for i := 0; i < 4; i++ {
		pool.AddTask(context.Background(), func() error {
			<-block
			return nil
		})
	}
	err = pool.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	close(block)
}

func TestWorkerPoolCloseDrainsQueue(t *testing.T) {
	pool := NewWorkerPool(1)

	results := make(chan int, 3)
	for i := 0; i < 3; i++ {
		i := i
		assert.NoError(t, pool.AddTask(context.Background(), func() error {
			results <- i
			return nil
		}))
	}
	pool.Close()

	// Everything accepted before Close still runs.
	for i := 0; i < 3; i++ {
		select {
		case <-results:
		case <-time.After(time.Second):
			t.Fatalf("task %d dropped at close", i)
		}
	}
}
