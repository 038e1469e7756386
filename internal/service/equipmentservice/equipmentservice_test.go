package equipmentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/srosero/lavarenta/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockOrders) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	orders := NewMockOrders(ctrl)
	service := New(repo, orders)
	defer ctrl.Finish()
	return service, repo, orders
}

func TestGet(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Equipment
		expectedError error
	}{
		{
			name: "unit found",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Equipment{ID: 1, Code: "LAV-001", State: domain.StateAvailable}, nil)
			},
			expected: &domain.Equipment{ID: 1, Code: "LAV-001", State: domain.StateAvailable},
		},
		{
			name: "unit missing",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "repo error",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	ids := []int{1, 2, 3}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			eq, err := service.Get(context.Background(), ids[i])
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, eq)
			}
		})
	}
}

func TestDeliver(t *testing.T) {
	service, repo, orders := NewMock(t)
	orderID := 7

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError string
	}{
		{
			name: "available unit delivered",
			prepareMock: func() {
				orders.EXPECT().GetByID(gomock.Any(), orderID).Return(&domain.Order{ID: orderID, Status: domain.OrderPending}, nil)
				repo.EXPECT().Transition(gomock.Any(), 1, domain.StateAvailable, domain.StateRented, &orderID, nil).Return(true, nil)
			},
		},
		{
			name: "order missing",
			prepareMock: func() {
				orders.EXPECT().GetByID(gomock.Any(), orderID).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound.Error(),
		},
		{
			// An order that exists but is finished is a conflict, not a missing order.
			name: "order already terminal",
			prepareMock: func() {
				orders.EXPECT().GetByID(gomock.Any(), orderID).Return(&domain.Order{ID: orderID, Status: domain.OrderCancelled}, nil)
			},
			expectedError: domain.ErrOrderNotActive.Error(),
		},
		{
			name: "order completed",
			prepareMock: func() {
				orders.EXPECT().GetByID(gomock.Any(), orderID).Return(&domain.Order{ID: orderID, Status: domain.OrderCompleted}, nil)
			},
			expectedError: domain.ErrOrderNotActive.Error(),
		},
		{
			name: "unit not available",
			prepareMock: func() {
				orders.EXPECT().GetByID(gomock.Any(), orderID).Return(&domain.Order{ID: orderID, Status: domain.OrderPending}, nil)
				repo.EXPECT().Transition(gomock.Any(), 1, domain.StateAvailable, domain.StateRented, &orderID, nil).Return(false, nil)
				repo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Equipment{ID: 1, State: domain.StateInMaintenance}, nil)
			},
			expectedError: "equipment 1: invalid state transition in_maintenance -> rented",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Deliver(context.Background(), 1, orderID)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReturn(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("rented unit returned", func(t *testing.T) {
		repo.EXPECT().Transition(gomock.Any(), 1, domain.StateRented, domain.StateAvailable, nil, nil).Return(true, nil)

		assert.NoError(t, service.Return(context.Background(), 1))
	})

	t.Run("unit not rented", func(t *testing.T) {
		repo.EXPECT().Transition(gomock.Any(), 1, domain.StateRented, domain.StateAvailable, nil, nil).Return(false, nil)
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Equipment{ID: 1, State: domain.StateAvailable}, nil)

		err := service.Return(context.Background(), 1)
		var invalid *domain.InvalidStateTransitionError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("unit vanished", func(t *testing.T) {
		repo.EXPECT().Transition(gomock.Any(), 1, domain.StateRented, domain.StateAvailable, nil, nil).Return(false, nil)
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)

		assert.ErrorIs(t, service.Return(context.Background(), 1), domain.ErrNotFound)
	})
}

func TestOutOfServiceCycle(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().Transition(gomock.Any(), 5, domain.StateAvailable, domain.StateOutOfService, nil, nil).Return(true, nil)
	assert.NoError(t, service.SetOutOfService(context.Background(), 5))

	repo.EXPECT().Transition(gomock.Any(), 5, domain.StateOutOfService, domain.StateAvailable, nil, nil).Return(true, nil)
	assert.NoError(t, service.RestoreToService(context.Background(), 5))
}

func TestRetire(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("retire from any live state", func(t *testing.T) {
		repo.EXPECT().Retire(gomock.Any(), 9).Return(true, nil)

		assert.NoError(t, service.Retire(context.Background(), 9))
	})

	t.Run("already retired", func(t *testing.T) {
		repo.EXPECT().Retire(gomock.Any(), 9).Return(false, nil)
		repo.EXPECT().GetByID(gomock.Any(), 9).Return(&domain.Equipment{ID: 9, State: domain.StateRetired}, nil)

		err := service.Retire(context.Background(), 9)
		var invalid *domain.InvalidStateTransitionError
		assert.ErrorAs(t, err, &invalid)
		assert.Equal(t, domain.StateRetired, invalid.From)
	})
}

func TestCanTransition(t *testing.T) {
	assert.True(t, domain.CanTransition(domain.StateAvailable, domain.StateRented))
	assert.True(t, domain.CanTransition(domain.StateInMaintenance, domain.StateAvailable))
	assert.False(t, domain.CanTransition(domain.StateRented, domain.StateInMaintenance))
	assert.False(t, domain.CanTransition(domain.StateRetired, domain.StateAvailable))
	assert.False(t, domain.CanTransition(domain.StateOutOfService, domain.StateRented))
}
