package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/srosero/lavarenta/internal/pg"
	"github.com/srosero/lavarenta/internal/repo"
	"github.com/srosero/lavarenta/internal/service/equipmentservice"
	"github.com/srosero/lavarenta/internal/service/ledgerservice"
	"github.com/srosero/lavarenta/internal/service/maintenanceservice"
)

// movementRepoMock satisfies repo.MovementRepo by combining the source and
// writer mocks.
type movementRepoMock struct {
	*ledgerservice.MockMovementSource
	*maintenanceservice.MockMovementWriter
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := &repo.Repositories{
		MovementRepo: movementRepoMock{
			MockMovementSource: ledgerservice.NewMockMovementSource(ctrl),
			MockMovementWriter: maintenanceservice.NewMockMovementWriter(ctrl),
		},
		EquipmentRepo:   equipmentservice.NewMockRepo(ctrl),
		OrderRepo:       equipmentservice.NewMockOrders(ctrl),
		MaintenanceRepo: maintenanceservice.NewMockRepo(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)

	services := New(repos, txManager)

	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.FundsService)
	assert.NotNil(t, services.EquipmentService)
	assert.NotNil(t, services.MaintenanceService)
}
