package service

import (
	"github.com/srosero/lavarenta/internal/handlers/equipment"
	"github.com/srosero/lavarenta/internal/handlers/funds"
	"github.com/srosero/lavarenta/internal/handlers/ledger"
	"github.com/srosero/lavarenta/internal/handlers/maintenance"

	"github.com/srosero/lavarenta/internal/pg"
	"github.com/srosero/lavarenta/internal/repo"
	"github.com/srosero/lavarenta/internal/service/equipmentservice"
	"github.com/srosero/lavarenta/internal/service/fundsservice"
	"github.com/srosero/lavarenta/internal/service/ledgerservice"
	"github.com/srosero/lavarenta/internal/service/maintenanceservice"
)

type Services struct {
	LedgerService      ledger.Service
	FundsService       funds.Service
	EquipmentService   equipment.Service
	MaintenanceService maintenance.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.MovementRepo)
	fundsService := fundsservice.New(ledgerService)
	equipmentService := equipmentservice.New(repo.EquipmentRepo, repo.OrderRepo)
	maintenanceService := maintenanceservice.New(repo.MaintenanceRepo, repo.MovementRepo, fundsService, repo.EquipmentRepo, txManager)

	return &Services{
		LedgerService:      ledgerService,
		FundsService:       fundsService,
		EquipmentService:   equipmentService,
		MaintenanceService: maintenanceService,
	}
}
