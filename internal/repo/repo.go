package repo

import (
	"github.com/srosero/lavarenta/internal/pg"
	equipmentrepo "github.com/srosero/lavarenta/internal/repo/equipment-repo"
	maintenancerepo "github.com/srosero/lavarenta/internal/repo/maintenance-repo"
	movementrepo "github.com/srosero/lavarenta/internal/repo/movement-repo"
	orderrepo "github.com/srosero/lavarenta/internal/repo/order-repo"
	"github.com/srosero/lavarenta/internal/service/equipmentservice"
	"github.com/srosero/lavarenta/internal/service/ledgerservice"
	"github.com/srosero/lavarenta/internal/service/maintenanceservice"
)

// MovementRepo serves both the read-only ledger aggregation and the single
// debit write of the maintenance lifecycle.
type MovementRepo interface {
	ledgerservice.MovementSource
	maintenanceservice.MovementWriter
}

type Repositories struct {
	MovementRepo    MovementRepo
	EquipmentRepo   equipmentservice.Repo
	OrderRepo       equipmentservice.Orders
	MaintenanceRepo maintenanceservice.Repo
}

func New(conn pg.Database) *Repositories {
	movementRepo := movementrepo.New(conn)
	equipmentRepo := equipmentrepo.New(conn)
	orderRepo := orderrepo.New(conn)
	maintenanceRepo := maintenancerepo.New(conn)

	return &Repositories{
		MovementRepo:    movementRepo,
		EquipmentRepo:   equipmentRepo,
		OrderRepo:       orderRepo,
		MaintenanceRepo: maintenanceRepo,
	}
}
