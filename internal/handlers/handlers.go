package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/srosero/lavarenta/docs"
	equipmenthandlers "github.com/srosero/lavarenta/internal/handlers/equipment"
	fundshandlers "github.com/srosero/lavarenta/internal/handlers/funds"
	ledgerhandlers "github.com/srosero/lavarenta/internal/handlers/ledger"
	maintenancehandlers "github.com/srosero/lavarenta/internal/handlers/maintenance"
	"github.com/srosero/lavarenta/internal/service"
)

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetBalanceInRange(w http.ResponseWriter, r *http.Request)
	GetMovements(w http.ResponseWriter, r *http.Request)
}

type FundsHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
	Eligible(w http.ResponseWriter, r *http.Request)
}

type EquipmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Deliver(w http.ResponseWriter, r *http.Request)
	Return(w http.ResponseWriter, r *http.Request)
	SetOutOfService(w http.ResponseWriter, r *http.Request)
	RestoreToService(w http.ResponseWriter, r *http.Request)
	Retire(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type MaintenanceHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	ListOpen(w http.ResponseWriter, r *http.Request)
	Repair(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	LedgerHandler      LedgerHandler
	FundsHandler       FundsHandler
	EquipmentHandler   EquipmentHandler
	MaintenanceHandler MaintenanceHandler
}

func New(s *service.Services, reconciler equipmenthandlers.Reconciler) *Handlers {
	return &Handlers{
		LedgerHandler:      ledgerhandlers.New(s.LedgerService),
		FundsHandler:       fundshandlers.New(s.FundsService),
		EquipmentHandler:   equipmenthandlers.New(s.EquipmentService, reconciler),
		MaintenanceHandler: maintenancehandlers.New(s.MaintenanceService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/ledger/{channel}", func(r chi.Router) {
			r.Get("/balance", h.LedgerHandler.GetBalance)
			r.Get("/balance/range", h.LedgerHandler.GetBalanceInRange)
			r.Get("/movements", h.LedgerHandler.GetMovements)
		})
		r.Route("/funds", func(r chi.Router) {
			r.Get("/check", h.FundsHandler.Check)
			r.Get("/eligible", h.FundsHandler.Eligible)
		})
		r.Route("/equipment", func(r chi.Router) {
			r.Post("/", h.EquipmentHandler.Create)
			r.Get("/", h.EquipmentHandler.List)
			r.Post("/reconcile", h.EquipmentHandler.Reconcile)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.EquipmentHandler.Get)
				r.Post("/deliver", h.EquipmentHandler.Deliver)
				r.Post("/return", h.EquipmentHandler.Return)
				r.Post("/out-of-service", h.EquipmentHandler.SetOutOfService)
				r.Post("/restore", h.EquipmentHandler.RestoreToService)
				r.Post("/retire", h.EquipmentHandler.Retire)
			})
		})
		r.Route("/maintenance", func(r chi.Router) {
			r.Post("/", h.MaintenanceHandler.Open)
			r.Get("/open", h.MaintenanceHandler.ListOpen)
			r.Post("/repair", h.MaintenanceHandler.Repair)
			r.Post("/{id}/close", h.MaintenanceHandler.Close)
		})
	})

	return r
}
