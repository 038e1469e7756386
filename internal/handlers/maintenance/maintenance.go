package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/dto"
	maintenanceservice "github.com/srosero/lavarenta/internal/service/maintenanceservice"
	"github.com/srosero/lavarenta/pkg/utils"
)

type Service interface {
	Open(ctx context.Context, p maintenanceservice.OpenParams) (*domain.MaintenanceRecord, error)
	Close(ctx context.Context, maintenanceID int) error
	ListOpen(ctx context.Context) ([]domain.MaintenanceRecord, error)
	Repair(ctx context.Context) ([]maintenanceservice.RepairAction, error)
}

type MaintenanceHandler struct {
	maintenanceService Service
}

func New(maintenanceService Service) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// Open godoc
//
//	@Summary		Send a unit to maintenance
//	@Description	Debits the cost against the chosen channel and moves the unit to in_maintenance. Insufficient funds and a unit in the wrong state are distinct rejections.
//	@Tags			Maintenance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OpenMaintenanceRequestDTO	true	"Maintenance to open"
//	@Success		201		{object}	dto.MaintenanceRecordDTO		"Opened record"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		402		{object}	utils.Response					"Insufficient funds on the channel"
//	@Failure		404		{object}	utils.Response					"Equipment not found"
//	@Failure		409		{object}	utils.Response					"Equipment not available"
//	@Failure		422		{object}	utils.Response					"Unknown channel or negative cost"
//	@Failure		503		{object}	utils.Response					"Ledger store unavailable"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/maintenance [post]
func (h *MaintenanceHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenMaintenanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	channel, err := domain.ParseChannel(req.Channel)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if req.Cost.IsNegative() {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "cost must not be negative")
		return
	}

	rec, err := h.maintenanceService.Open(r.Context(), maintenanceservice.OpenParams{
		EquipmentID: req.EquipmentID,
		Channel:     channel,
		Cost:        req.Cost,
		Details:     req.Details,
		OpenedBy:    req.OpenedBy,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(rec))
}

// Close godoc
//
//	@Summary		Close an open maintenance
//	@Description	Stamps the record closed and returns the unit to service. The cost was debited at open time; closing never re-debits.
//	@Tags			Maintenance
//	@Produce		json
//	@Param			id	path		int				true	"Maintenance record id"
//	@Success		200	{object}	utils.Response	"Maintenance closed"
//	@Failure		404	{object}	utils.Response	"Record not found"
//	@Failure		409	{object}	utils.Response	"Record already closed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/maintenance/{id}/close [post]
func (h *MaintenanceHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid maintenance id")
		return
	}

	if err := h.maintenanceService.Close(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "maintenance closed"})
}

// ListOpen godoc
//
//	@Summary		List open maintenance records
//	@Tags			Maintenance
//	@Produce		json
//	@Success		200	{array}		dto.MaintenanceRecordDTO	"Open records"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/maintenance/open [get]
func (h *MaintenanceHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	records, err := h.maintenanceService.ListOpen(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.MaintenanceRecordDTO, len(records))
	for i := range records {
		response[i] = toDTO(&records[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Repair godoc
//
//	@Summary		Repair interrupted maintenance writes
//	@Description	Re-derives the missing piece of any maintenance open that was interrupted mid-write.
//	@Tags			Maintenance
//	@Produce		json
//	@Success		200	{array}		maintenanceservice.RepairAction	"Corrections made"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/maintenance/repair [post]
func (h *MaintenanceHandler) Repair(w http.ResponseWriter, r *http.Request) {
	actions, err := h.maintenanceService.Repair(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if actions == nil {
		actions = []maintenanceservice.RepairAction{}
	}
	utils.RespondWithJSON(w, http.StatusOK, actions)
}

func respondError(w http.ResponseWriter, err error) {
	var (
		insufficient *domain.InsufficientFundsError
		invalidState *domain.InvalidStateTransitionError
	)
	switch {
	case errors.As(err, &insufficient):
		utils.RespondWithError(w, http.StatusPaymentRequired, insufficient.Error())
	case errors.As(err, &invalidState):
		utils.RespondWithError(w, http.StatusConflict, invalidState.Error())
	case errors.Is(err, domain.ErrAlreadyClosed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "not found")
	case domain.IsTransient(err):
		utils.RespondWithError(w, http.StatusServiceUnavailable, "ledger store unavailable, retry later")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(rec *domain.MaintenanceRecord) dto.MaintenanceRecordDTO {
	return dto.MaintenanceRecordDTO{
		ID:          rec.ID,
		EquipmentID: rec.EquipmentID,
		Channel:     string(rec.Channel),
		Cost:        rec.Cost,
		Details:     rec.Details,
		OpenedBy:    rec.OpenedBy,
		OpenedAt:    rec.OpenedAt,
		ClosedAt:    rec.ClosedAt,
	}
}
