package equipment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/dto"
	"github.com/srosero/lavarenta/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, code string) (*domain.Equipment, error)
	Get(ctx context.Context, id int) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	ListByState(ctx context.Context, state domain.EquipmentState) ([]domain.Equipment, error)
	Deliver(ctx context.Context, equipmentID, orderID int) error
	Return(ctx context.Context, equipmentID int) error
	SetOutOfService(ctx context.Context, equipmentID int) error
	RestoreToService(ctx context.Context, equipmentID int) error
	Retire(ctx context.Context, equipmentID int) error
}

type Reconciler interface {
	Reconcile(ctx context.Context) ([]int, error)
}

type EquipmentHandler struct {
	equipmentService Service
	reconciler       Reconciler
}

func New(equipmentService Service, reconciler Reconciler) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentService: equipmentService,
		reconciler:       reconciler,
	}
}

// Create godoc
//
//	@Summary		Register a new equipment unit
//	@Tags			Equipment
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateEquipmentRequestDTO	true	"Unit code"
//	@Success		201		{object}	dto.EquipmentDTO				"Created unit"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/equipment [post]
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEquipmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eq, err := h.equipmentService.Create(r.Context(), req.Code)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(eq))
}

// List godoc
//
//	@Summary		List equipment
//	@Tags			Equipment
//	@Produce		json
//	@Param			state	query		string	false	"Filter by state"	Enums(available, rented, in_maintenance, out_of_service, retired)
//	@Success		200		{array}		dto.EquipmentDTO	"Equipment units"
//	@Failure		400		{object}	utils.Response		"Unknown state"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/equipment [get]
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		items []domain.Equipment
		err   error
	)

	if raw := r.URL.Query().Get("state"); raw != "" {
		state := domain.EquipmentState(raw)
		switch state {
		case domain.StateAvailable, domain.StateRented, domain.StateInMaintenance, domain.StateOutOfService, domain.StateRetired:
		default:
			utils.RespondWithError(w, http.StatusBadRequest, "unknown state")
			return
		}
		items, err = h.equipmentService.ListByState(r.Context(), state)
	} else {
		items, err = h.equipmentService.List(r.Context())
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.EquipmentDTO, len(items))
	for i := range items {
		response[i] = toDTO(&items[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get one equipment unit
//	@Tags			Equipment
//	@Produce		json
//	@Param			id	path		int					true	"Equipment id"
//	@Success		200	{object}	dto.EquipmentDTO	"Unit"
//	@Failure		404	{object}	utils.Response		"Unit not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/equipment/{id} [get]
func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	eq, err := h.equipmentService.Get(r.Context(), id)
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(eq))
}

// Deliver godoc
//
//	@Summary		Mark a unit as delivered for an order
//	@Description	Moves an available unit to rented and records the order assignment.
//	@Tags			Equipment
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Equipment id"
//	@Param			request	body		dto.DeliverRequestDTO	true	"Order taking the unit"
//	@Success		200		{object}	utils.Response			"Unit rented"
//	@Failure		404		{object}	utils.Response			"Unit or order not found"
//	@Failure		409		{object}	utils.Response			"Unit not available or order no longer active"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/equipment/{id}/deliver [post]
func (h *EquipmentHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req dto.DeliverRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.equipmentService.Deliver(r.Context(), id, req.OrderID); err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "equipment rented"})
}

// Return godoc
//
//	@Summary		Mark a rented unit as picked up
//	@Tags			Equipment
//	@Produce		json
//	@Param			id	path		int				true	"Equipment id"
//	@Success		200	{object}	utils.Response	"Unit available again"
//	@Failure		404	{object}	utils.Response	"Unit not found"
//	@Failure		409	{object}	utils.Response	"Unit not rented"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/equipment/{id}/return [post]
func (h *EquipmentHandler) Return(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, r, h.equipmentService.Return, "equipment available")
}

// SetOutOfService godoc
//
//	@Summary		Take an available unit out of service
//	@Tags			Equipment
//	@Produce		json
//	@Param			id	path		int				true	"Equipment id"
//	@Success		200	{object}	utils.Response	"Unit out of service"
//	@Failure		404	{object}	utils.Response	"Unit not found"
//	@Failure		409	{object}	utils.Response	"Unit not available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/equipment/{id}/out-of-service [post]
func (h *EquipmentHandler) SetOutOfService(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, r, h.equipmentService.SetOutOfService, "equipment out of service")
}

// RestoreToService godoc
//
//	@Summary		Bring an out-of-service unit back
//	@Tags			Equipment
//	@Produce		json
//	@Param			id	path		int				true	"Equipment id"
//	@Success		200	{object}	utils.Response	"Unit available again"
//	@Failure		404	{object}	utils.Response	"Unit not found"
//	@Failure		409	{object}	utils.Response	"Unit not out of service"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/equipment/{id}/restore [post]
func (h *EquipmentHandler) RestoreToService(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, r, h.equipmentService.RestoreToService, "equipment available")
}

// Retire godoc
//
//	@Summary		Retire a unit permanently
//	@Tags			Equipment
//	@Produce		json
//	@Param			id	path		int				true	"Equipment id"
//	@Success		200	{object}	utils.Response	"Unit retired"
//	@Failure		404	{object}	utils.Response	"Unit not found"
//	@Failure		409	{object}	utils.Response	"Unit already retired"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/equipment/{id}/retire [post]
func (h *EquipmentHandler) Retire(w http.ResponseWriter, r *http.Request) {
	h.simpleTransition(w, r, h.equipmentService.Retire, "equipment retired")
}

// Reconcile godoc
//
//	@Summary		Run the orphan reconciliation sweep
//	@Description	Reverts rented units whose assignment order is missing or terminal. Safe to run repeatedly.
//	@Tags			Equipment
//	@Produce		json
//	@Success		200	{object}	dto.ReconcileResponseDTO	"Corrected equipment ids"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/equipment/reconcile [post]
func (h *EquipmentHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	corrected, err := h.reconciler.Reconcile(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if corrected == nil {
		corrected = []int{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReconcileResponseDTO{Corrected: corrected})
}

func (h *EquipmentHandler) simpleTransition(w http.ResponseWriter, r *http.Request, op func(context.Context, int) error, message string) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := op(r.Context(), id); err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid equipment id")
		return 0, false
	}
	return id, true
}

func respondTransitionError(w http.ResponseWriter, err error) {
	var invalidState *domain.InvalidStateTransitionError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrOrderNotActive):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.As(err, &invalidState):
		utils.RespondWithError(w, http.StatusConflict, invalidState.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toDTO(eq *domain.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:                  eq.ID,
		Code:                eq.Code,
		State:               string(eq.State),
		AssignmentOrderID:   eq.AssignmentOrderID,
		ActiveMaintenanceID: eq.ActiveMaintenanceID,
		CreatedAt:           eq.CreatedAt,
		UpdatedAt:           eq.UpdatedAt,
	}
}
