package ledger

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/dto"
	"github.com/srosero/lavarenta/pkg/utils"
)

type Service interface {
	MovementsInRange(ctx context.Context, channel domain.Channel, start, end time.Time) ([]domain.Movement, error)
	BalanceAsOf(ctx context.Context, channel domain.Channel, cutoff time.Time) (decimal.Decimal, error)
	BalanceInRange(ctx context.Context, channel domain.Channel, start, end time.Time) (decimal.Decimal, error)
}

type LedgerHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get channel balance at a cutoff
//	@Description	Point-in-time balance of a payment channel; cutoff defaults to now.
//	@Tags			Ledger
//	@Produce		json
//	@Param			channel	path		string	true	"Payment channel"	Enums(cash, nequi, daviplata)
//	@Param			cutoff	query		string	false	"RFC3339 cutoff"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Balance at cutoff"
//	@Failure		400		{object}	utils.Response			"Unknown channel or bad cutoff"
//	@Failure		503		{object}	utils.Response			"Ledger store unavailable"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/ledger/{channel}/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	channel, err := domain.ParseChannel(chi.URLParam(r, "channel"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	cutoff := time.Now()
	if raw := r.URL.Query().Get("cutoff"); raw != "" {
		cutoff, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid cutoff, expected RFC3339")
			return
		}
	}

	balance, err := h.ledgerService.BalanceAsOf(r.Context(), channel, cutoff)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Channel: string(channel),
		Balance: balance,
		Cutoff:  cutoff,
	})
}

// GetBalanceInRange godoc
//
//	@Summary		Get channel balance over a range
//	@Description	Signed sum of the channel's movements with from <= effective time <= to.
//	@Tags			Ledger
//	@Produce		json
//	@Param			channel	path		string	true	"Payment channel"	Enums(cash, nequi, daviplata)
//	@Param			from	query		string	false	"RFC3339 range start"
//	@Param			to		query		string	false	"RFC3339 range end"
//	@Success		200		{object}	dto.BalanceRangeResponseDTO	"Balance over the range"
//	@Failure		400		{object}	utils.Response				"Unknown channel or bad range"
//	@Failure		503		{object}	utils.Response				"Ledger store unavailable"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/ledger/{channel}/balance/range [get]
func (h *LedgerHandler) GetBalanceInRange(w http.ResponseWriter, r *http.Request) {
	channel, err := domain.ParseChannel(chi.URLParam(r, "channel"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	start, end, ok := parseRange(w, r)
	if !ok {
		return
	}

	balance, err := h.ledgerService.BalanceInRange(r.Context(), channel, start, end)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceRangeResponseDTO{
		Channel: string(channel),
		Balance: balance,
		From:    start,
		To:      end,
	})
}

// GetMovements godoc
//
//	@Summary		Get channel movement history
//	@Description	Chronologically ordered union of all movement sources for a channel.
//	@Tags			Ledger
//	@Produce		json
//	@Param			channel	path		string	true	"Payment channel"	Enums(cash, nequi, daviplata)
//	@Param			from	query		string	false	"RFC3339 range start"
//	@Param			to		query		string	false	"RFC3339 range end"
//	@Success		200		{array}		dto.MovementDTO	"Movements in range"
//	@Failure		400		{object}	utils.Response	"Unknown channel or bad range"
//	@Failure		503		{object}	utils.Response	"Ledger store unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ledger/{channel}/movements [get]
func (h *LedgerHandler) GetMovements(w http.ResponseWriter, r *http.Request) {
	channel, err := domain.ParseChannel(chi.URLParam(r, "channel"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	start, end, ok := parseRange(w, r)
	if !ok {
		return
	}

	movements, err := h.ledgerService.MovementsInRange(r.Context(), channel, start, end)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	response := make([]dto.MovementDTO, len(movements))
	for i, m := range movements {
		response[i] = dto.MovementDTO{
			ID:          m.ID,
			Channel:     string(m.Channel),
			Direction:   string(m.Direction),
			Amount:      m.Amount,
			Source:      string(m.Source),
			Concept:     m.Concept,
			Description: m.Description,
			EffectiveAt: m.EffectiveAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func parseRange(w http.ResponseWriter, r *http.Request) (start, end time.Time, ok bool) {
	var err error
	end = time.Now()

	if raw := r.URL.Query().Get("from"); raw != "" {
		start, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid from, expected RFC3339")
			return start, end, false
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		end, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid to, expected RFC3339")
			return start, end, false
		}
	}
	return start, end, true
}

func respondStoreError(w http.ResponseWriter, err error) {
	if domain.IsTransient(err) {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "ledger store unavailable, retry later")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
