package funds

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/srosero/lavarenta/internal/domain"
	"github.com/srosero/lavarenta/internal/dto"
	"github.com/srosero/lavarenta/pkg/utils"
)

type Service interface {
	IsSufficient(ctx context.Context, channel domain.Channel, amount decimal.Decimal) (bool, decimal.Decimal, error)
	EligibleChannels(ctx context.Context, amount decimal.Decimal) ([]domain.Channel, error)
}

type FundsHandler struct {
	fundsService Service
}

func New(fundsService Service) *FundsHandler {
	return &FundsHandler{
		fundsService: fundsService,
	}
}

// Check godoc
//
//	@Summary		Check whether a channel covers an amount
//	@Description	Advisory funds check against the channel's current balance.
//	@Tags			Funds
//	@Produce		json
//	@Param			channel	query		string	true	"Payment channel"	Enums(cash, nequi, daviplata)
//	@Param			amount	query		string	true	"Proposed debit amount"
//	@Success		200		{object}	dto.FundsCheckResponseDTO	"Verdict and available balance"
//	@Failure		400		{object}	utils.Response				"Unknown channel or bad amount"
//	@Failure		503		{object}	utils.Response				"Ledger store unavailable"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/funds/check [get]
func (h *FundsHandler) Check(w http.ResponseWriter, r *http.Request) {
	channel, err := domain.ParseChannel(r.URL.Query().Get("channel"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, ok := parseAmount(w, r)
	if !ok {
		return
	}

	sufficient, available, err := h.fundsService.IsSufficient(r.Context(), channel, amount)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FundsCheckResponseDTO{
		Channel:    string(channel),
		Sufficient: sufficient,
		Available:  available,
	})
}

// Eligible godoc
//
//	@Summary		List channels that can cover an amount
//	@Description	Every channel whose current balance covers the amount. An empty list means the action must be blocked.
//	@Tags			Funds
//	@Produce		json
//	@Param			amount	query		string	true	"Proposed debit amount"
//	@Success		200		{object}	dto.EligibleChannelsResponseDTO	"Eligible channels"
//	@Failure		400		{object}	utils.Response					"Bad amount"
//	@Failure		503		{object}	utils.Response					"Ledger store unavailable"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/funds/eligible [get]
func (h *FundsHandler) Eligible(w http.ResponseWriter, r *http.Request) {
	amount, ok := parseAmount(w, r)
	if !ok {
		return
	}

	channels, err := h.fundsService.EligibleChannels(r.Context(), amount)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	names := make([]string, len(channels))
	for i, c := range channels {
		names[i] = string(c)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EligibleChannelsResponseDTO{Channels: names})
}

func parseAmount(w http.ResponseWriter, r *http.Request) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return decimal.Zero, false
	}
	if amount.IsNegative() {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must not be negative")
		return decimal.Zero, false
	}
	return amount, true
}

func respondStoreError(w http.ResponseWriter, err error) {
	if domain.IsTransient(err) {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "ledger store unavailable, retry later")
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
