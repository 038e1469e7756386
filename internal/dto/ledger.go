package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementDTO struct {
	ID          string          `json:"id" example:"expense:42"`
	Channel     string          `json:"channel" example:"cash"`
	Direction   string          `json:"direction" example:"debit"`
	Amount      decimal.Decimal `json:"amount" example:"35000"`
	Source      string          `json:"source" example:"expense"`
	Concept     string          `json:"concept" example:"detergente"`
	Description string          `json:"description,omitempty"`
	EffectiveAt time.Time       `json:"effective_at" example:"2024-06-01T10:00:00-05:00"`
}

type BalanceResponseDTO struct {
	Channel string          `json:"channel" example:"cash"`
	Balance decimal.Decimal `json:"balance" example:"270000"`
	Cutoff  time.Time       `json:"cutoff" example:"2024-06-01T10:00:00-05:00"`
}

type BalanceRangeResponseDTO struct {
	Channel string          `json:"channel" example:"nequi"`
	Balance decimal.Decimal `json:"balance" example:"-80000"`
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
}
