package dto

import "github.com/shopspring/decimal"

type FundsCheckResponseDTO struct {
	Channel    string          `json:"channel" example:"cash"`
	Sufficient bool            `json:"sufficient" example:"true"`
	Available  decimal.Decimal `json:"available" example:"350000"`
}

type EligibleChannelsResponseDTO struct {
	Channels []string `json:"channels" example:"cash,nequi"`
}
