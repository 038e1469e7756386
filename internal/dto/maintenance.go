package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OpenMaintenanceRequestDTO struct {
	EquipmentID int             `json:"equipment_id" example:"1"`
	Channel     string          `json:"channel" example:"cash"`
	Cost        decimal.Decimal `json:"cost" example:"120000"`
	Details     string          `json:"details" example:"cambio de rodamientos"`
	OpenedBy    string          `json:"opened_by" example:"mrojas"`
}

type MaintenanceRecordDTO struct {
	ID          int             `json:"id" example:"3"`
	EquipmentID int             `json:"equipment_id" example:"1"`
	Channel     string          `json:"channel" example:"cash"`
	Cost        decimal.Decimal `json:"cost" example:"120000"`
	Details     string          `json:"details,omitempty"`
	OpenedBy    string          `json:"opened_by,omitempty"`
	OpenedAt    time.Time       `json:"opened_at"`
	ClosedAt    *time.Time      `json:"closed_at,omitempty"`
}
