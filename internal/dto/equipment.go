package dto

import "time"

type EquipmentDTO struct {
	ID                  int       `json:"id" example:"1"`
	Code                string    `json:"code" example:"LAV-017"`
	State               string    `json:"state" example:"available"`
	AssignmentOrderID   *int      `json:"assignment_order_id,omitempty"`
	ActiveMaintenanceID *int      `json:"active_maintenance_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type CreateEquipmentRequestDTO struct {
	Code string `json:"code" example:"LAV-017"`
}

type DeliverRequestDTO struct {
	OrderID int `json:"order_id" example:"7"`
}

type ReconcileResponseDTO struct {
	Corrected []int `json:"corrected"`
}
