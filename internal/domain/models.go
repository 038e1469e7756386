package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Channel is a payment medium treated as an independent sub-ledger.
type Channel string

const (
	ChannelCash      Channel = "cash"
	ChannelNequi     Channel = "nequi"
	ChannelDaviplata Channel = "daviplata"
)

func Channels() []Channel {
	return []Channel{ChannelCash, ChannelNequi, ChannelDaviplata}
}

func ParseChannel(s string) (Channel, error) {
	switch Channel(s) {
	case ChannelCash, ChannelNequi, ChannelDaviplata:
		return Channel(s), nil
	}
	return "", fmt.Errorf("unknown channel: %q", s)
}

type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// SourceCategory identifies which store a movement originated from.
// Informational only, never used in balance arithmetic.
type SourceCategory string

const (
	SourceOrderPayment    SourceCategory = "order-payment"
	SourceCapitalEvent    SourceCategory = "capital-event"
	SourceExpense         SourceCategory = "expense"
	SourceMaintenanceCost SourceCategory = "maintenance-cost"
)

// Movement is one immutable signed financial fact posted to exactly one channel.
// It is never mutated after creation; corrections happen via compensating movements.
type Movement struct {
	ID          string
	Channel     Channel
	Direction   Direction
	Amount      decimal.Decimal
	Source      SourceCategory
	SourceID    int
	Concept     string
	Description string
	EffectiveAt time.Time
	CreatedAt   time.Time
}

// Signed returns the amount with the sign implied by the direction.
func (m Movement) Signed() decimal.Decimal {
	if m.Direction == DirectionDebit {
		return m.Amount.Neg()
	}
	return m.Amount
}

// MaintenanceCost is a row of the maintenance-cost movement source. It carries the
// equipment id so an interrupted maintenance open can be repaired from the row alone.
type MaintenanceCost struct {
	ID          int
	EquipmentID int
	Channel     Channel
	Amount      decimal.Decimal
	Concept     string
	Description string
	SpentAt     time.Time
	CreatedBy   string
	CreatedAt   time.Time
}

type EquipmentState string

const (
	StateAvailable     EquipmentState = "available"
	StateRented        EquipmentState = "rented"
	StateInMaintenance EquipmentState = "in_maintenance"
	StateOutOfService  EquipmentState = "out_of_service"
	StateRetired       EquipmentState = "retired"
)

var transitions = map[EquipmentState][]EquipmentState{
	StateAvailable:     {StateRented, StateInMaintenance, StateOutOfService, StateRetired},
	StateRented:        {StateAvailable, StateRetired},
	StateInMaintenance: {StateAvailable, StateRetired},
	StateOutOfService:  {StateAvailable, StateRetired},
	StateRetired:       {},
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to EquipmentState) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Equipment is a physical rental unit. AssignmentOrderID is set iff the unit is
// rented, ActiveMaintenanceID iff it is in maintenance; never both.
type Equipment struct {
	ID                  int
	Code                string
	State               EquipmentState
	AssignmentOrderID   *int
	ActiveMaintenanceID *int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type MaintenanceRecord struct {
	ID             int
	EquipmentID    int
	Channel        Channel
	Cost           decimal.Decimal
	CostMovementID *int
	Details        string
	OpenedBy       string
	OpenedAt       time.Time
	ClosedAt       *time.Time
}

func (r MaintenanceRecord) IsOpen() bool {
	return r.ClosedAt == nil
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderDelivered OrderStatus = "delivered"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// Order is owned by the order intake flow; this core only reads it.
type Order struct {
	ID                  int
	CustomerName        string
	Status              OrderStatus
	AssignedEquipmentID *int
	CreatedAt           time.Time
}
