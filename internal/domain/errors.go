package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyClosed = errors.New("maintenance record already closed")

	// ErrOrderNotActive rejects a delivery against an order that exists but is
	// already completed or cancelled. Distinct from ErrNotFound: the order is
	// there, it just cannot take equipment anymore.
	ErrOrderNotActive = errors.New("order is no longer active")
)

// InvalidStateTransitionError means the equipment was not in the state the
// requested transition starts from. Not retryable.
type InvalidStateTransitionError struct {
	EquipmentID int
	From        EquipmentState
	To          EquipmentState
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("equipment %d: invalid state transition %s -> %s", e.EquipmentID, e.From, e.To)
}

// InsufficientFundsError is a normal rejected-action result, not a system fault.
type InsufficientFundsError struct {
	Channel   Channel
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on channel %s: required %s, available %s",
		e.Channel, e.Required, e.Available)
}

// TransientStoreError wraps an I/O timeout or unavailability on a store call.
// Callers may retry with backoff; it is never converted into a zero balance
// or an insufficient-funds verdict.
type TransientStoreError struct {
	Op  string
	Err error
}

func (e *TransientStoreError) Error() string {
	return fmt.Sprintf("transient store error in %s: %v", e.Op, e.Err)
}

func (e *TransientStoreError) Unwrap() error { return e.Err }

func IsTransient(err error) bool {
	var t *TransientStoreError
	return errors.As(err, &t)
}

// PartialWriteError marks a maintenance open that was interrupted between its
// movement, record and equipment writes. Logged as a consistency alarm and
// resolved by the repair pass, never by guessing.
type PartialWriteError struct {
	EquipmentID   int
	MaintenanceID int
	Missing       string
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial maintenance write on equipment %d (record %d): missing %s",
		e.EquipmentID, e.MaintenanceID, e.Missing)
}
