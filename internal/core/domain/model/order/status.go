package order

import (
	"fmt"

	"production/internal/pkg/errs"
)

// Status represents the lifecycle state of a manufacturing order.
// It implements a state machine over the fixed production pipeline to ensure
// orders move through departments in the correct sequence.
//
// State transitions:
//
//	PENDING_SETTING ─> IN_SETTING ─> PENDING_PRINT ─> IN_PRINT ─> PENDING_PRESS
//	   ─> IN_PRESS ─> PENDING_JAHIT ─> IN_JAHIT ─> PENDING_PACKING ─> IN_PACKING
//	   ─> READY_TO_SHIP ─> COMPLETED
//
// STOCK orders enter at PENDING_PACKING, skipping the four production
// departments. Any non-terminal state may move to CANCELED, or to RETURNED
// when a return date is supplied. COMPLETED, CANCELED, and RETURNED are
// terminal: no outgoing transitions exist.
//
// Status is a value object persisted by its string form. The zero value
// (empty string) is invalid and helps catch uninitialized statuses.
type Status string

const (
	// StatusUnknown represents an invalid or undefined status.
	// The zero value helps catch uninitialized Status values.
	StatusUnknown Status = ""

	StatusPendingSetting Status = "PENDING_SETTING"
	StatusInSetting      Status = "IN_SETTING"
	StatusPendingPrint   Status = "PENDING_PRINT"
	StatusInPrint        Status = "IN_PRINT"
	StatusPendingPress   Status = "PENDING_PRESS"
	StatusInPress        Status = "IN_PRESS"
	StatusPendingJahit   Status = "PENDING_JAHIT"
	StatusInJahit        Status = "IN_JAHIT"
	StatusPendingPacking Status = "PENDING_PACKING"
	StatusInPacking      Status = "IN_PACKING"
	StatusReadyToShip    Status = "READY_TO_SHIP"
	StatusCompleted      Status = "COMPLETED"
	StatusCanceled       Status = "CANCELED"
	StatusReturned       Status = "RETURNED"
)

// AllStatuses returns every valid status in pipeline order.
// The slice is freshly allocated on each call and safe to mutate.
func AllStatuses() []Status {
	return []Status{
		StatusPendingSetting,
		StatusInSetting,
		StatusPendingPrint,
		StatusInPrint,
		StatusPendingPress,
		StatusInPress,
		StatusPendingJahit,
		StatusInJahit,
		StatusPendingPacking,
		StatusInPacking,
		StatusReadyToShip,
		StatusCompleted,
		StatusCanceled,
		StatusReturned,
	}
}

// getStatusLabels returns the operator-facing label of each valid status.
// Labels appear in exports and reports; status codes appear on the wire.
func getStatusLabels() map[Status]string {
	return map[Status]string{
		StatusPendingSetting: "Menunggu Setting",
		StatusInSetting:      "Proses Setting",
		StatusPendingPrint:   "Menunggu Print",
		StatusInPrint:        "Proses Print",
		StatusPendingPress:   "Menunggu Press",
		StatusInPress:        "Proses Press",
		StatusPendingJahit:   "Menunggu Jahit",
		StatusInJahit:        "Proses Jahit",
		StatusPendingPacking: "Menunggu Packing",
		StatusInPacking:      "Proses Packing",
		StatusReadyToShip:    "Siap Dikirim",
		StatusCompleted:      "Selesai",
		StatusCanceled:       "Dibatalkan (Cancel)",
		StatusReturned:       "Dikembalikan (Return)",
	}
}

// StatusFromString converts a raw string into a validated Status.
// Returns an error for anything outside the 14 known states.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return StatusUnknown, err
	}
	return status, nil
}

// Validate checks if the Status value is one of the 14 valid states.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire/persistence form of the status, or "Unknown"
// for invalid values. Implements fmt.Stringer and is safe to call on
// any Status value.
func (s Status) String() string {
	if _, ok := getStatusLabels()[s]; ok {
		return string(s)
	}
	return "Unknown"
}

// Label returns the operator-facing display label of the status,
// or "Unknown" for invalid values.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// COMPLETED, CANCELED, and RETURNED are the three terminal states.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled || s == StatusReturned
}

// Cancel transitions the status to CANCELED.
//
// Valid from any non-terminal status. Terminal statuses (COMPLETED,
// CANCELED, RETURNED) cannot be canceled.
//
// Returns:
//   - (StatusCanceled, nil) on valid transition
//   - (StatusUnknown, error) if the current status is invalid or terminal
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s.IsTerminal() {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and cannot be canceled", s),
		)
	}
	return StatusCanceled, nil
}

// Return transitions the status to RETURNED.
//
// Valid from any non-terminal status. The caller is responsible for
// supplying the return date; Order.Return enforces that requirement.
//
// Returns:
//   - (StatusReturned, nil) on valid transition
//   - (StatusUnknown, error) if the current status is invalid or terminal
func (s Status) Return() (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s.IsTerminal() {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and cannot be returned", s),
		)
	}
	return StatusReturned, nil
}

// Confirm transitions the status to COMPLETED.
//
// Valid transitions:
//   - READY_TO_SHIP -> COMPLETED (manual confirmation after shipping)
//
// Every other status is rejected: completion is only reachable once the
// packing department has handed the order off as ready to ship.
//
// Returns:
//   - (StatusCompleted, nil) on valid transition
//   - (StatusUnknown, error) if the order is not ready to ship
func (s Status) Confirm() (Status, error) {
	if s != StatusReadyToShip {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm shipment", s),
		)
	}
	return StatusCompleted, nil
}
